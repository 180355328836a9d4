package controller

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/usecase"
)

type WebhookController struct {
	settlement *usecase.SettlementUsecase
	logger     *slog.Logger
}

func NewWebhookController(settlement *usecase.SettlementUsecase, logger *slog.Logger) *WebhookController {
	return &WebhookController{settlement: settlement, logger: logger}
}

// HandlePaymentEvent ingests one provider delivery. The provider needs
// the exact raw payload for signature verification, so the body is read
// unparsed. A 2xx stops provider retries; a 4xx/5xx keeps them coming.
func (c *WebhookController) HandlePaymentEvent(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		respondError(ctx, c.logger, fmt.Errorf("%w: unreadable payload", model.ErrInvalidInput))
		return
	}
	sig := ctx.GetHeader("Stripe-Signature")
	if err := c.settlement.Ingest(ctx.Request.Context(), payload, sig); err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
