package controller

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/usecase"
)

type CheckoutController struct {
	checkout *usecase.CheckoutUsecase
	logger   *slog.Logger
}

func NewCheckoutController(checkout *usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutController {
	return &CheckoutController{checkout: checkout, logger: logger}
}

type checkoutRequest struct {
	Items []usecase.CartLine `json:"items"`
}

func (c *CheckoutController) CreateSession(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, c.logger, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}
	ident := identityFrom(ctx)
	url, err := c.checkout.BuildSession(ctx.Request.Context(), ident.UID, ident.Email, req.Items)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"redirectUrl": url})
}
