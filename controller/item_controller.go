package controller

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/usecase"
)

type ItemController struct {
	items  *usecase.ItemUsecase
	logger *slog.Logger
}

func NewItemController(items *usecase.ItemUsecase, logger *slog.Logger) *ItemController {
	return &ItemController{items: items, logger: logger}
}

func (c *ItemController) Create(ctx *gin.Context) {
	var in usecase.CreateItemInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		respondError(ctx, c.logger, fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		return
	}
	ident := identityFrom(ctx)
	item, err := c.items.Create(ctx.Request.Context(), ident.UID, ident.Email, in)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *ItemController) Publish(ctx *gin.Context) {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	item, err := c.items.Publish(ctx.Request.Context(), identityFrom(ctx).UID, itemID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}
