package controller

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/usecase"
)

type LikeController struct {
	likes  *usecase.LikeUsecase
	logger *slog.Logger
}

func NewLikeController(likes *usecase.LikeUsecase, logger *slog.Logger) *LikeController {
	return &LikeController{likes: likes, logger: logger}
}

func (c *LikeController) Like(ctx *gin.Context) {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	status, err := c.likes.Like(ctx.Request.Context(), identityFrom(ctx).UID, itemID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func (c *LikeController) Unlike(ctx *gin.Context) {
	itemID, err := itemIDParam(ctx)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	status, err := c.likes.Unlike(ctx.Request.Context(), identityFrom(ctx).UID, itemID)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, status)
}

func itemIDParam(ctx *gin.Context) (string, error) {
	id := ctx.Param("id")
	if _, err := ulid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: invalid item id", model.ErrInvalidInput)
	}
	return id, nil
}
