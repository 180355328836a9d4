package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/usecase"
)

type UserController struct {
	users  *usecase.UserUsecase
	logger *slog.Logger
}

func NewUserController(users *usecase.UserUsecase, logger *slog.Logger) *UserController {
	return &UserController{users: users, logger: logger}
}

// Bootstrap upserts the caller's profile row after login.
func (c *UserController) Bootstrap(ctx *gin.Context) {
	ident := identityFrom(ctx)
	user, err := c.users.Bootstrap(ctx.Request.Context(), ident.UID, ident.Email)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}
