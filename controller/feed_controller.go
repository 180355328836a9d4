package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/usecase"
)

type FeedController struct {
	feed   *usecase.FeedUsecase
	logger *slog.Logger
}

func NewFeedController(feed *usecase.FeedUsecase, logger *slog.Logger) *FeedController {
	return &FeedController{feed: feed, logger: logger}
}

func (c *FeedController) PublicFeed(ctx *gin.Context) {
	cur, limit := pageParams(ctx)
	page, err := c.feed.PublicFeed(ctx.Request.Context(), cur, limit)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func (c *FeedController) UserItems(ctx *gin.Context) {
	cur, limit := pageParams(ctx)
	page, err := c.feed.OwnerFeed(ctx.Request.Context(), ctx.Param("id"), cur, limit)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func (c *FeedController) MyLikes(ctx *gin.Context) {
	cur, limit := pageParams(ctx)
	page, err := c.feed.LikesFeed(ctx.Request.Context(), identityFrom(ctx).UID, cur, limit)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func (c *FeedController) UserLikes(ctx *gin.Context) {
	cur, limit := pageParams(ctx)
	page, err := c.feed.LikesFeed(ctx.Request.Context(), ctx.Param("id"), cur, limit)
	if err != nil {
		respondError(ctx, c.logger, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// pageParams reads cursor and limit query params. An unparsable limit
// falls back to the default; range clamping happens in the usecase.
func pageParams(ctx *gin.Context) (string, int) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return ctx.Query("cursor"), limit
}
