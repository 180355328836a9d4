package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/Waseemalame/unwokeai/pkg/auth"
)

// NewRouter wires all routes. The webhook route stays outside the auth
// group: the provider authenticates with a payload signature, not a
// bearer token.
func NewRouter(
	verifier auth.Verifier,
	items *ItemController,
	likes *LikeController,
	feed *FeedController,
	users *UserController,
	checkout *CheckoutController,
	webhooks *WebhookController,
) *gin.Engine {
	r := gin.Default()
	r.Use(CORS())

	r.GET("/feed", feed.PublicFeed)
	r.GET("/users/:id/items", feed.UserItems)
	r.GET("/users/:id/likes", feed.UserLikes)
	r.POST("/webhooks/payment", webhooks.HandlePaymentEvent)

	authed := r.Group("", RequireAuth(verifier))
	{
		authed.POST("/items", items.Create)
		authed.POST("/items/:id/publish", items.Publish)
		authed.POST("/items/:id/like", likes.Like)
		authed.DELETE("/items/:id/like", likes.Unlike)
		authed.GET("/me/likes", feed.MyLikes)
		authed.POST("/users/me", users.Bootstrap)
		authed.POST("/checkout/sessions", checkout.CreateSession)
	}

	return r
}
