package usecase

import (
	"context"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/payments"
)

// Storage and provider dependencies of the usecases. The dao package
// implements the stores over MySQL; tests substitute in-memory fakes.

type ItemStore interface {
	Insert(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	Publish(ctx context.Context, id string) error
	ListPublished(ctx context.Context, after *model.FeedKey, limit int) ([]model.Item, error)
	ListPublishedByOwner(ctx context.Context, ownerUID string, after *model.FeedKey, limit int) ([]model.Item, error)
	IncrementLikeCount(ctx context.Context, id string) error
	DecrementLikeCount(ctx context.Context, id string) error
	LikeCount(ctx context.Context, id string) (int64, error)
}

type LikeStore interface {
	// Insert reports whether this call created the edge.
	Insert(ctx context.Context, userUID, itemID string) (bool, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, userUID, itemID string) (bool, error)
	ListByUser(ctx context.Context, userUID string, afterEdgeID int64, limit int) ([]model.LikedEdge, error)
}

type OrderStore interface {
	// Insert reports whether this call created the order; false means an
	// order with the same session id already existed.
	Insert(ctx context.Context, order *model.Order) (bool, error)
}

type UserStore interface {
	Upsert(ctx context.Context, uid, email string) (*model.User, error)
}

type SessionCreator interface {
	CreateCheckoutSession(ctx context.Context, p payments.SessionParams) (*payments.Session, error)
}

type EventParser interface {
	ParseEvent(payload []byte, signatureHeader string) (payments.Event, error)
}
