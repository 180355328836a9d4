package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Waseemalame/unwokeai/model"
)

// LikeUsecase maintains the like edge relation and its denormalized
// counter. The edge set is the source of truth: the counter only moves
// when an edge write actually changed state, so concurrent duplicate
// requests cannot double-apply.
type LikeUsecase struct {
	items  ItemStore
	likes  LikeStore
	logger *slog.Logger
}

func NewLikeUsecase(items ItemStore, likes LikeStore, logger *slog.Logger) *LikeUsecase {
	return &LikeUsecase{items: items, likes: likes, logger: logger}
}

// Like records that the user likes the item. Repeating the call is a
// no-op that returns current state. The item must be published.
func (u *LikeUsecase) Like(ctx context.Context, userUID, itemID string) (*model.LikeStatus, error) {
	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Published {
		return nil, fmt.Errorf("%w: item %s", model.ErrNotFound, itemID)
	}

	created, err := u.likes.Insert(ctx, userUID, itemID)
	if err != nil {
		return nil, err
	}
	if created {
		if err := u.items.IncrementLikeCount(ctx, itemID); err != nil {
			// The edge is committed; the counter lags until a
			// reconciliation pass recomputes it from edge counts.
			u.logger.Error("like counter increment failed", "item", itemID, "error", err)
		}
	}

	count, err := u.items.LikeCount(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &model.LikeStatus{Liked: true, LikeCount: count}, nil
}

// Unlike removes the edge if present. Unliking something never liked, or
// an item that no longer exists, is a no-op.
func (u *LikeUsecase) Unlike(ctx context.Context, userUID, itemID string) (*model.LikeStatus, error) {
	deleted, err := u.likes.Delete(ctx, userUID, itemID)
	if err != nil {
		return nil, err
	}
	if deleted {
		if err := u.items.DecrementLikeCount(ctx, itemID); err != nil {
			u.logger.Error("like counter decrement failed", "item", itemID, "error", err)
		}
	}

	count, err := u.items.LikeCount(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &model.LikeStatus{Liked: false, LikeCount: count}, nil
}
