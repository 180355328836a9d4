package usecase

import (
	"context"
	"fmt"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/cursor"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// FeedUsecase serves keyset-paginated feeds. Sort orders are strict total
// orders (timestamp ties broken by id), so a reader paginating a stable
// snapshot sees every qualifying row exactly once. Rows inserted at the
// head after the reader's cursor boundary are simply not revisited.
type FeedUsecase struct {
	items ItemStore
	likes LikeStore
}

func NewFeedUsecase(items ItemStore, likes LikeStore) *FeedUsecase {
	return &FeedUsecase{items: items, likes: likes}
}

// FeedPage is one page of an item feed. NextCursor is nil once a page
// comes back under-full, signalling the end of the collection.
type FeedPage struct {
	Items      []model.Item `json:"items"`
	NextCursor *string      `json:"nextCursor"`
}

// LikesPage is one page of a likes feed. Edges whose item is missing or
// unpublished are dropped after the page window is taken, so a page may
// hold fewer visible entries than requested while the cursor still
// advances over the full window.
type LikesPage struct {
	Items      []model.LikedEdge `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

// PublicFeed pages over all published items, newest first.
func (u *FeedUsecase) PublicFeed(ctx context.Context, cur string, limit int) (*FeedPage, error) {
	return u.itemFeed(ctx, cur, limit, u.items.ListPublished)
}

// OwnerFeed pages over one owner's published items, newest first.
func (u *FeedUsecase) OwnerFeed(ctx context.Context, ownerUID, cur string, limit int) (*FeedPage, error) {
	return u.itemFeed(ctx, cur, limit, func(ctx context.Context, after *model.FeedKey, limit int) ([]model.Item, error) {
		return u.items.ListPublishedByOwner(ctx, ownerUID, after, limit)
	})
}

// LikesFeed pages over a user's like edges, newest edge first.
func (u *FeedUsecase) LikesFeed(ctx context.Context, userUID, cur string, limit int) (*LikesPage, error) {
	limit = clampLimit(limit)

	var afterEdgeID int64
	if cur != "" {
		id, err := cursor.DecodeEdge(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed cursor", model.ErrInvalidInput)
		}
		afterEdgeID = id
	}

	edges, err := u.likes.ListByUser(ctx, userUID, afterEdgeID, limit)
	if err != nil {
		return nil, err
	}

	page := &LikesPage{Items: []model.LikedEdge{}}
	for _, e := range edges {
		if e.Item != nil {
			page.Items = append(page.Items, e)
		}
	}
	if len(edges) == limit {
		c := cursor.EncodeEdge(edges[len(edges)-1].EdgeID)
		page.NextCursor = &c
	}
	return page, nil
}

func (u *FeedUsecase) itemFeed(ctx context.Context, cur string, limit int, fetch func(context.Context, *model.FeedKey, int) ([]model.Item, error)) (*FeedPage, error) {
	limit = clampLimit(limit)

	var after *model.FeedKey
	if cur != "" {
		key, err := cursor.DecodeKey(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed cursor", model.ErrInvalidInput)
		}
		after = &key
	}

	items, err := fetch(ctx, after, limit)
	if err != nil {
		return nil, err
	}

	page := &FeedPage{Items: items}
	if page.Items == nil {
		page.Items = []model.Item{}
	}
	if len(items) == limit {
		last := items[len(items)-1]
		c := cursor.EncodeKey(model.FeedKey{CreatedAt: last.CreatedAt, ID: last.ID})
		page.NextCursor = &c
	}
	return page, nil
}

// clampLimit applies the [1, 100] bound silently; 0 means "not given".
func clampLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultPageSize
	case limit < 1:
		return 1
	case limit > maxPageSize:
		return maxPageSize
	default:
		return limit
	}
}
