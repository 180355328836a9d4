package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Waseemalame/unwokeai/model"
)

const maxTags = 10

type ItemUsecase struct {
	items ItemStore
}

func NewItemUsecase(items ItemStore) *ItemUsecase {
	return &ItemUsecase{items: items}
}

type CreateItemInput struct {
	Title    string           `json:"title"`
	Genre    string           `json:"genre"`
	Tags     []string         `json:"tags"`
	AudioURL string           `json:"audioUrl"`
	CoverURL string           `json:"coverUrl"`
	Pricing  map[string]int64 `json:"pricing"`
}

// Create stores a new unpublished item owned by the caller.
func (u *ItemUsecase) Create(ctx context.Context, ownerUID, ownerEmail string, in CreateItemInput) (*model.Item, error) {
	if strings.TrimSpace(in.AudioURL) == "" {
		return nil, fmt.Errorf("%w: audioUrl is required", model.ErrInvalidInput)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "Untitled"
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	now := time.Now()
	item := &model.Item{
		ID:         newULID(),
		OwnerUID:   ownerUID,
		OwnerEmail: ownerEmail,
		Title:      title,
		Genre:      strings.TrimSpace(in.Genre),
		Tags:       tags,
		AudioURL:   in.AudioURL,
		CoverURL:   in.CoverURL,
		Published:  false,
		Pricing:    in.Pricing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.items.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Publish makes an item visible in the public feed. Only the owner may
// publish.
func (u *ItemUsecase) Publish(ctx context.Context, userUID, itemID string) (*model.Item, error) {
	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", model.ErrNotFound, itemID)
	}
	if item.OwnerUID != userUID {
		return nil, fmt.Errorf("%w: you do not own this item", model.ErrForbidden)
	}

	if err := u.items.Publish(ctx, itemID); err != nil {
		return nil, err
	}
	return u.items.GetByID(ctx, itemID)
}

func newULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}
