package model

import "time"

// Item is a catalog entry (a beat). LikeCount is denormalized from the
// like_edges table; only the like usecase touches it.
type Item struct {
	ID         string           `json:"id"`
	OwnerUID   string           `json:"ownerUid"`
	OwnerEmail string           `json:"ownerEmail,omitempty"`
	Title      string           `json:"title"`
	Genre      string           `json:"genre,omitempty"`
	Tags       []string         `json:"tags"`
	AudioURL   string           `json:"audioUrl"`
	CoverURL   string           `json:"coverUrl,omitempty"`
	Published  bool             `json:"published"`
	Plays      int64            `json:"plays"`
	LikeCount  int64            `json:"likeCount"`
	Pricing    map[string]int64 `json:"pricing,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// FeedKey is the sort key of an item feed row: creation time descending,
// ties broken by id descending. It is what item-feed cursors encode.
type FeedKey struct {
	CreatedAt time.Time
	ID        string
}
