package model

import "time"

// LikedEdge is one row of a user's likes feed: the edge plus the item it
// references. Item is nil when the referenced item is missing or
// unpublished; such rows still occupy their slot in the page window.
type LikedEdge struct {
	EdgeID  int64     `json:"-"`
	LikedAt time.Time `json:"likedAt"`
	Item    *Item     `json:"item,omitempty"`
}

// LikeStatus is the response of a like/unlike toggle.
type LikeStatus struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}
