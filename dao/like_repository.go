package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Waseemalame/unwokeai/model"
)

type LikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert creates the (user, item) edge if it does not already exist and
// reports whether this call created it. The unique key on
// (user_uid, item_id) makes the check-and-insert atomic; a duplicate is a
// no-op, not an error.
func (r *LikeRepository) Insert(ctx context.Context, userUID, itemID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT IGNORE INTO like_edges (user_uid, item_id, created_at) VALUES (?, ?, ?)`,
		userUID, itemID, time.Now(),
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes the edge and reports whether a row was actually deleted.
func (r *LikeRepository) Delete(ctx context.Context, userUID, itemID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM like_edges WHERE user_uid = ? AND item_id = ?`,
		userUID, itemID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ListByUser returns up to limit like edges for a user, newest first,
// resuming strictly below afterEdgeID when it is > 0. Each edge carries
// its item; Item is nil when the item is gone or unpublished. The limit
// applies to edges, not to visible items.
func (r *LikeRepository) ListByUser(ctx context.Context, userUID string, afterEdgeID int64, limit int) ([]model.LikedEdge, error) {
	query := `
		SELECT e.id, e.created_at,
		       i.id, i.owner_uid, i.title, i.genre, i.tags, i.audio_url, i.cover_url,
		       i.published, i.plays, i.like_count, i.pricing, i.created_at, i.updated_at
		FROM like_edges e
		LEFT JOIN items i ON i.id = e.item_id
		WHERE e.user_uid = ?`
	args := []any{userUID}
	if afterEdgeID > 0 {
		query += ` AND e.id < ?`
		args = append(args, afterEdgeID)
	}
	query += ` ORDER BY e.id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []model.LikedEdge
	for rows.Next() {
		var (
			edge                 model.LikedEdge
			itemID, ownerUID     sql.NullString
			title, genre         sql.NullString
			audioURL, coverURL   sql.NullString
			published            sql.NullBool
			plays, likeCount     sql.NullInt64
			tags, pricing        []byte
			createdAt, updatedAt sql.NullTime
		)
		err := rows.Scan(
			&edge.EdgeID, &edge.LikedAt,
			&itemID, &ownerUID, &title, &genre, &tags, &audioURL, &coverURL,
			&published, &plays, &likeCount, &pricing, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if itemID.Valid && published.Bool {
			item := &model.Item{
				ID:        itemID.String,
				OwnerUID:  ownerUID.String,
				Title:     title.String,
				Genre:     genre.String,
				AudioURL:  audioURL.String,
				CoverURL:  coverURL.String,
				Published: published.Bool,
				Plays:     plays.Int64,
				LikeCount: likeCount.Int64,
				CreatedAt: createdAt.Time,
				UpdatedAt: updatedAt.Time,
				Tags:      []string{},
			}
			if len(tags) > 0 {
				if err := json.Unmarshal(tags, &item.Tags); err != nil {
					return nil, fmt.Errorf("unmarshal tags: %w", err)
				}
			}
			if len(pricing) > 0 {
				if err := json.Unmarshal(pricing, &item.Pricing); err != nil {
					return nil, fmt.Errorf("unmarshal pricing: %w", err)
				}
			}
			edge.Item = item
		}
		edges = append(edges, edge)
	}
	return edges, rows.Err()
}
