package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Waseemalame/unwokeai/model"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, owner_uid, owner_email, title, genre, tags, audio_url, cover_url, published, plays, like_count, pricing, created_at, updated_at`

func (r *ItemRepository) Insert(ctx context.Context, item *model.Item) error {
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	var pricing []byte
	if item.Pricing != nil {
		if pricing, err = json.Marshal(item.Pricing); err != nil {
			return fmt.Errorf("marshal pricing: %w", err)
		}
	}

	query := `INSERT INTO items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		item.ID, item.OwnerUID, item.OwnerEmail, item.Title,
		nullString(item.Genre), tags, item.AudioURL, nullString(item.CoverURL),
		item.Published, item.Plays, item.LikeCount, nullBytes(pricing),
		item.CreatedAt, item.UpdatedAt,
	)
	return err
}

// GetByID returns (nil, nil) when the item does not exist.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Publish flips the published flag and bumps updated_at.
func (r *ItemRepository) Publish(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET published = TRUE, updated_at = NOW(6) WHERE id = ?`, id)
	return err
}

// ListPublished returns up to limit published items ordered by
// (created_at DESC, id DESC), resuming strictly after the key when given.
func (r *ItemRepository) ListPublished(ctx context.Context, after *model.FeedKey, limit int) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE published = TRUE`
	args := []any{}
	if after != nil {
		query += ` AND (created_at < ? OR (created_at = ? AND id < ?))`
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	return r.queryItems(ctx, query, args...)
}

// ListPublishedByOwner is ListPublished scoped to one owner.
func (r *ItemRepository) ListPublishedByOwner(ctx context.Context, ownerUID string, after *model.FeedKey, limit int) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_uid = ? AND published = TRUE`
	args := []any{ownerUID}
	if after != nil {
		query += ` AND (created_at < ? OR (created_at = ? AND id < ?))`
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	return r.queryItems(ctx, query, args...)
}

// IncrementLikeCount adds one to the denormalized counter. Callers must
// only invoke this when they actually created the edge.
func (r *ItemRepository) IncrementLikeCount(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET like_count = like_count + 1 WHERE id = ?`, id)
	return err
}

// DecrementLikeCount subtracts one, guarded so the counter never goes
// negative even under a racing correction.
func (r *ItemRepository) DecrementLikeCount(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE items SET like_count = like_count - 1 WHERE id = ? AND like_count > 0`, id)
	return err
}

// LikeCount reads the current counter; unknown items read as 0.
func (r *ItemRepository) LikeCount(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT like_count FROM items WHERE id = ?`, id).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	var (
		item          model.Item
		genre, cover  sql.NullString
		tags, pricing []byte
	)
	err := row.Scan(
		&item.ID, &item.OwnerUID, &item.OwnerEmail, &item.Title,
		&genre, &tags, &item.AudioURL, &cover,
		&item.Published, &item.Plays, &item.LikeCount, &pricing,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Genre = genre.String
	item.CoverURL = cover.String
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if len(pricing) > 0 {
		if err := json.Unmarshal(pricing, &item.Pricing); err != nil {
			return nil, fmt.Errorf("unmarshal pricing: %w", err)
		}
	}
	return &item, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
