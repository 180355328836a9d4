package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/Waseemalame/unwokeai/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user row on first sight and refreshes the email on
// subsequent logins.
func (r *UserRepository) Upsert(ctx context.Context, uid, email string) (*model.User, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (uid, email, created_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE email = VALUES(email)`,
		uid, email, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.db.QueryRowContext(ctx,
		`SELECT uid, email, created_at FROM users WHERE uid = ?`, uid,
	).Scan(&user.UID, &user.Email, &user.CreatedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	return &user, nil
}
