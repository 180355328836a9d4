package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Waseemalame/unwokeai/model"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert appends an order keyed by the provider session id and reports
// whether this call created it. The primary key on session_id absorbs
// at-least-once webhook delivery: a redelivered event inserts nothing.
func (r *OrderRepository) Insert(ctx context.Context, order *model.Order) (bool, error) {
	var metadata []byte
	if order.Metadata != nil {
		var err error
		if metadata, err = json.Marshal(order.Metadata); err != nil {
			return false, fmt.Errorf("marshal metadata: %w", err)
		}
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT IGNORE INTO orders
			(session_id, amount_total, currency, customer_email, payment_status, client_reference_id, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.SessionID, order.AmountTotal, order.Currency,
		nullString(order.CustomerEmail), order.PaymentStatus,
		nullString(order.ClientReferenceID), nullBytes(metadata), order.CreatedAt,
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

// GetBySessionID returns (nil, nil) when no order exists for the session.
func (r *OrderRepository) GetBySessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	var (
		order            model.Order
		email, clientRef sql.NullString
		metadata         []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT session_id, amount_total, currency, customer_email, payment_status, client_reference_id, metadata, created_at
		FROM orders WHERE session_id = ?`, sessionID,
	).Scan(&order.SessionID, &order.AmountTotal, &order.Currency,
		&email, &order.PaymentStatus, &clientRef, &metadata, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order.CustomerEmail = email.String
	order.ClientReferenceID = clientRef.String
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &order.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &order, nil
}
