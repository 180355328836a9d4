package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/payments"
)

// SettlementUsecase ingests payment confirmation events. Deliveries are
// at-least-once; the order table's natural key on the session id makes
// ingestion exactly-once. A returned error maps to a client error so the
// provider retries; nil means the delivery is settled and retries stop.
type SettlementUsecase struct {
	orders OrderStore
	parser EventParser
	logger *slog.Logger
}

func NewSettlementUsecase(orders OrderStore, parser EventParser, logger *slog.Logger) *SettlementUsecase {
	return &SettlementUsecase{orders: orders, parser: parser, logger: logger}
}

// Ingest verifies and applies one webhook delivery. Event kinds other
// than checkout completion are acknowledged without touching the ledger.
func (u *SettlementUsecase) Ingest(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := u.parser.ParseEvent(payload, signatureHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	if event.Kind != payments.EventCheckoutCompleted {
		u.logger.Debug("ignoring payment event", "kind", event.Kind)
		return nil
	}

	sess := event.Session
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("%w: completed event without session", model.ErrInvalidInput)
	}

	order := &model.Order{
		SessionID:         sess.ID,
		AmountTotal:       sess.AmountTotal,
		Currency:          sess.Currency,
		CustomerEmail:     sess.CustomerEmail,
		PaymentStatus:     sess.PaymentStatus,
		ClientReferenceID: sess.ClientReference,
		Metadata:          sess.Metadata,
		CreatedAt:         time.Now(),
	}
	created, err := u.orders.Insert(ctx, order)
	if err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	if created {
		u.logger.Info("order recorded", "session", sess.ID, "amount", sess.AmountTotal, "currency", sess.Currency)
	} else {
		u.logger.Info("duplicate payment event, order already recorded", "session", sess.ID)
	}
	return nil
}
