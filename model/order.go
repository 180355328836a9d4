package model

import "time"

// Order is an append-only settlement record. SessionID is the payment
// provider's checkout session id and doubles as the idempotency key: the
// same confirmation event delivered twice creates exactly one row. Orders
// are never mutated after creation.
type Order struct {
	SessionID         string            `json:"sessionId"`
	AmountTotal       int64             `json:"amountTotal"`
	Currency          string            `json:"currency"`
	CustomerEmail     string            `json:"customerEmail,omitempty"`
	PaymentStatus     string            `json:"paymentStatus"`
	ClientReferenceID string            `json:"clientReferenceId,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}
