package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeClient talks to Stripe. One instance is constructed at process
// start and shared; it holds no mutable state beyond the SDK's own.
type StripeClient struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// NewStripeClient builds a client from the secret API key. webhookSecret
// may be empty, in which case ParseEvent accepts payloads unverified;
// that is a development-mode convenience, not a production configuration.
func NewStripeClient(secretKey, webhookSecret string, logger *slog.Logger) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)

	if webhookSecret == "" {
		logger.Warn("no webhook secret configured, payment events will be accepted unverified")
	}

	return &StripeClient{api: api, webhookSecret: webhookSecret, logger: logger}
}

// CreateCheckoutSession creates a hosted checkout session and returns its
// id and redirect URL. Each call carries a fresh idempotency key: checkout
// creation is user-initiated and safe to repeat, so retries are left to
// the user resubmitting.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, p SessionParams) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes:  stripe.StringSlice([]string{"card"}),
		CustomerEmail:       stripe.String(p.CustomerEmail),
		ClientReferenceID:   stripe.String(p.ClientReference),
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"userUid": p.ClientReference},
		},
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	for _, ln := range p.Lines {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:     stripe.String(ln.Name),
			Metadata: ln.Metadata,
		}
		if ln.ImageURL != "" {
			product.Images = stripe.StringSlice([]string{ln.ImageURL})
		}
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(ln.Currency),
				UnitAmount:  stripe.Int64(ln.UnitAmount),
				ProductData: product,
			},
		})
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}

// ParseEvent decodes a webhook delivery. With a configured secret the
// signature header must validate; without one the raw payload is trusted
// as-is.
func (c *StripeClient) ParseEvent(payload []byte, signatureHeader string) (Event, error) {
	var ev stripe.Event
	if c.webhookSecret != "" {
		verified, err := webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
		if err != nil {
			return Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		ev = verified
	} else if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	out := Event{Kind: string(ev.Type)}
	if out.Kind != EventCheckoutCompleted {
		return out, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &cs); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	email := cs.CustomerEmail
	if cs.CustomerDetails != nil && cs.CustomerDetails.Email != "" {
		email = cs.CustomerDetails.Email
	}

	out.Session = &CheckoutSession{
		ID:              cs.ID,
		AmountTotal:     cs.AmountTotal,
		Currency:        string(cs.Currency),
		CustomerEmail:   email,
		PaymentStatus:   string(cs.PaymentStatus),
		ClientReference: cs.ClientReferenceID,
		Metadata:        cs.Metadata,
	}
	return out, nil
}
