// Package payments wraps the payment provider: checkout session creation
// and webhook event parsing. The rest of the codebase only sees the types
// and errors defined here.
package payments

import "errors"

// EventCheckoutCompleted is the one event kind the settlement flow acts
// on; every other kind is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrInvalidSignature means the webhook payload failed authenticity
	// verification. The caller should answer with a client error so the
	// provider retries.
	ErrInvalidSignature = errors.New("payments: invalid webhook signature")

	// ErrMalformedEvent means the payload could not be decoded at all.
	ErrMalformedEvent = errors.New("payments: malformed event payload")
)

// LineItem is one priced line of a checkout session.
type LineItem struct {
	Name       string
	UnitAmount int64
	Currency   string
	ImageURL   string
	Metadata   map[string]string
}

// SessionParams describes the checkout session to create.
type SessionParams struct {
	CustomerEmail   string
	ClientReference string
	SuccessURL      string
	CancelURL       string
	Lines           []LineItem
}

// Session is the provider's created session: its id and the URL the buyer
// is redirected to.
type Session struct {
	ID  string
	URL string
}

// CheckoutSession is the settlement-relevant projection of a completed
// checkout session event.
type CheckoutSession struct {
	ID              string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	PaymentStatus   string
	ClientReference string
	Metadata        map[string]string
}

// Event is a parsed webhook delivery. Session is non-nil only for
// EventCheckoutCompleted.
type Event struct {
	Kind    string
	Session *CheckoutSession
}
