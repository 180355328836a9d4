package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Waseemalame/unwokeai/model"
	"github.com/Waseemalame/unwokeai/pkg/payments"
	"github.com/Waseemalame/unwokeai/pkg/pricing"
)

// CheckoutUsecase turns a cart into a hosted payment session. Nothing is
// persisted locally; the session lives entirely at the provider, and the
// buyer can safely retry by resubmitting.
type CheckoutUsecase struct {
	items    ItemStore
	provider SessionCreator
	baseURL  string
	logger   *slog.Logger
}

func NewCheckoutUsecase(items ItemStore, provider SessionCreator, baseURL string, logger *slog.Logger) *CheckoutUsecase {
	return &CheckoutUsecase{
		items:    items,
		provider: provider,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// CartLine is one requested purchase. Prices are resolved server-side;
// nothing the client sends about amounts is trusted.
type CartLine struct {
	ItemID      string `json:"itemId"`
	LicenseTier string `json:"licenseTier"`
}

// BuildSession validates the cart, prices every line, and creates the
// provider session. Any unresolved item fails the whole request; partial
// checkout is not supported.
func (u *CheckoutUsecase) BuildSession(ctx context.Context, userUID, email string, lines []CartLine) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("%w: no items", model.ErrInvalidInput)
	}

	var providerLines []payments.LineItem
	for _, line := range lines {
		if line.ItemID == "" {
			return "", fmt.Errorf("%w: missing itemId", model.ErrInvalidInput)
		}
		item, err := u.items.GetByID(ctx, line.ItemID)
		if err != nil {
			return "", err
		}
		if item == nil {
			return "", fmt.Errorf("%w: item %s", model.ErrNotFound, line.ItemID)
		}

		tier := pricing.Normalize(line.LicenseTier)
		providerLines = append(providerLines, payments.LineItem{
			Name:       fmt.Sprintf("%s — %s", item.Title, strings.ToUpper(tier)),
			UnitAmount: pricing.Resolve(item.Pricing, tier),
			Currency:   "usd",
			ImageURL:   item.CoverURL,
			Metadata: map[string]string{
				"itemId":   item.ID,
				"ownerUid": item.OwnerUID,
				"license":  tier,
			},
		})
	}

	sess, err := u.provider.CreateCheckoutSession(ctx, payments.SessionParams{
		CustomerEmail:   email,
		ClientReference: userUID,
		SuccessURL:      u.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:       u.baseURL + "/cart",
		Lines:           providerLines,
	})
	if err != nil {
		u.logger.Error("checkout session creation failed", "user", userUID, "error", err)
		return "", fmt.Errorf("%w: failed to create checkout session", model.ErrUpstream)
	}
	return sess.URL, nil
}
