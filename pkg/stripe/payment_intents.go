package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"
)

// PaymentIntentRef is the slice of a gateway intent the settlement flow needs.
type PaymentIntentRef struct {
	ID           string
	ClientSecret string
}

// CreatePaymentIntent asks Stripe for a new intent in the given currency with
// automatic payment-method negotiation. Amount is in minor units.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*PaymentIntentRef, error) {
	if c == nil || c.api == nil {
		return nil, fmt.Errorf("stripe client is not initialized")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amountCents)
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := c.api.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}

	return &PaymentIntentRef{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
