package gateway

import (
	"context"

	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ChargeRequest carries only what may leave the process: the amount, the
// currency, and a masked card reference. Full card data never reaches the
// gateway layer.
type ChargeRequest struct {
	BookingID     uuid.UUID
	AmountCents   int64
	Currency      string
	CardReference string
}

type ChargeResult struct {
	Reference string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

type StripeGateway struct{}

func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID.String())
	params.AddMetadata("card_reference", req.CardReference)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe charge failed")
	}

	return &ChargeResult{Reference: intent.ID}, nil
}

// NoopGateway is used when no Stripe key is configured (local development and
// tests); it reports the masked card reference as the charge reference.
type NoopGateway struct{}

func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

func (g *NoopGateway) Charge(_ context.Context, req ChargeRequest) (*ChargeResult, error) {
	return &ChargeResult{Reference: req.CardReference}, nil
}
