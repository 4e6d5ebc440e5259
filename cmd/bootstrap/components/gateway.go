package components

import (
	"marketplace-api/internal/infra/gateway"
	"marketplace-api/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateway,
	),
)

// NewPaymentGateway falls back to the no-op gateway when no Stripe key is
// configured, so local environments can run the full payment flow.
func NewPaymentGateway(cfg config.Config) gateway.PaymentGateway {
	if cfg.Stripe.APIKey == "" {
		return gateway.NewNoopGateway()
	}
	return gateway.NewStripeGateway(cfg.Stripe.APIKey)
}
