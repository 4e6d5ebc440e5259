package components

import (
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWizardHandler,
		api.NewBookingHandler,
		api.NewServiceHandler,
		api.NewCategoryHandler,
		api.NewProviderHandler,
		api.NewUserHandler,
		api.NewPaymentHandler,
		api.NewAuditLogHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		middleware.NewLogger,
		NewHTTPMetrics,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHTTPMetrics() *middleware.HTTPMetrics {
	return middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)
}

func NewHandlers(
	auth *api.AuthHandler,
	wizard *api.WizardHandler,
	booking *api.BookingHandler,
	service *api.ServiceHandler,
	category *api.CategoryHandler,
	provider *api.ProviderHandler,
	users *api.UserHandler,
	payment *api.PaymentHandler,
	auditLog *api.AuditLogHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Wizard:    wizard,
		Booking:   booking,
		Service:   service,
		Category:  category,
		Provider:  provider,
		User:      users,
		Payment:   payment,
		AuditLog:  auditLog,
		Dashboard: dashboard,
	}
}
