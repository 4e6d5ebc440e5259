package components

import (
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewServiceQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		queries.NewCategoryQueries,
		queries.NewProviderQueries,
		queries.NewPaymentQueries,
		queries.NewAuditLogQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewWizardCommands,
		commands.NewBookingCommands,
		commands.NewUserCommands,
		commands.NewAuditLogCommands,
		NewCatalogCommands,
	),
)

func NewCatalogCommands(uow shared.UnitOfWork, cfg config.Config) commands.CatalogCommands {
	return commands.NewCatalogCommands(uow, cfg.Booking.Currency)
}
