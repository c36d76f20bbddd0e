package components

import (
	"tablestay/internal/domain/booking"
	"tablestay/internal/pkg/clock"
	"tablestay/internal/usecase"
	"tablestay/internal/usecase/commands"
	"tablestay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
