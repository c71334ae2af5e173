package components

import (
	"time"

	"tourism-api/internal/domain/tour"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, loc *time.Location) commands.BookingOptions {
		return commands.BookingOptions{
			Location:   loc,
			TourPolicy: tour.Policy{UnboundedFirstBooking: cfg.Booking.LegacyFirstTourBooking},
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTourBookingCommands,
		commands.NewRestaurantBookingCommands,
		commands.NewRatingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewStatsQueries,
	),
)
