package components

import (
	"tourism-api/internal/handler"
	"tourism-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTourReservationHandler,
		api.NewRestaurantReservationHandler,
		api.NewRatingHandler,
		api.NewStatsHandler,
		func(
			tours *api.TourReservationHandler,
			restaurants *api.RestaurantReservationHandler,
			ratings *api.RatingHandler,
			stats *api.StatsHandler,
		) handler.Handlers {
			return handler.Handlers{
				TourReservations:       tours,
				RestaurantReservations: restaurants,
				Ratings:                ratings,
				Stats:                  stats,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
