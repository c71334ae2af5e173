package bootstrap

import (
	"time"

	"tourism-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBookingLocation,
	),
)

func NewBookingLocation(cfg config.Config) *time.Location {
	return cfg.Booking.Location()
}
