package bootstrap

import (
	"context"
	"log/slog"

	"tourism-api/internal/infra/events"
	"tourism-api/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	var p events.Publisher
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no KAFKA_BROKERS configured, events go to the log")
		p = events.NewLogPublisher(logger)
	} else {
		logger.Info("publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
		p = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
