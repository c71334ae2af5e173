package bootstrap

import (
	"context"
	"log/slog"

	"tourism-api/internal/infra/events"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/usecase/queries"
	"tourism-api/internal/usecase/shared"
	"tourism-api/internal/worker"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		NewOutboxDispatcher,
	),
	fx.Invoke(ScheduleOutbox),
)

func NewScheduler(lc fx.Lifecycle) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return s, nil
}

func NewOutboxDispatcher(store shared.OutboxStore, publisher events.Publisher, stats queries.StatsQueries, clk clock.Clock, cfg config.Config) *worker.OutboxDispatcher {
	return worker.NewOutboxDispatcher(store, publisher, stats, clk, cfg.Outbox)
}

func ScheduleOutbox(s gocron.Scheduler, d *worker.OutboxDispatcher, cfg config.Config, logger *slog.Logger) error {
	if !cfg.Outbox.Enabled {
		logger.Info("outbox dispatcher disabled")
		return nil
	}
	job, err := d.Schedule(s, cfg.Outbox.Interval)
	if err != nil {
		return err
	}
	logger.Info("outbox dispatcher scheduled", "job_id", job.ID(), "interval", cfg.Outbox.Interval)
	return nil
}
