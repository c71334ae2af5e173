// Package worker runs background jobs next to the HTTP server.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tourism-api/internal/infra/events"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const (
	claimLease   = 30 * time.Second
	retryBase    = 2 * time.Second
	retryCeiling = 10 * time.Minute
)

// StatsInvalidator drops cached owner statistics once a restaurant booking changes.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, ownerID, restaurantID uuid.UUID, year int) error
}

type OutboxDispatcher struct {
	store       shared.OutboxStore
	publisher   events.Publisher
	stats       StatsInvalidator
	clock       clock.Clock
	batchSize   int
	maxAttempts int
}

func NewOutboxDispatcher(store shared.OutboxStore, publisher events.Publisher, stats StatsInvalidator, clk clock.Clock, cfg config.OutboxConfig) *OutboxDispatcher {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 50
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 10
	}
	return &OutboxDispatcher{
		store:       store,
		publisher:   publisher,
		stats:       stats,
		clock:       clk,
		batchSize:   batch,
		maxAttempts: attempts,
	}
}

// Schedule registers the dispatcher as a singleton duration job.
func (d *OutboxDispatcher) Schedule(s gocron.Scheduler, interval time.Duration) (gocron.Job, error) {
	return s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func(ctx context.Context) {
			if _, err := d.Dispatch(ctx); err != nil {
				slog.ErrorContext(ctx, "outbox dispatch failed", "error", err.Error())
			}
		}),
		gocron.WithName("outbox-dispatcher"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
}

// Dispatch publishes one batch of due messages and returns how many were sent.
func (d *OutboxDispatcher) Dispatch(ctx context.Context) (int, error) {
	now := d.clock.Now()
	msgs, err := d.store.ClaimPending(ctx, d.batchSize, now, claimLease)
	if err != nil {
		return 0, errs.Wrap(err, "claim outbox batch")
	}

	sent := 0
	for _, msg := range msgs {
		// stats go stale on commit, not on publish
		d.invalidate(ctx, msg)
		if err := d.publisher.Publish(ctx, msg); err != nil {
			d.fail(ctx, msg, err)
			continue
		}
		if err := d.store.MarkSent(ctx, msg.ID, d.clock.Now()); err != nil {
			return sent, errs.Wrapf(err, "mark outbox message %s sent", msg.ID)
		}
		sent++
	}

	if len(msgs) > 0 {
		slog.DebugContext(ctx, "outbox batch dispatched", "claimed", len(msgs), "sent", sent)
	}
	return sent, nil
}

func (d *OutboxDispatcher) fail(ctx context.Context, msg shared.OutboxMessage, cause error) {
	var retryAt *time.Time
	if msg.Attempts < d.maxAttempts {
		at := d.clock.Now().Add(RetryDelay(msg.Attempts))
		retryAt = &at
	}

	slog.WarnContext(ctx, "outbox publish failed",
		"event_id", msg.ID,
		"kind", msg.Kind,
		"attempts", msg.Attempts,
		"gave_up", retryAt == nil,
		"error", cause.Error())

	if err := d.store.MarkFailed(ctx, msg.ID, cause.Error(), retryAt); err != nil {
		slog.ErrorContext(ctx, "outbox mark failed", "event_id", msg.ID, "error", err.Error())
	}
}

func (d *OutboxDispatcher) invalidate(ctx context.Context, msg shared.OutboxMessage) {
	if d.stats == nil {
		return
	}
	if msg.Kind != shared.EventRestaurantReservationBooked && msg.Kind != shared.EventRestaurantReservationCancelled {
		return
	}

	var ev shared.RestaurantReservationEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		slog.WarnContext(ctx, "outbox payload not decodable", "event_id", msg.ID, "error", err.Error())
		return
	}
	day, err := time.Parse(time.DateOnly, ev.Date)
	if err != nil {
		slog.WarnContext(ctx, "outbox payload has bad date", "event_id", msg.ID, "date", ev.Date)
		return
	}
	if err := d.stats.Invalidate(ctx, ev.OwnerID, ev.RestaurantID, day.Year()); err != nil {
		slog.WarnContext(ctx, "stats cache invalidation failed", "restaurant_id", ev.RestaurantID, "error", err.Error())
	}
}

// RetryDelay doubles from two seconds per attempt, capped at ten minutes.
func RetryDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := retryBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= retryCeiling {
			return retryCeiling
		}
	}
	return delay
}
