// Package events delivers outbox messages to downstream consumers.
package events

import (
	"context"
	"log/slog"

	"tourism-api/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, msg shared.OutboxMessage) error
	Close() error
}

// LogPublisher writes every message to the log. It stands in for Kafka when no
// brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	p.logger.InfoContext(ctx, "event published",
		"event_id", msg.ID,
		"kind", msg.Kind,
		"key", msg.Key,
		"payload", string(msg.Payload))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
