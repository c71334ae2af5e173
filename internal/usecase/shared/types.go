package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserSnapshot struct {
	ID       uuid.UUID
	Username string
}

type OutboxStatus string

const (
	OutboxPending OutboxStatus = "pending"
	OutboxSent    OutboxStatus = "sent"
	OutboxFailed  OutboxStatus = "failed"
)

// OutboxMessage is an event recorded in the same transaction as the change it describes.
type OutboxMessage struct {
	ID        uuid.UUID
	Kind      string
	Key       string
	Payload   []byte
	Attempts  int
	CreatedAt time.Time
}

// OutboxStore is the dispatcher's view of the outbox.
type OutboxStore interface {
	// ClaimPending leases up to limit due messages so that concurrent dispatchers skip them.
	ClaimPending(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	// MarkFailed schedules another attempt at retryAt, or gives up when retryAt is nil.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error
}
