package repository

import (
	"context"
	"time"

	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/pgconv"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertOutboxSQL = `
INSERT INTO outbox_messages (id, kind, message_key, payload, status, run_at, created_at)
VALUES ($1, $2, $3, $4, 'pending', $5, $5)`

	// The lease pushes run_at forward so a crashed dispatcher's rows become due again.
	claimOutboxSQL = `
UPDATE outbox_messages
SET run_at = $3, attempts = attempts + 1
WHERE id IN (
    SELECT id FROM outbox_messages
    WHERE status = 'pending' AND run_at <= $2
    ORDER BY created_at
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, message_key, payload, attempts, created_at`

	markOutboxSentSQL = `
UPDATE outbox_messages SET status = 'sent', sent_at = $2, last_error = NULL WHERE id = $1`

	retryOutboxSQL = `
UPDATE outbox_messages SET status = 'pending', run_at = $3, last_error = $2 WHERE id = $1`

	failOutboxSQL = `
UPDATE outbox_messages SET status = 'failed', last_error = $2 WHERE id = $1`
)

// OutboxRepository writes through the caller's transaction on Enqueue, and
// through the pool for the dispatcher methods.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	_, err := r.db.Exec(ctx, insertOutboxSQL, msg.ID, msg.Kind, msg.Key, msg.Payload, msg.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox message", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, limit int, now time.Time, lease time.Duration) ([]shared.OutboxMessage, error) {
	rows, err := r.db.Query(ctx, claimOutboxSQL, limit, now, now.Add(lease))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox messages", err)
	}
	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.OutboxMessage, error) {
		var (
			m        shared.OutboxMessage
			attempts int32
		)
		err := row.Scan(&m.ID, &m.Kind, &m.Key, &m.Payload, &attempts, &m.CreatedAt)
		m.Attempts = int(attempts)
		return m, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read claimed outbox messages", err)
	}
	return msgs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := r.db.Exec(ctx, markOutboxSentSQL, id, at); err != nil {
		return infra.WrapRepoErr("failed to mark outbox message sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string, retryAt *time.Time) error {
	var err error
	if retryAt != nil {
		_, err = r.db.Exec(ctx, retryOutboxSQL, id, pgconv.StringToNullable(reason), *retryAt)
	} else {
		_, err = r.db.Exec(ctx, failOutboxSQL, id, pgconv.StringToNullable(reason))
	}
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox message failed", err)
	}
	return nil
}
