package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/infra/repository"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	advisoryLockSQL = `SELECT pg_advisory_xact_lock($1)`
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

// loc is the booking time zone used to read DATE columns back.
func NewPostgresUoW(pool *pgxpool.Pool, loc *time.Location) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		loc:  loc,
	}
}

// Within runs fn at READ COMMITTED: statements issued after Tx.Lock must see
// the rows committed by the previous lock holder.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	lookup            shared.EntityLookup
	ledger            shared.CapacityLedger
	tourResRepo       shared.TourReservationRepository
	restaurantResRepo shared.RestaurantReservationRepository
	ratingRepo        shared.RatingRepository
	outboxRepo        shared.OutboxRepository
}

func (t *pgTx) Lock(ctx context.Context, name string) error {
	if _, err := t.dbtx.Exec(ctx, advisoryLockSQL, capacity.LockID(name)); err != nil {
		return infra.WrapRepoErr("failed to acquire advisory lock "+name, err)
	}
	return nil
}

func (t *pgTx) Lookup() shared.EntityLookup {
	if t.lookup == nil {
		t.lookup = repository.NewEntityLookup(t.dbtx)
	}
	return t.lookup
}

func (t *pgTx) Ledger() shared.CapacityLedger {
	if t.ledger == nil {
		t.ledger = repository.NewCapacityLedger(t.dbtx)
	}
	return t.ledger
}

func (t *pgTx) TourReservations() shared.TourReservationRepository {
	if t.tourResRepo == nil {
		t.tourResRepo = repository.NewTourReservationRepository(t.dbtx)
	}
	return t.tourResRepo
}

func (t *pgTx) RestaurantReservations() shared.RestaurantReservationRepository {
	if t.restaurantResRepo == nil {
		t.restaurantResRepo = repository.NewRestaurantReservationRepository(t.dbtx, t.uow.loc)
	}
	return t.restaurantResRepo
}

func (t *pgTx) Ratings() shared.RatingRepository {
	if t.ratingRepo == nil {
		t.ratingRepo = repository.NewRatingRepository(t.dbtx)
	}
	return t.ratingRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.dbtx)
	}
	return t.outboxRepo
}
