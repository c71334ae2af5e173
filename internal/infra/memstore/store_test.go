//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/infra/memstore"
	"tourism-api/internal/usecase/shared"
	"tourism-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func TestStore_WithinRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)
	tr := builder.NewTourBuilder().Build()
	u := builder.NewUserBuilder().Build()
	store.PutTour(tr)
	store.PutUser(u)

	boom := errors.New("boom")
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tour.NewReservation(tr.ID, u.ID, 4, now)
		require.NoError(t, err)
		require.NoError(t, tx.TourReservations().Create(ctx, res))
		require.NoError(t, tx.Outbox().Enqueue(ctx, shared.OutboxMessage{ID: uuid.New(), Kind: "k", CreatedAt: now}))

		usage, err := tx.Ledger().Usage(ctx, capacity.TourKey(tr.ID))
		require.NoError(t, err)
		assert.Equal(t, 4, usage.Consumed)
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		usage, err := tx.Ledger().Usage(ctx, capacity.TourKey(tr.ID))
		require.NoError(t, err)
		assert.Zero(t, usage.Consumed)
		found, err := tx.TourReservations().FindByUserAndTour(ctx, u.ID, tr.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, store.PendingOutbox())
}

func TestStore_RollbackRestoresMergedGuests(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)
	tr := builder.NewTourBuilder().Build()
	store.PutTour(tr)

	res, err := tour.NewReservation(tr.ID, uuid.New(), 2, now)
	require.NoError(t, err)
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.TourReservations().Create(ctx, res)
	}))

	_ = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.TourReservations().AddGuests(ctx, res.ID(), 5))
		return errors.New("abort")
	})

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.TourReservations().FindByID(ctx, res.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 2, found.GuestsCount())
		return nil
	}))
}

func TestStore_LockIsReentrantWithinUnit(t *testing.T) {
	store := memstore.New(time.UTC)
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Lock(ctx, "tour:x"))
		return tx.Lock(ctx, "tour:x")
	})
	require.NoError(t, err)
}

func TestStore_LockHonoursContext(t *testing.T) {
	store := memstore.New(time.UTC)
	held := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Lock(ctx, "slot:x"))
			close(held)
			<-done
			return nil
		})
	}()
	<-held
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lock(ctx, "slot:x")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStore_OutboxClaimLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, id := range ids {
			if err := tx.Outbox().Enqueue(ctx, shared.OutboxMessage{ID: id, Kind: "k", CreatedAt: now}); err != nil {
				return err
			}
		}
		return nil
	}))

	claimed, err := store.ClaimPending(ctx, 2, now, time.Minute)
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.Equal(t, 1, claimed[0].Attempts)

	// leased messages are not handed out again before the lease ends
	again, err := store.ClaimPending(ctx, 10, now.Add(time.Second), time.Minute)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, ids[2], again[0].ID)

	require.NoError(t, store.MarkSent(ctx, ids[0], now))
	retryAt := now.Add(time.Hour)
	require.NoError(t, store.MarkFailed(ctx, ids[1], "broker down", &retryAt))
	require.NoError(t, store.MarkFailed(ctx, ids[2], "poison", nil))

	pending := store.PendingOutbox()
	require.Len(t, pending, 1)
	assert.Equal(t, ids[1], pending[0].ID)

	none, err := store.ClaimPending(ctx, 10, now.Add(2*time.Minute), time.Minute)
	require.NoError(t, err)
	assert.Empty(t, none)

	retried, err := store.ClaimPending(ctx, 10, retryAt, time.Minute)
	require.NoError(t, err)
	require.Len(t, retried, 1)
	assert.Equal(t, 2, retried[0].Attempts)
}
