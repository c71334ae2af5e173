//go:build unit

package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tourism-api/internal/infra/memstore"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/usecase/shared"
	"tourism-api/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	return m.Called(ctx, msg.Kind).Error(0)
}

func (m *publisherMock) Close() error {
	return nil
}

type invalidatorMock struct {
	mock.Mock
}

func (m *invalidatorMock) Invalidate(ctx context.Context, ownerID, restaurantID uuid.UUID, year int) error {
	return m.Called(ctx, ownerID, restaurantID, year).Error(0)
}

var dispatchNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

func enqueue(t *testing.T, store *memstore.Store, kind string, payload any) uuid.UUID {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	id := uuid.New()
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{ID: id, Kind: kind, Key: "k", Payload: body, CreatedAt: dispatchNow})
	}))
	return id
}

func TestOutboxDispatcher_PublishesAndInvalidates(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)
	pub := new(publisherMock)
	inv := new(invalidatorMock)
	clk := clock.NewMockClock(dispatchNow)

	owner, restaurantID := uuid.New(), uuid.New()
	enqueue(t, store, shared.EventTourReservationBooked, shared.TourReservationEvent{TourID: uuid.New()})
	enqueue(t, store, shared.EventRestaurantReservationBooked, shared.RestaurantReservationEvent{
		RestaurantID: restaurantID, OwnerID: owner, Date: "2025-08-14", MealSlot: "dinner",
	})

	pub.On("Publish", mock.Anything, shared.EventTourReservationBooked).Return(nil).Once()
	pub.On("Publish", mock.Anything, shared.EventRestaurantReservationBooked).Return(nil).Once()
	inv.On("Invalidate", mock.Anything, owner, restaurantID, 2025).Return(nil).Once()

	d := worker.NewOutboxDispatcher(store, pub, inv, clk, config.OutboxConfig{BatchSize: 10, MaxAttempts: 3})
	sent, err := d.Dispatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Empty(t, store.PendingOutbox())

	pub.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestOutboxDispatcher_RetriesThenGivesUp(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)
	pub := new(publisherMock)
	clk := clock.NewMockClock(dispatchNow)
	enqueue(t, store, shared.EventRatingCreated, shared.RatingEvent{Score: 5})

	pub.On("Publish", mock.Anything, shared.EventRatingCreated).Return(errors.New("broker down"))
	d := worker.NewOutboxDispatcher(store, pub, nil, clk, config.OutboxConfig{BatchSize: 10, MaxAttempts: 2})

	sent, err := d.Dispatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	require.Len(t, store.PendingOutbox(), 1)

	// not due before the backoff elapses
	sent, err = d.Dispatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	pub.AssertNumberOfCalls(t, "Publish", 1)

	clk.Add(worker.RetryDelay(1))
	_, err = d.Dispatch(ctx)
	require.NoError(t, err)
	pub.AssertNumberOfCalls(t, "Publish", 2)
	assert.Empty(t, store.PendingOutbox())
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, worker.RetryDelay(0))
	assert.Equal(t, 2*time.Second, worker.RetryDelay(1))
	assert.Equal(t, 8*time.Second, worker.RetryDelay(3))
	assert.Equal(t, 10*time.Minute, worker.RetryDelay(30))
}

func TestOutboxDispatcher_InvalidatesWhenPublishFails(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(time.UTC)
	pub := new(publisherMock)
	inv := new(invalidatorMock)
	clk := clock.NewMockClock(dispatchNow)

	owner, restaurantID := uuid.New(), uuid.New()
	enqueue(t, store, shared.EventRestaurantReservationCancelled, shared.RestaurantReservationEvent{
		RestaurantID: restaurantID, OwnerID: owner, Date: "2026-01-03", MealSlot: "lunch",
	})

	pub.On("Publish", mock.Anything, shared.EventRestaurantReservationCancelled).Return(errors.New("broker down")).Once()
	inv.On("Invalidate", mock.Anything, owner, restaurantID, 2026).Return(nil).Once()

	d := worker.NewOutboxDispatcher(store, pub, inv, clk, config.OutboxConfig{BatchSize: 10, MaxAttempts: 3})
	sent, err := d.Dispatch(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)
	require.Len(t, store.PendingOutbox(), 1)

	pub.AssertExpectations(t)
	inv.AssertExpectations(t)
}
