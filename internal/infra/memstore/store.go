// Package memstore is an in-process implementation of the persistence ports.
//
// Writes are applied immediately and undone if the unit of work fails.
// Per-name locks taken through Tx.Lock are held until the unit ends, which
// gives the same admission serialization as the Postgres advisory locks.
package memstore

import (
	"context"
	"sync"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/pkg/keylock"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type tourReservationRow struct {
	id        uuid.UUID
	tourID    uuid.UUID
	userID    uuid.UUID
	guests    int
	createdAt time.Time
}

type restaurantReservationRow struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	userID       uuid.UUID
	date         time.Time // UTC midnight of the calendar day
	slot         restaurant.MealSlot
	people       int
	createdAt    time.Time
}

type ratingRow struct {
	id        uuid.UUID
	kind      string
	entityID  uuid.UUID
	userID    uuid.UUID
	score     int
	comment   string
	createdAt time.Time
}

type outboxRow struct {
	msg       shared.OutboxMessage
	status    shared.OutboxStatus
	runAt     time.Time
	lastError string
	sentAt    *time.Time
}

type Store struct {
	mu sync.RWMutex

	users       map[uuid.UUID]shared.UserSnapshot
	tours       map[uuid.UUID]tour.Tour
	restaurants map[uuid.UUID]restaurant.Restaurant

	tourReservations       map[uuid.UUID]*tourReservationRow
	restaurantReservations map[uuid.UUID]*restaurantReservationRow
	ratings                map[uuid.UUID]*ratingRow
	outbox                 []*outboxRow

	locks *keylock.Locker
	loc   *time.Location
}

// New creates an empty store. loc anchors reservation dates read back from the store.
func New(loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{
		users:                  make(map[uuid.UUID]shared.UserSnapshot),
		tours:                  make(map[uuid.UUID]tour.Tour),
		restaurants:            make(map[uuid.UUID]restaurant.Restaurant),
		tourReservations:       make(map[uuid.UUID]*tourReservationRow),
		restaurantReservations: make(map[uuid.UUID]*restaurantReservationRow),
		ratings:                make(map[uuid.UUID]*ratingRow),
		locks:                  keylock.New(),
		loc:                    loc,
	}
}

func (s *Store) PutUser(u shared.UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) PutTour(t tour.Tour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours[t.ID] = t
}

func (s *Store) PutRestaurant(r restaurant.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[r.ID] = r
}

// DeleteTour removes the tour together with its reservations.
func (s *Store) DeleteTour(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tours, id)
	for rid, row := range s.tourReservations {
		if row.tourID == id {
			delete(s.tourReservations, rid)
		}
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: s, held: make(map[string]func())}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// PendingOutbox returns the messages not yet sent, oldest first.
func (s *Store) PendingOutbox() []shared.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var msgs []shared.OutboxMessage
	for _, row := range s.outbox {
		if row.status == shared.OutboxPending {
			msgs = append(msgs, row.msg)
		}
	}
	return msgs
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Store) localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}
