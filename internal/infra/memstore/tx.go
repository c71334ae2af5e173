package memstore

import (
	"context"
	"strings"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/rating"
	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/infra"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store *Store
	held  map[string]func()
	undo  []func()
}

func (t *memTx) Lock(ctx context.Context, name string) error {
	if _, ok := t.held[name]; ok {
		return nil
	}
	unlock, err := t.store.locks.Lock(ctx, name)
	if err != nil {
		return errs.Wrapf(err, "lock %s", name)
	}
	t.held[name] = unlock
	return nil
}

func (t *memTx) release() {
	for name, unlock := range t.held {
		unlock()
		delete(t.held, name)
	}
}

// rollback runs undo steps newest first, under the store lock.
func (t *memTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}

func (t *memTx) Lookup() shared.EntityLookup {
	return lookup{t.store}
}

func (t *memTx) Ledger() shared.CapacityLedger {
	return ledger{t.store}
}

func (t *memTx) TourReservations() shared.TourReservationRepository {
	return tourRepo{t}
}

func (t *memTx) RestaurantReservations() shared.RestaurantReservationRepository {
	return restaurantRepo{t}
}

func (t *memTx) Ratings() shared.RatingRepository {
	return ratingRepo{t}
}

func (t *memTx) Outbox() shared.OutboxRepository {
	return outboxRepo{t}
}

type lookup struct{ s *Store }

func (l lookup) TourByID(_ context.Context, id uuid.UUID) (*tour.Tour, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	t, ok := l.s.tours[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (l lookup) RestaurantByID(_ context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	r, ok := l.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (l lookup) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	u, ok := l.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type ledger struct{ s *Store }

func (l ledger) Usage(_ context.Context, key capacity.Key) (capacity.Usage, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	var usage capacity.Usage
	switch key.Kind() {
	case capacity.KindTour:
		for _, row := range l.s.tourReservations {
			if row.tourID == key.TourID() {
				usage.Consumed += row.guests
				usage.Reservations++
			}
		}
	case capacity.KindSlot:
		day := dayKey(key.Date())
		for _, row := range l.s.restaurantReservations {
			if row.restaurantID == key.RestaurantID() && row.date.Equal(day) && row.slot == key.MealSlot() {
				usage.Consumed += row.people
				usage.Reservations++
			}
		}
	default:
		return capacity.Usage{}, errs.Newf("unknown capacity key %s", key)
	}
	return usage, nil
}

type tourRepo struct{ tx *memTx }

func (r tourRepo) Create(_ context.Context, res *tour.Reservation) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.tourReservations {
		if row.userID == res.UserID() && row.tourID == res.TourID() {
			return infra.DuplicateKeyErr("tour reservation already exists for user")
		}
	}
	s.tourReservations[res.ID()] = &tourReservationRow{
		id:        res.ID(),
		tourID:    res.TourID(),
		userID:    res.UserID(),
		guests:    res.GuestsCount(),
		createdAt: res.CreatedAt(),
	}
	id := res.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.tourReservations, id) })
	return nil
}

func (r tourRepo) AddGuests(_ context.Context, id uuid.UUID, additional int) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tourReservations[id]
	if !ok {
		return infra.NotFoundErr("tour reservation not found")
	}
	row.guests += additional
	r.tx.undo = append(r.tx.undo, func() { row.guests -= additional })
	return nil
}

func (r tourRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tourReservations[id]
	if !ok {
		return infra.NotFoundErr("tour reservation not found")
	}
	delete(s.tourReservations, id)
	r.tx.undo = append(r.tx.undo, func() { s.tourReservations[id] = row })
	return nil
}

func (r tourRepo) FindByID(_ context.Context, id uuid.UUID) (*tour.Reservation, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.tourReservations[id]
	if !ok {
		return nil, nil
	}
	return row.toDomain(), nil
}

func (r tourRepo) FindByUserAndTour(_ context.Context, userID, tourID uuid.UUID) (*tour.Reservation, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.tourReservations {
		if row.userID == userID && row.tourID == tourID {
			return row.toDomain(), nil
		}
	}
	return nil, nil
}

func (row *tourReservationRow) toDomain() *tour.Reservation {
	return tour.ReconstructReservation(row.id, row.tourID, row.userID, row.guests, row.createdAt)
}

type restaurantRepo struct{ tx *memTx }

func (r restaurantRepo) Create(_ context.Context, res *restaurant.Reservation) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restaurantReservations[res.ID()] = &restaurantReservationRow{
		id:           res.ID(),
		restaurantID: res.RestaurantID(),
		userID:       res.UserID(),
		date:         dayKey(res.Date()),
		slot:         res.MealSlot(),
		people:       res.NumberOfPeople(),
		createdAt:    res.CreatedAt(),
	}
	id := res.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.restaurantReservations, id) })
	return nil
}

func (r restaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.restaurantReservations[id]
	if !ok {
		return infra.NotFoundErr("restaurant reservation not found")
	}
	delete(s.restaurantReservations, id)
	r.tx.undo = append(r.tx.undo, func() { s.restaurantReservations[id] = row })
	return nil
}

func (r restaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*restaurant.Reservation, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.restaurantReservations[id]
	if !ok {
		return nil, nil
	}
	return restaurant.ReconstructReservation(
		row.id, row.restaurantID, row.userID,
		s.localDay(row.date), row.slot, row.people, row.createdAt,
	), nil
}

type ratingRepo struct{ tx *memTx }

func (r ratingRepo) Create(_ context.Context, rt *rating.Rating) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.ratings {
		if row.kind == string(rt.Kind()) && row.entityID == rt.EntityID() && row.userID == rt.UserID() {
			return errs.Mark(errs.New("duplicate key value violates unique constraint uq_ratings_user_entity"), errs.ErrAlreadyRated)
		}
	}
	s.ratings[rt.ID()] = &ratingRow{
		id:        rt.ID(),
		kind:      string(rt.Kind()),
		entityID:  rt.EntityID(),
		userID:    rt.UserID(),
		score:     rt.Score().Value(),
		comment:   rt.Comment().String(),
		createdAt: rt.CreatedAt(),
	}
	id := rt.ID()
	r.tx.undo = append(r.tx.undo, func() { delete(s.ratings, id) })
	return nil
}

func (r ratingRepo) Exists(_ context.Context, kind rating.Kind, entityID, userID uuid.UUID) (bool, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range s.ratings {
		if strings.EqualFold(row.kind, string(kind)) && row.entityID == entityID && row.userID == userID {
			return true, nil
		}
	}
	return false, nil
}

type outboxRepo struct{ tx *memTx }

func (r outboxRepo) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row := &outboxRow{msg: msg, status: shared.OutboxPending, runAt: msg.CreatedAt}
	s.outbox = append(s.outbox, row)
	r.tx.undo = append(r.tx.undo, func() {
		for i, o := range s.outbox {
			if o == row {
				s.outbox = append(s.outbox[:i], s.outbox[i+1:]...)
				return
			}
		}
	})
	return nil
}
