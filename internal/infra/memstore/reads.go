package memstore

import (
	"context"
	"sort"
	"time"

	"tourism-api/internal/usecase/queries"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) TourReservationsByUser(_ context.Context, userID uuid.UUID, limit int) ([]*queries.TourReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := []*queries.TourReservationView{}
	for _, row := range s.tourReservations {
		if row.userID != userID {
			continue
		}
		t := s.tours[row.tourID]
		v := &queries.TourReservationView{
			ID:          row.id,
			TourID:      row.tourID,
			TourName:    t.Name,
			UserID:      row.userID,
			GuestsCount: row.guests,
			CreatedAt:   row.createdAt,
		}
		if !t.StartsAt.IsZero() {
			startsAt := t.StartsAt
			v.TourStartsAt = &startsAt
		}
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool {
		if !views[i].CreatedAt.Equal(views[j].CreatedAt) {
			return views[i].CreatedAt.After(views[j].CreatedAt)
		}
		return views[i].ID.String() < views[j].ID.String()
	})
	return truncate(views, limit), nil
}

func (s *Store) RestaurantReservationsByRestaurant(_ context.Context, restaurantID uuid.UUID, date *time.Time, limit int) ([]*queries.RestaurantReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := s.restaurantViews(func(row *restaurantReservationRow) bool {
		if row.restaurantID != restaurantID {
			return false
		}
		return date == nil || row.date.Equal(dayKey(*date))
	})
	sortRestaurantViews(views, false)
	return truncate(views, limit), nil
}

func (s *Store) RestaurantReservationsByUser(_ context.Context, userID uuid.UUID, limit int) ([]*queries.RestaurantReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := s.restaurantViews(func(row *restaurantReservationRow) bool {
		return row.userID == userID
	})
	sortRestaurantViews(views, true)
	return truncate(views, limit), nil
}

func (s *Store) restaurantViews(match func(*restaurantReservationRow) bool) []*queries.RestaurantReservationView {
	views := []*queries.RestaurantReservationView{}
	for _, row := range s.restaurantReservations {
		if !match(row) {
			continue
		}
		views = append(views, &queries.RestaurantReservationView{
			ID:             row.id,
			RestaurantID:   row.restaurantID,
			RestaurantName: s.restaurants[row.restaurantID].Name,
			UserID:         row.userID,
			Date:           s.localDay(row.date),
			MealSlot:       row.slot.String(),
			NumberOfPeople: row.people,
			CreatedAt:      row.createdAt,
		})
	}
	return views
}

// sortRestaurantViews orders by date (descending if newestFirst), then meal slot, then creation.
func sortRestaurantViews(views []*queries.RestaurantReservationView, newestFirst bool) {
	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if !a.Date.Equal(b.Date) {
			if newestFirst {
				return a.Date.After(b.Date)
			}
			return a.Date.Before(b.Date)
		}
		if sa, sb := slotOrder(a.MealSlot), slotOrder(b.MealSlot); sa != sb {
			return sa < sb
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func slotOrder(slot string) int {
	switch slot {
	case "breakfast":
		return 0
	case "lunch":
		return 1
	default:
		return 2
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (s *Store) OwnedRestaurant(_ context.Context, ownerID, restaurantID uuid.UUID) (*queries.RestaurantRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.restaurants[restaurantID]
	if !ok || r.OwnerID != ownerID {
		return nil, nil
	}
	return &queries.RestaurantRef{ID: r.ID, Name: r.Name, Capacity: r.Capacity, OwnerID: r.OwnerID}, nil
}

func (s *Store) MonthlyTotals(_ context.Context, restaurantID uuid.UUID, year int) ([]queries.MonthlyTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byMonth := make(map[time.Month]*queries.MonthlyTotal)
	for _, row := range s.restaurantReservations {
		if row.restaurantID != restaurantID || row.date.Year() != year {
			continue
		}
		t, ok := byMonth[row.date.Month()]
		if !ok {
			t = &queries.MonthlyTotal{Month: row.date.Month()}
			byMonth[row.date.Month()] = t
		}
		t.People += row.people
		t.Reservations++
	}

	totals := make([]queries.MonthlyTotal, 0, len(byMonth))
	for _, t := range byMonth {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })
	return totals, nil
}

func (s *Store) ReservationCountsByOwner(_ context.Context, ownerID uuid.UUID, year int) ([]queries.RestaurantReservationCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, row := range s.restaurantReservations {
		if row.date.Year() == year {
			counts[row.restaurantID]++
		}
	}

	var result []queries.RestaurantReservationCount
	for _, r := range s.restaurants {
		if r.OwnerID != ownerID {
			continue
		}
		result = append(result, queries.RestaurantReservationCount{
			RestaurantID:   r.ID,
			RestaurantName: r.Name,
			Reservations:   counts[r.ID],
		})
	}
	return result, nil
}

func (s *Store) GuideExists(_ context.Context, guideID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[guideID]
	return ok, nil
}

func (s *Store) GuideTourTotals(_ context.Context, guideID uuid.UUID, from, to *time.Time) ([]queries.TourTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guests := make(map[uuid.UUID]int)
	for _, row := range s.tourReservations {
		guests[row.tourID] += row.guests
	}

	var totals []queries.TourTotal
	for _, t := range s.tours {
		if t.GuideID != guideID {
			continue
		}
		if from != nil && (t.StartsAt.IsZero() || t.StartsAt.Before(*from)) {
			continue
		}
		if to != nil && (t.StartsAt.IsZero() || t.StartsAt.After(*to)) {
			continue
		}
		total := queries.TourTotal{
			TourID:    t.ID,
			Name:      t.Name,
			MaxGuests: t.MaxGuests,
			Guests:    guests[t.ID],
		}
		if !t.StartsAt.IsZero() {
			startsAt := t.StartsAt
			total.StartsAt = &startsAt
		}
		totals = append(totals, total)
	}
	return totals, nil
}

func (s *Store) ClaimPending(_ context.Context, limit int, now time.Time, lease time.Duration) ([]shared.OutboxMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claimed []shared.OutboxMessage
	for _, row := range s.outbox {
		if len(claimed) >= limit {
			break
		}
		if row.status != shared.OutboxPending || row.runAt.After(now) {
			continue
		}
		row.runAt = now.Add(lease)
		row.msg.Attempts++
		claimed = append(claimed, row.msg)
	}
	return claimed, nil
}

func (s *Store) MarkSent(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row := s.findOutbox(id); row != nil {
		row.status = shared.OutboxSent
		row.sentAt = &at
		row.lastError = ""
	}
	return nil
}

func (s *Store) MarkFailed(_ context.Context, id uuid.UUID, reason string, retryAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.findOutbox(id)
	if row == nil {
		return nil
	}
	row.lastError = reason
	if retryAt != nil {
		row.status = shared.OutboxPending
		row.runAt = *retryAt
	} else {
		row.status = shared.OutboxFailed
	}
	return nil
}

func (s *Store) findOutbox(id uuid.UUID) *outboxRow {
	for _, row := range s.outbox {
		if row.msg.ID == id {
			return row
		}
	}
	return nil
}
