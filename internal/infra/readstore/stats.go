package readstore

import (
	"context"
	"time"

	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/pgconv"
	"tourism-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	ownedRestaurantSQL = `
SELECT id, name, capacity, owner_id FROM restaurants WHERE id = $1 AND owner_id = $2`

	monthlyTotalsSQL = `
SELECT EXTRACT(MONTH FROM reservation_date)::int AS month,
       COALESCE(SUM(number_of_people), 0),
       COUNT(*)
FROM restaurant_reservations
WHERE restaurant_id = $1
  AND reservation_date >= make_date($2, 1, 1)
  AND reservation_date < make_date($2 + 1, 1, 1)
GROUP BY month
ORDER BY month`

	reservationCountsByOwnerSQL = `
SELECT r.id, r.name, COUNT(rr.id)
FROM restaurants r
LEFT JOIN restaurant_reservations rr
       ON rr.restaurant_id = r.id
      AND rr.reservation_date >= make_date($2, 1, 1)
      AND rr.reservation_date < make_date($2 + 1, 1, 1)
WHERE r.owner_id = $1
GROUP BY r.id, r.name
ORDER BY COUNT(rr.id) DESC, r.id`

	guideExistsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	guideTourTotalsSQL = `
SELECT t.id, t.name, t.max_guests, COALESCE(SUM(tr.guests_count), 0), t.starts_at
FROM tours t
LEFT JOIN tour_reservations tr ON tr.tour_id = t.id
WHERE t.guide_id = $1
  AND ($2::timestamptz IS NULL OR t.starts_at >= $2)
  AND ($3::timestamptz IS NULL OR t.starts_at <= $3)
GROUP BY t.id, t.name, t.max_guests, t.starts_at
ORDER BY t.id`
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(dbtx db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: dbtx}
}

func (s *StatsReadStore) OwnedRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID) (*queries.RestaurantRef, error) {
	var (
		ref   queries.RestaurantRef
		seats int32
	)
	err := s.db.QueryRow(ctx, ownedRestaurantSQL, restaurantID, ownerID).Scan(&ref.ID, &ref.Name, &seats, &ref.OwnerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load owned restaurant", err)
	}
	ref.Capacity = int(seats)
	return &ref, nil
}

func (s *StatsReadStore) MonthlyTotals(ctx context.Context, restaurantID uuid.UUID, year int) ([]queries.MonthlyTotal, error) {
	rows, err := s.db.Query(ctx, monthlyTotalsSQL, restaurantID, year)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate monthly reservations", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.MonthlyTotal, error) {
		var (
			month          int32
			people, counts int64
		)
		if err := row.Scan(&month, &people, &counts); err != nil {
			return queries.MonthlyTotal{}, err
		}
		return queries.MonthlyTotal{
			Month:        time.Month(month),
			People:       int(people),
			Reservations: int(counts),
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan monthly reservations", err)
	}
	return totals, nil
}

func (s *StatsReadStore) ReservationCountsByOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]queries.RestaurantReservationCount, error) {
	rows, err := s.db.Query(ctx, reservationCountsByOwnerSQL, ownerID, year)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count owner reservations", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.RestaurantReservationCount, error) {
		var (
			c     queries.RestaurantReservationCount
			total int64
		)
		if err := row.Scan(&c.RestaurantID, &c.RestaurantName, &total); err != nil {
			return c, err
		}
		c.Reservations = int(total)
		return c, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan owner reservations", err)
	}
	return counts, nil
}

func (s *StatsReadStore) GuideExists(ctx context.Context, guideID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, guideExistsSQL, guideID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to look up guide", err)
	}
	return exists, nil
}

func (s *StatsReadStore) GuideTourTotals(ctx context.Context, guideID uuid.UUID, from, to *time.Time) ([]queries.TourTotal, error) {
	rows, err := s.db.Query(ctx, guideTourTotalsSQL, guideID, pgconv.TimePtrToPgtype(from), pgconv.TimePtrToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate guide tours", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.TourTotal, error) {
		var (
			t         queries.TourTotal
			maxGuests int32
			guests    int64
			startsAt  pgtype.Timestamptz
		)
		if err := row.Scan(&t.TourID, &t.Name, &maxGuests, &guests, &startsAt); err != nil {
			return t, err
		}
		t.MaxGuests = int(maxGuests)
		t.Guests = int(guests)
		if startsAt.Valid {
			ts := startsAt.Time
			t.StartsAt = &ts
		}
		return t, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan guide tours", err)
	}
	return totals, nil
}
