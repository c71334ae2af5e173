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
	tourReservationsByUserSQL = `
SELECT tr.id, tr.tour_id, t.name, t.starts_at, tr.user_id, tr.guests_count, tr.created_at
FROM tour_reservations tr
JOIN tours t ON t.id = tr.tour_id
WHERE tr.user_id = $1
ORDER BY tr.created_at DESC, tr.id
LIMIT $2`

	restaurantReservationColumns = `
SELECT rr.id, rr.restaurant_id, r.name, rr.user_id, rr.reservation_date, rr.meal_slot, rr.number_of_people, rr.created_at
FROM restaurant_reservations rr
JOIN restaurants r ON r.id = rr.restaurant_id`

	mealSlotOrder = `CASE rr.meal_slot WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 ELSE 2 END`

	restaurantReservationsByRestaurantSQL = restaurantReservationColumns + `
WHERE rr.restaurant_id = $1 AND ($2::date IS NULL OR rr.reservation_date = $2)
ORDER BY rr.reservation_date, ` + mealSlotOrder + `, rr.created_at
LIMIT $3`

	restaurantReservationsByUserSQL = restaurantReservationColumns + `
WHERE rr.user_id = $1
ORDER BY rr.reservation_date DESC, ` + mealSlotOrder + `, rr.created_at
LIMIT $2`
)

type ReservationReadStore struct {
	db  db.DBTX
	loc *time.Location
}

func NewReservationReadStore(dbtx db.DBTX, loc *time.Location) *ReservationReadStore {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationReadStore{db: dbtx, loc: loc}
}

func (s *ReservationReadStore) TourReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.TourReservationView, error) {
	rows, err := s.db.Query(ctx, tourReservationsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tour reservations", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.TourReservationView, error) {
		var (
			v        queries.TourReservationView
			startsAt pgtype.Timestamptz
			guests   int32
		)
		if err := row.Scan(&v.ID, &v.TourID, &v.TourName, &startsAt, &v.UserID, &guests, &v.CreatedAt); err != nil {
			return nil, err
		}
		if startsAt.Valid {
			t := startsAt.Time
			v.TourStartsAt = &t
		}
		v.GuestsCount = int(guests)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tour reservations", err)
	}
	return views, nil
}

func (s *ReservationReadStore) RestaurantReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *time.Time, limit int) ([]*queries.RestaurantReservationView, error) {
	day := pgtype.Date{}
	if date != nil {
		day = pgconv.DateToPgtype(*date)
	}
	rows, err := s.db.Query(ctx, restaurantReservationsByRestaurantSQL, restaurantID, day, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurant reservations", err)
	}
	return s.collectRestaurantReservations(rows)
}

func (s *ReservationReadStore) RestaurantReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.RestaurantReservationView, error) {
	rows, err := s.db.Query(ctx, restaurantReservationsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user restaurant reservations", err)
	}
	return s.collectRestaurantReservations(rows)
}

func (s *ReservationReadStore) collectRestaurantReservations(rows pgx.Rows) ([]*queries.RestaurantReservationView, error) {
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.RestaurantReservationView, error) {
		var (
			v      queries.RestaurantReservationView
			date   pgtype.Date
			people int32
		)
		if err := row.Scan(&v.ID, &v.RestaurantID, &v.RestaurantName, &v.UserID, &date, &v.MealSlot, &people, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Date = pgconv.DateFromPgtype(date, s.loc)
		v.NumberOfPeople = int(people)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan restaurant reservations", err)
	}
	return views, nil
}
