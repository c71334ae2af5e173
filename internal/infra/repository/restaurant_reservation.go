package repository

import (
	"context"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertRestaurantReservationSQL = `
INSERT INTO restaurant_reservations (id, restaurant_id, user_id, reservation_date, meal_slot, number_of_people, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	deleteRestaurantReservationSQL = `DELETE FROM restaurant_reservations WHERE id = $1`

	selectRestaurantReservationSQL = `
SELECT id, restaurant_id, user_id, reservation_date, meal_slot, number_of_people, created_at
FROM restaurant_reservations
WHERE id = $1`
)

type RestaurantReservationRepository struct {
	db  db.DBTX
	loc *time.Location
}

// loc anchors DATE columns at local midnight.
func NewRestaurantReservationRepository(dbtx db.DBTX, loc *time.Location) *RestaurantReservationRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &RestaurantReservationRepository{db: dbtx, loc: loc}
}

func (r *RestaurantReservationRepository) Create(ctx context.Context, res *restaurant.Reservation) error {
	_, err := r.db.Exec(ctx, insertRestaurantReservationSQL,
		res.ID(),
		res.RestaurantID(),
		res.UserID(),
		pgconv.DateToPgtype(res.Date()),
		res.MealSlot().String(),
		res.NumberOfPeople(),
		res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create restaurant reservation", err)
	}
	return nil
}

func (r *RestaurantReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteRestaurantReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete restaurant reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("restaurant reservation not found")
	}
	return nil
}

func (r *RestaurantReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Reservation, error) {
	var (
		resID, restaurantID, userID uuid.UUID
		date                        pgtype.Date
		slot                        string
		people                      int32
		createdAt                   time.Time
	)
	err := r.db.QueryRow(ctx, selectRestaurantReservationSQL, id).
		Scan(&resID, &restaurantID, &userID, &date, &slot, &people, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find restaurant reservation", err)
	}
	return restaurant.ReconstructReservation(
		resID, restaurantID, userID,
		pgconv.DateFromPgtype(date, r.loc),
		restaurant.MealSlot(slot),
		int(people),
		createdAt,
	), nil
}
