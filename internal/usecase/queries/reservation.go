package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	TourReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*TourReservationView, error)
	// date narrows the list to one calendar day when set.
	RestaurantReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *time.Time, limit int) ([]*RestaurantReservationView, error)
	RestaurantReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RestaurantReservationView, error)
}

type ReservationQueries interface {
	ListTourReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*TourReservationView, error)
	ListRestaurantReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *time.Time, limit int) ([]*RestaurantReservationView, error)
	ListRestaurantReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RestaurantReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListTourReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*TourReservationView, error) {
	return q.store.TourReservationsByUser(ctx, userID, ValidateLimit(limit))
}

func (q *reservationQueriesImpl) ListRestaurantReservationsByRestaurant(ctx context.Context, restaurantID uuid.UUID, date *time.Time, limit int) ([]*RestaurantReservationView, error) {
	return q.store.RestaurantReservationsByRestaurant(ctx, restaurantID, date, ValidateLimit(limit))
}

func (q *reservationQueriesImpl) ListRestaurantReservationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*RestaurantReservationView, error) {
	return q.store.RestaurantReservationsByUser(ctx, userID, ValidateLimit(limit))
}
