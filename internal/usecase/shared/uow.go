package shared

import (
	"context"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/rating"
	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction; serialization failures are retried, so fn must be repeatable
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// Lock serializes every unit of work that locks the same name. It is held until the unit ends.
	Lock(ctx context.Context, name string) error
	Lookup() EntityLookup
	Ledger() CapacityLedger
	TourReservations() TourReservationRepository
	RestaurantReservations() RestaurantReservationRepository
	Ratings() RatingRepository
	Outbox() OutboxRepository
}

// EntityLookup resolves referenced entities. A missing entity is (nil, nil).
type EntityLookup interface {
	TourByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error)
	RestaurantByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// CapacityLedger sums committed reservations for a pool. It takes no locks.
type CapacityLedger interface {
	Usage(ctx context.Context, key capacity.Key) (capacity.Usage, error)
}

// Find methods return (nil, nil) when the row does not exist.
type TourReservationRepository interface {
	Create(ctx context.Context, res *tour.Reservation) error
	AddGuests(ctx context.Context, id uuid.UUID, additional int) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*tour.Reservation, error)
	FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*tour.Reservation, error)
}

type RestaurantReservationRepository interface {
	Create(ctx context.Context, res *restaurant.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Reservation, error)
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
	Exists(ctx context.Context, kind rating.Kind, entityID, userID uuid.UUID) (bool, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
}
