//go:build unit || e2e

package builder

import (
	"tourism-api/internal/domain/restaurant"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	OwnerID  uuid.UUID
	Status   string
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:       uuid.New(),
		Name:     "Kafana Dunav",
		Capacity: 10,
		OwnerID:  uuid.New(),
		Status:   "open",
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

func (b *RestaurantBuilder) WithCapacity(n int) *RestaurantBuilder {
	b.Capacity = n
	return b
}

func (b *RestaurantBuilder) WithOwner(id uuid.UUID) *RestaurantBuilder {
	b.OwnerID = id
	return b
}

func (b *RestaurantBuilder) Build() restaurant.Restaurant {
	return restaurant.Restaurant{
		ID:       b.ID,
		Name:     b.Name,
		Capacity: b.Capacity,
		OwnerID:  b.OwnerID,
		Status:   b.Status,
	}
}
