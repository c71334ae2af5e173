// Package capacity names the pools bookings are admitted against and the
// usage figures a ledger reports for them.
package capacity

import (
	"fmt"
	"hash/fnv"
	"time"

	"tourism-api/internal/domain/restaurant"

	"github.com/google/uuid"
)

type Kind string

const (
	KindTour Kind = "tour"
	KindSlot Kind = "slot"
)

// Key identifies one capacity pool: a whole tour, or one meal slot of a
// restaurant on one calendar day.
type Key struct {
	kind         Kind
	tourID       uuid.UUID
	restaurantID uuid.UUID
	date         time.Time
	slot         restaurant.MealSlot
}

func TourKey(tourID uuid.UUID) Key {
	return Key{kind: KindTour, tourID: tourID}
}

// SlotKey only keeps the calendar day of date.
func SlotKey(restaurantID uuid.UUID, date time.Time, slot restaurant.MealSlot) Key {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return Key{kind: KindSlot, restaurantID: restaurantID, date: day, slot: slot}
}

func (k Key) Kind() Kind                    { return k.kind }
func (k Key) TourID() uuid.UUID             { return k.tourID }
func (k Key) RestaurantID() uuid.UUID       { return k.restaurantID }
func (k Key) Date() time.Time               { return k.date }
func (k Key) MealSlot() restaurant.MealSlot { return k.slot }

func (k Key) String() string {
	switch k.kind {
	case KindTour:
		return "tour:" + k.tourID.String()
	case KindSlot:
		return fmt.Sprintf("slot:%s:%s:%s", k.restaurantID, k.date.Format(time.DateOnly), k.slot)
	default:
		return "invalid"
	}
}

// LockID is a stable 64-bit identifier for advisory locking.
func LockID(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64()) // #nosec G115 -- wraparound is fine for a lock id
}

// Usage is what a ledger reports for a key.
type Usage struct {
	Consumed     int
	Reservations int
}

// Empty reports whether no reservation exists for the key yet.
func (u Usage) Empty() bool {
	return u.Reservations == 0
}

func (u Usage) Remaining(limit int) int {
	return limit - u.Consumed
}
