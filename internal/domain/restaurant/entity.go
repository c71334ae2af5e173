package restaurant

import (
	"time"

	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeopleCount = errs.Invalid("number of people must be greater than zero")
	ErrDateInPast         = errs.Invalid("reservation date must not be in the past")
)

type Restaurant struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	OwnerID  uuid.UUID
	Status   string
}

// Available is the number of seats left in one slot given what is already booked.
func (r Restaurant) Available(consumed int) int {
	return r.Capacity - consumed
}

type Reservation struct {
	id             uuid.UUID
	restaurantID   uuid.UUID
	userID         uuid.UUID
	date           time.Time
	slot           MealSlot
	numberOfPeople int
	createdAt      time.Time
}

// NewReservation validates a booking request. date is compared against the
// calendar day of now in loc.
func NewReservation(
	restaurantID, userID uuid.UUID,
	date time.Time,
	slot MealSlot,
	numberOfPeople int,
	now time.Time,
	loc *time.Location,
) (*Reservation, error) {
	if numberOfPeople <= 0 {
		return nil, ErrInvalidPeopleCount
	}
	if !slot.IsValid() {
		return nil, ErrInvalidMealSlot
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return nil, ErrDateInPast
	}

	return &Reservation{
		id:             uuid.New(),
		restaurantID:   restaurantID,
		userID:         userID,
		date:           day,
		slot:           slot,
		numberOfPeople: numberOfPeople,
		createdAt:      now,
	}, nil
}

func ReconstructReservation(
	id, restaurantID, userID uuid.UUID,
	date time.Time,
	slot MealSlot,
	numberOfPeople int,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		restaurantID:   restaurantID,
		userID:         userID,
		date:           date,
		slot:           slot,
		numberOfPeople: numberOfPeople,
		createdAt:      createdAt,
	}
}

// CheckCancellable enforces the slot's cancellation lead time.
// A lead exactly equal to the threshold is still allowed.
func (r *Reservation) CheckCancellable(now time.Time, loc *time.Location) error {
	lead := r.slot.StartsAt(r.date, loc).Sub(now)
	if threshold := r.slot.CancellationLead(); lead < threshold {
		return errs.CancellationWindowClosed(threshold)
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) Date() time.Time         { return r.date }
func (r *Reservation) MealSlot() MealSlot      { return r.slot }
func (r *Reservation) NumberOfPeople() int     { return r.numberOfPeople }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
