package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTourReservationBooked          = "tour_reservation.booked"
	EventTourReservationAmended         = "tour_reservation.amended"
	EventTourReservationCancelled       = "tour_reservation.cancelled"
	EventRestaurantReservationBooked    = "restaurant_reservation.booked"
	EventRestaurantReservationCancelled = "restaurant_reservation.cancelled"
	EventRatingCreated                  = "rating.created"
)

type TourReservationEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	TourID        uuid.UUID `json:"tour_id"`
	UserID        uuid.UUID `json:"user_id"`
	GuestsCount   int       `json:"guests_count"`
	Added         int       `json:"added,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type RestaurantReservationEvent struct {
	ReservationID  uuid.UUID `json:"reservation_id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	UserID         uuid.UUID `json:"user_id"`
	Date           string    `json:"date"`
	MealSlot       string    `json:"meal_slot"`
	NumberOfPeople int       `json:"number_of_people"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type RatingEvent struct {
	RatingID   uuid.UUID `json:"rating_id"`
	Kind       string    `json:"kind"`
	EntityID   uuid.UUID `json:"entity_id"`
	UserID     uuid.UUID `json:"user_id"`
	Score      int       `json:"score"`
	OccurredAt time.Time `json:"occurred_at"`
}
