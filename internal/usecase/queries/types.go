package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 50
)

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

type TourReservationView struct {
	ID           uuid.UUID  `json:"id"`
	TourID       uuid.UUID  `json:"tour_id"`
	TourName     string     `json:"tour_name"`
	TourStartsAt *time.Time `json:"tour_starts_at,omitempty"`
	UserID       uuid.UUID  `json:"user_id"`
	GuestsCount  int        `json:"guests_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

type RestaurantReservationView struct {
	ID             uuid.UUID `json:"id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	UserID         uuid.UUID `json:"user_id"`
	Date           time.Time `json:"date"`
	MealSlot       string    `json:"meal_slot"`
	NumberOfPeople int       `json:"number_of_people"`
	CreatedAt      time.Time `json:"created_at"`
}

// RestaurantRef is the part of a restaurant the statistics need.
type RestaurantRef struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	OwnerID  uuid.UUID
}

type MonthlyTotal struct {
	Month        time.Month
	People       int
	Reservations int
}

type RestaurantDashboard struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Year           int       `json:"year"`
	// Indexed by month, January first. Percent of days × meal slots × capacity.
	MonthlyOccupancy    [12]float64 `json:"monthly_occupancy"`
	MonthlyReservations [12]int     `json:"monthly_reservations"`
	TotalReservations   int         `json:"total_reservations"`
}

type RestaurantReservationCount struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Reservations   int       `json:"reservations"`
}

type TourTotal struct {
	TourID    uuid.UUID
	Name      string
	MaxGuests int
	Guests    int
	StartsAt  *time.Time
}

type TourStat struct {
	TourID      uuid.UUID `json:"tour_id"`
	Name        string    `json:"name"`
	MaxGuests   int       `json:"max_guests"`
	Guests      int       `json:"guests"`
	FillPercent float64   `json:"fill_percent"`
}

type GuideTourStats struct {
	GuideID       uuid.UUID  `json:"guide_id"`
	MostReserved  []TourStat `json:"most_reserved"`
	LeastReserved []TourStat `json:"least_reserved"`
	MostFilled    []TourStat `json:"most_filled"`
	LeastFilled   []TourStat `json:"least_filled"`
}
