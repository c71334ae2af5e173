package response

import (
	"time"

	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TourReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	TourID      uuid.UUID `json:"tour_id"`
	UserID      uuid.UUID `json:"user_id"`
	GuestsCount int       `json:"guests_count"`
	Merged      bool      `json:"merged"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromTourReservationResult(r *commands.TourReservationResult) *TourReservationResponse {
	var res TourReservationResponse
	_ = copier.Copy(&res, r)
	return &res
}

type TourReservationListItem struct {
	ID           uuid.UUID  `json:"id"`
	TourID       uuid.UUID  `json:"tour_id"`
	TourName     string     `json:"tour_name"`
	TourStartsAt *time.Time `json:"tour_starts_at,omitempty"`
	GuestsCount  int        `json:"guests_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromTourReservationViews(views []*queries.TourReservationView) []TourReservationListItem {
	items := make([]TourReservationListItem, len(views))
	for i, v := range views {
		_ = copier.Copy(&items[i], v)
	}
	return items
}

type RestaurantReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	UserID         uuid.UUID `json:"user_id"`
	Date           string    `json:"date" copier:"-"`
	MealSlot       string    `json:"meal_slot" copier:"-"`
	NumberOfPeople int       `json:"number_of_people"`
	Available      int       `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromRestaurantReservationResult(r *commands.RestaurantReservationResult) *RestaurantReservationResponse {
	var res RestaurantReservationResponse
	_ = copier.Copy(&res, r)
	res.Date = r.Date.Format(time.DateOnly)
	res.MealSlot = r.MealSlot.String()
	return &res
}

type RestaurantReservationListItem struct {
	ID             uuid.UUID `json:"id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	UserID         uuid.UUID `json:"user_id"`
	Date           string    `json:"date" copier:"-"`
	MealSlot       string    `json:"meal_slot"`
	NumberOfPeople int       `json:"number_of_people"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromRestaurantReservationViews(views []*queries.RestaurantReservationView) []RestaurantReservationListItem {
	items := make([]RestaurantReservationListItem, len(views))
	for i, v := range views {
		_ = copier.Copy(&items[i], v)
		items[i].Date = v.Date.Format(time.DateOnly)
	}
	return items
}
