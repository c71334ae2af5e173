package request

import (
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookTourRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	GuestsCount int       `json:"guests_count"`
}

func (r BookTourRequest) ToInput(tourID uuid.UUID) commands.BookTourInput {
	return commands.BookTourInput{
		TourID:      tourID,
		UserID:      r.UserID,
		GuestsCount: r.GuestsCount,
	}
}

type BookRestaurantRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	Date           string    `json:"date" binding:"required,datetime=2006-01-02"`
	MealSlot       string    `json:"meal_slot" binding:"required,mealslot"`
	NumberOfPeople int       `json:"number_of_people"`
}

// ToInput reads the date as a calendar day in loc.
func (r BookRestaurantRequest) ToInput(restaurantID uuid.UUID, loc *time.Location) (commands.BookRestaurantInput, error) {
	date, err := time.ParseInLocation(time.DateOnly, r.Date, loc)
	if err != nil {
		return commands.BookRestaurantInput{}, err
	}
	slot, err := restaurant.ParseMealSlot(r.MealSlot)
	if err != nil {
		return commands.BookRestaurantInput{}, err
	}
	return commands.BookRestaurantInput{
		RestaurantID:   restaurantID,
		UserID:         r.UserID,
		Date:           date,
		MealSlot:       slot,
		NumberOfPeople: r.NumberOfPeople,
	}, nil
}
