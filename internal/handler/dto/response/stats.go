package response

import (
	"tourism-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MonthStat struct {
	Month        int     `json:"month"`
	Occupancy    float64 `json:"occupancy_percent"`
	Reservations int     `json:"reservations"`
}

type DashboardResponse struct {
	RestaurantID      uuid.UUID   `json:"restaurant_id"`
	RestaurantName    string      `json:"restaurant_name"`
	Year              int         `json:"year"`
	Months            []MonthStat `json:"months"`
	TotalReservations int         `json:"total_reservations"`
}

func FromDashboard(d *queries.RestaurantDashboard) *DashboardResponse {
	months := make([]MonthStat, 12)
	for i := range months {
		months[i] = MonthStat{
			Month:        i + 1,
			Occupancy:    d.MonthlyOccupancy[i],
			Reservations: d.MonthlyReservations[i],
		}
	}
	return &DashboardResponse{
		RestaurantID:      d.RestaurantID,
		RestaurantName:    d.RestaurantName,
		Year:              d.Year,
		Months:            months,
		TotalReservations: d.TotalReservations,
	}
}
