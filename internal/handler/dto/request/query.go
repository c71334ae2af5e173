package request

import (
	"time"
)

type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

type RestaurantDayQuery struct {
	ListQuery
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Day is nil when no date filter was given.
func (q RestaurantDayQuery) Day(loc *time.Location) (*time.Time, error) {
	if q.Date == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(time.DateOnly, q.Date, loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type PeriodQuery struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}
