package restaurant

import (
	"strings"
	"time"

	"tourism-api/internal/pkg/errs"
)

type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

// SlotsPerDay is the number of seatings a restaurant offers per calendar day.
const SlotsPerDay = 3

type slotSchedule struct {
	startsAt         time.Duration // offset from local midnight
	cancellationLead time.Duration
}

var schedule = map[MealSlot]slotSchedule{
	Breakfast: {startsAt: 8 * time.Hour, cancellationLead: 12 * time.Hour},
	Lunch:     {startsAt: 13 * time.Hour, cancellationLead: 4 * time.Hour},
	Dinner:    {startsAt: 18 * time.Hour, cancellationLead: 4 * time.Hour},
}

var slotAliases = map[string]MealSlot{
	"breakfast": Breakfast,
	"lunch":     Lunch,
	"dinner":    Dinner,
	"dorucak":   Breakfast,
	"rucak":     Lunch,
	"vecera":    Dinner,
}

var ErrInvalidMealSlot = errs.Invalid("meal slot must be one of breakfast, lunch, dinner")

func ParseMealSlot(s string) (MealSlot, error) {
	slot, ok := slotAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidMealSlot
	}
	return slot, nil
}

func AllMealSlots() []MealSlot {
	return []MealSlot{Breakfast, Lunch, Dinner}
}

func (m MealSlot) IsValid() bool {
	_, ok := schedule[m]
	return ok
}

func (m MealSlot) String() string {
	return string(m)
}

// StartsAt is the slot's clock time on the calendar day of date, in loc.
func (m MealSlot) StartsAt(date time.Time, loc *time.Location) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return midnight.Add(schedule[m].startsAt)
}

// CancellationLead is the minimum time between cancelling and the slot start.
func (m MealSlot) CancellationLead() time.Duration {
	return schedule[m].cancellationLead
}

// Order sorts slots by their time of day.
func (m MealSlot) Order() int {
	switch m {
	case Breakfast:
		return 0
	case Lunch:
		return 1
	case Dinner:
		return 2
	default:
		return 3
	}
}
