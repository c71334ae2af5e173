//go:build unit

package restaurant_test

import (
	"testing"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var belgrade = time.FixedZone("CEST", 2*60*60)

func TestParseMealSlot(t *testing.T) {
	tests := []struct {
		in      string
		want    restaurant.MealSlot
		wantErr bool
	}{
		{in: "breakfast", want: restaurant.Breakfast},
		{in: "Lunch", want: restaurant.Lunch},
		{in: " dinner ", want: restaurant.Dinner},
		{in: "dorucak", want: restaurant.Breakfast},
		{in: "rucak", want: restaurant.Lunch},
		{in: "vecera", want: restaurant.Dinner},
		{in: "brunch", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := restaurant.ParseMealSlot(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMealSlotSchedule(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, belgrade)

	assert.Equal(t, time.Date(2025, 6, 1, 8, 0, 0, 0, belgrade), restaurant.Breakfast.StartsAt(date, belgrade))
	assert.Equal(t, time.Date(2025, 6, 1, 13, 0, 0, 0, belgrade), restaurant.Lunch.StartsAt(date, belgrade))
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, belgrade), restaurant.Dinner.StartsAt(date, belgrade))

	assert.Equal(t, 12*time.Hour, restaurant.Breakfast.CancellationLead())
	assert.Equal(t, 4*time.Hour, restaurant.Lunch.CancellationLead())
	assert.Equal(t, 4*time.Hour, restaurant.Dinner.CancellationLead())
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, belgrade)
	restaurantID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name   string
		date   time.Time
		slot   restaurant.MealSlot
		people int
		errIs  error
	}{
		{name: "today is allowed", date: now, slot: restaurant.Dinner, people: 2},
		{name: "future date", date: now.AddDate(0, 0, 7), slot: restaurant.Breakfast, people: 1},
		{name: "yesterday", date: now.AddDate(0, 0, -1), slot: restaurant.Lunch, people: 2, errIs: restaurant.ErrDateInPast},
		{name: "zero people", date: now, slot: restaurant.Lunch, people: 0, errIs: restaurant.ErrInvalidPeopleCount},
		{name: "negative people", date: now, slot: restaurant.Lunch, people: -3, errIs: restaurant.ErrInvalidPeopleCount},
		{name: "unknown slot", date: now, slot: restaurant.MealSlot("brunch"), people: 2, errIs: restaurant.ErrInvalidMealSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := restaurant.NewReservation(restaurantID, userID, tt.date, tt.slot, tt.people, now, belgrade)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.ID())
			assert.Equal(t, tt.people, res.NumberOfPeople())
			assert.Equal(t, 0, res.Date().Hour())
			assert.Equal(t, now, res.CreatedAt())
		})
	}
}

func TestReservation_CheckCancellable(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, belgrade)

	tests := []struct {
		name      string
		slot      restaurant.MealSlot
		lead      time.Duration
		threshold time.Duration
	}{
		{name: "breakfast 11h59m before", slot: restaurant.Breakfast, lead: 11*time.Hour + 59*time.Minute, threshold: 12 * time.Hour},
		{name: "breakfast exactly 12h before", slot: restaurant.Breakfast, lead: 12 * time.Hour},
		{name: "lunch 3h59m before", slot: restaurant.Lunch, lead: 3*time.Hour + 59*time.Minute, threshold: 4 * time.Hour},
		{name: "lunch 4h01m before", slot: restaurant.Lunch, lead: 4*time.Hour + time.Minute},
		{name: "dinner after it started", slot: restaurant.Dinner, lead: -time.Hour, threshold: 4 * time.Hour},
		{name: "dinner a day ahead", slot: restaurant.Dinner, lead: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := restaurant.ReconstructReservation(uuid.New(), uuid.New(), uuid.New(), date, tt.slot, 2, date.AddDate(0, 0, -3))
			now := tt.slot.StartsAt(date, belgrade).Add(-tt.lead)

			err := res.CheckCancellable(now, belgrade)
			if tt.threshold == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrCancellationWindowClosed)
			threshold, ok := errs.CancellationThreshold(err)
			require.True(t, ok)
			assert.Equal(t, tt.threshold, threshold)
		})
	}
}
