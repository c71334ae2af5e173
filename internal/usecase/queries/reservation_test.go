//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/queries"
	"tourism-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 10, queries.ValidateLimit(10))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}

func TestReservationQueries_RestaurantDayList(t *testing.T) {
	ctx := context.Background()
	f := newStatsFixture()
	r := builder.NewRestaurantBuilder().Build()
	f.store.PutRestaurant(r)
	q := queries.NewReservationQueries(f.store)

	day := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	for _, slot := range []restaurant.MealSlot{restaurant.Dinner, restaurant.Breakfast, restaurant.Lunch} {
		_, err := f.booking.Book(ctx, commands.BookRestaurantInput{
			RestaurantID: r.ID, UserID: f.userID, Date: day, MealSlot: slot, NumberOfPeople: 2,
		})
		require.NoError(t, err)
	}
	f.book(t, r.ID, day.AddDate(0, 0, 1), 2)

	views, err := q.ListRestaurantReservationsByRestaurant(ctx, r.ID, &day, 0)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "breakfast", views[0].MealSlot)
	assert.Equal(t, "lunch", views[1].MealSlot)
	assert.Equal(t, "dinner", views[2].MealSlot)
	assert.Equal(t, r.Name, views[0].RestaurantName)

	all, err := q.ListRestaurantReservationsByRestaurant(ctx, r.ID, nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := q.ListRestaurantReservationsByUser(ctx, f.userID, 2)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
