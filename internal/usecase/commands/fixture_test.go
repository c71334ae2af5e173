//go:build unit

package commands_test

import (
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/infra/memstore"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/usecase/commands"
	"tourism-api/internal/usecase/shared"
	"tourism-api/tests/common/builder"
)

var testNow = time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store *memstore.Store
	clock *clock.MockClock

	tours       commands.TourBookingCommands
	restaurants commands.RestaurantBookingCommands
	ratings     commands.RatingCommands
}

func newFixture(policy tour.Policy) *fixture {
	store := memstore.New(time.UTC)
	clk := clock.NewMockClock(testNow)
	opts := commands.BookingOptions{Location: time.UTC, TourPolicy: policy}
	return &fixture{
		store:       store,
		clock:       clk,
		tours:       commands.NewTourBookingCommands(store, clk, opts),
		restaurants: commands.NewRestaurantBookingCommands(store, clk, opts),
		ratings:     commands.NewRatingCommands(store, clk),
	}
}

func (f *fixture) user() shared.UserSnapshot {
	u := builder.NewUserBuilder().Build()
	f.store.PutUser(u)
	return u
}

func (f *fixture) tour(maxGuests int) tour.Tour {
	t := builder.NewTourBuilder().WithMaxGuests(maxGuests).Build()
	f.store.PutTour(t)
	return t
}

func (f *fixture) restaurant(capacity int) restaurant.Restaurant {
	r := builder.NewRestaurantBuilder().WithCapacity(capacity).Build()
	f.store.PutRestaurant(r)
	return r
}

func eventKinds(msgs []shared.OutboxMessage) []string {
	kinds := make([]string, 0, len(msgs))
	for _, m := range msgs {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}
