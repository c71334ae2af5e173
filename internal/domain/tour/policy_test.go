//go:build unit

package tour_test

import (
	"testing"
	"time"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Admit(t *testing.T) {
	tr := tour.Tour{ID: uuid.New(), MaxGuests: 20, Status: tour.StatusPublished}

	tests := []struct {
		name        string
		policy      tour.Policy
		usage       capacity.Usage
		hasExisting bool
		requested   int
		want        tour.Decision
		errIs       error
		remaining   int
	}{
		{
			name:      "first booking within capacity",
			usage:     capacity.Usage{},
			requested: 3,
			want:      tour.DecisionCreate,
		},
		{
			name:      "first booking above capacity is refused by default",
			usage:     capacity.Usage{},
			requested: 25,
			errIs:     errs.ErrCapacityExceeded,
			remaining: 20,
		},
		{
			name:      "first booking above capacity is admitted by the legacy policy",
			policy:    tour.Policy{UnboundedFirstBooking: true},
			usage:     capacity.Usage{},
			requested: 25,
			want:      tour.DecisionCreate,
		},
		{
			name:      "legacy policy checks once a reservation exists",
			policy:    tour.Policy{UnboundedFirstBooking: true},
			usage:     capacity.Usage{Consumed: 18, Reservations: 1},
			requested: 3,
			errIs:     errs.ErrCapacityExceeded,
			remaining: 2,
		},
		{
			name:        "rebooking merges",
			usage:       capacity.Usage{Consumed: 3, Reservations: 1},
			hasExisting: true,
			requested:   3,
			want:        tour.DecisionMerge,
		},
		{
			name:        "rebooking is bounded by remaining",
			usage:       capacity.Usage{Consumed: 15, Reservations: 2},
			hasExisting: true,
			requested:   6,
			errIs:       errs.ErrCapacityExceeded,
			remaining:   5,
		},
		{
			name:      "exact fit",
			usage:     capacity.Usage{Consumed: 15, Reservations: 2},
			requested: 5,
			want:      tour.DecisionCreate,
		},
		{
			name:      "full tour",
			usage:     capacity.Usage{Consumed: 20, Reservations: 4},
			requested: 1,
			errIs:     errs.ErrCapacityExhausted,
		},
		{
			name:      "overbooked legacy tour",
			usage:     capacity.Usage{Consumed: 25, Reservations: 1},
			requested: 1,
			errIs:     errs.ErrCapacityExhausted,
		},
		{
			name:      "zero guests",
			requested: 0,
			errIs:     tour.ErrInvalidGuestsCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Admit(tr, tt.usage, tt.hasExisting, tt.requested)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				if tt.remaining > 0 {
					remaining, ok := errs.RemainingCapacity(err)
					require.True(t, ok)
					assert.Equal(t, tt.remaining, remaining)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReservation_Merge(t *testing.T) {
	res, err := tour.NewReservation(uuid.New(), uuid.New(), 3, time.Now())
	require.NoError(t, err)

	require.NoError(t, res.Merge(3))
	assert.Equal(t, 6, res.GuestsCount())

	assert.ErrorIs(t, res.Merge(0), tour.ErrInvalidGuestsCount)
	assert.Equal(t, 6, res.GuestsCount())
}

func TestTour_Bookable(t *testing.T) {
	assert.True(t, tour.Tour{Status: tour.StatusPublished}.Bookable())
	assert.False(t, tour.Tour{Status: tour.StatusDraft}.Bookable())
}
