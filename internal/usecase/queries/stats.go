package queries

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const guideTopN = 5

var (
	ErrRestaurantNotOwned = errs.NotFound("restaurant")
	ErrGuideNotFound      = errs.NotFound("guide")
	ErrInvalidPeriod      = errs.Invalid("period start must not be after its end")
)

type StatsReadStore interface {
	// OwnedRestaurant is nil when the restaurant does not exist or belongs to someone else.
	OwnedRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID) (*RestaurantRef, error)
	MonthlyTotals(ctx context.Context, restaurantID uuid.UUID, year int) ([]MonthlyTotal, error)
	ReservationCountsByOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]RestaurantReservationCount, error)
	GuideExists(ctx context.Context, guideID uuid.UUID) (bool, error)
	GuideTourTotals(ctx context.Context, guideID uuid.UUID, from, to *time.Time) ([]TourTotal, error)
}

// StatsCache is a best-effort cache; errors are logged and the store is read instead.
type StatsCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

type StatsQueries interface {
	OwnerDashboard(ctx context.Context, ownerID, restaurantID uuid.UUID) (*RestaurantDashboard, error)
	OwnerRanking(ctx context.Context, ownerID uuid.UUID) ([]RestaurantReservationCount, error)
	GuideTourStats(ctx context.Context, guideID uuid.UUID, from, to *time.Time) (*GuideTourStats, error)
	// Invalidate drops cached owner statistics for the given year.
	Invalidate(ctx context.Context, ownerID, restaurantID uuid.UUID, year int) error
}

type statsQueriesImpl struct {
	store StatsReadStore
	cache StatsCache
	clock clock.Clock
	loc   *time.Location
}

func NewStatsQueries(store StatsReadStore, cache StatsCache, clk clock.Clock, loc *time.Location) StatsQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &statsQueriesImpl{store: store, cache: cache, clock: clk, loc: loc}
}

func DashboardCacheKey(ownerID, restaurantID uuid.UUID, year int) string {
	return fmt.Sprintf("stats:dashboard:%s:%s:%d", ownerID, restaurantID, year)
}

func RankingCacheKey(ownerID uuid.UUID, year int) string {
	return fmt.Sprintf("stats:ranking:%s:%d", ownerID, year)
}

func (q *statsQueriesImpl) OwnerDashboard(ctx context.Context, ownerID, restaurantID uuid.UUID) (*RestaurantDashboard, error) {
	year := q.clock.Now().In(q.loc).Year()
	cacheKey := DashboardCacheKey(ownerID, restaurantID, year)

	var cached RestaurantDashboard
	if q.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	ref, err := q.store.OwnedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, ErrRestaurantNotOwned
	}

	totals, err := q.store.MonthlyTotals(ctx, restaurantID, year)
	if err != nil {
		return nil, err
	}

	dash := BuildDashboard(*ref, year, totals)
	q.cacheSet(ctx, cacheKey, dash)
	return dash, nil
}

// BuildDashboard fills all twelve months; months without reservations stay 0.
func BuildDashboard(ref RestaurantRef, year int, totals []MonthlyTotal) *RestaurantDashboard {
	dash := &RestaurantDashboard{
		RestaurantID:   ref.ID,
		RestaurantName: ref.Name,
		Year:           year,
	}
	for _, t := range totals {
		if t.Month < time.January || t.Month > time.December {
			continue
		}
		i := int(t.Month) - 1
		dash.MonthlyReservations[i] += t.Reservations
		dash.TotalReservations += t.Reservations
		dash.MonthlyOccupancy[i] = OccupancyPercent(t.People, year, t.Month, ref.Capacity)
	}
	return dash
}

// OccupancyPercent is people over the month's theoretical seats, rounded to two decimals.
func OccupancyPercent(people, year int, month time.Month, capacity int) float64 {
	seats := clock.DaysInMonth(year, month) * restaurant.SlotsPerDay * capacity
	if seats <= 0 {
		return 0
	}
	return round2(float64(people) / float64(seats) * 100)
}

func (q *statsQueriesImpl) OwnerRanking(ctx context.Context, ownerID uuid.UUID) ([]RestaurantReservationCount, error) {
	year := q.clock.Now().In(q.loc).Year()
	cacheKey := RankingCacheKey(ownerID, year)

	var cached []RestaurantReservationCount
	if q.cacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	counts, err := q.store.ReservationCountsByOwner(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}
	RankRestaurants(counts)
	if counts == nil {
		counts = []RestaurantReservationCount{}
	}

	q.cacheSet(ctx, cacheKey, counts)
	return counts, nil
}

// RankRestaurants orders by reservation count descending, then by id.
func RankRestaurants(counts []RestaurantReservationCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Reservations != counts[j].Reservations {
			return counts[i].Reservations > counts[j].Reservations
		}
		return counts[i].RestaurantID.String() < counts[j].RestaurantID.String()
	})
}

func (q *statsQueriesImpl) GuideTourStats(ctx context.Context, guideID uuid.UUID, from, to *time.Time) (*GuideTourStats, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, ErrInvalidPeriod
	}

	exists, err := q.store.GuideExists(ctx, guideID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGuideNotFound
	}

	totals, err := q.store.GuideTourTotals(ctx, guideID, from, to)
	if err != nil {
		return nil, err
	}

	stats := make([]TourStat, 0, len(totals))
	for _, t := range totals {
		fill := 0.0
		if t.MaxGuests > 0 {
			fill = round2(float64(t.Guests) / float64(t.MaxGuests) * 100)
		}
		stats = append(stats, TourStat{
			TourID:      t.TourID,
			Name:        t.Name,
			MaxGuests:   t.MaxGuests,
			Guests:      t.Guests,
			FillPercent: fill,
		})
	}

	return &GuideTourStats{
		GuideID: guideID,
		MostReserved: topN(stats, func(a, b TourStat) bool {
			return a.Guests > b.Guests
		}),
		LeastReserved: topN(stats, func(a, b TourStat) bool {
			return a.Guests < b.Guests
		}),
		MostFilled: topN(stats, func(a, b TourStat) bool {
			return a.FillPercent > b.FillPercent
		}),
		LeastFilled: topN(stats, func(a, b TourStat) bool {
			return a.FillPercent < b.FillPercent
		}),
	}, nil
}

func (q *statsQueriesImpl) Invalidate(ctx context.Context, ownerID, restaurantID uuid.UUID, year int) error {
	return q.cache.Delete(ctx, DashboardCacheKey(ownerID, restaurantID, year), RankingCacheKey(ownerID, year))
}

// topN sorts a copy with less, breaking ties by tour id.
func topN(stats []TourStat, less func(a, b TourStat) bool) []TourStat {
	sorted := make([]TourStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if less(sorted[i], sorted[j]) {
			return true
		}
		if less(sorted[j], sorted[i]) {
			return false
		}
		return sorted[i].TourID.String() < sorted[j].TourID.String()
	})
	if len(sorted) > guideTopN {
		sorted = sorted[:guideTopN]
	}
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (q *statsQueriesImpl) cacheGet(ctx context.Context, key string, dst any) bool {
	hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		slog.WarnContext(ctx, "stats cache read failed", "key", key, "error", err.Error())
		return false
	}
	return hit
}

func (q *statsQueriesImpl) cacheSet(ctx context.Context, key string, value any) {
	if err := q.cache.Set(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "stats cache write failed", "key", key, "error", err.Error())
	}
}
