package repository

import (
	"context"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/pkg/pgconv"
)

const (
	tourUsageSQL = `
SELECT COALESCE(SUM(guests_count), 0), COUNT(*)
FROM tour_reservations
WHERE tour_id = $1`

	slotUsageSQL = `
SELECT COALESCE(SUM(number_of_people), 0), COUNT(*)
FROM restaurant_reservations
WHERE restaurant_id = $1 AND reservation_date = $2 AND meal_slot = $3`
)

var errUnknownCapacityKey = errs.New("unknown capacity key")

// CapacityLedger reads consumption inside the caller's transaction.
type CapacityLedger struct {
	db db.DBTX
}

func NewCapacityLedger(dbtx db.DBTX) *CapacityLedger {
	return &CapacityLedger{db: dbtx}
}

func (l *CapacityLedger) Usage(ctx context.Context, key capacity.Key) (capacity.Usage, error) {
	var (
		consumed, rows int64
		err            error
	)
	switch key.Kind() {
	case capacity.KindTour:
		err = l.db.QueryRow(ctx, tourUsageSQL, key.TourID()).Scan(&consumed, &rows)
	case capacity.KindSlot:
		err = l.db.QueryRow(ctx, slotUsageSQL,
			key.RestaurantID(),
			pgconv.DateToPgtype(key.Date()),
			key.MealSlot().String(),
		).Scan(&consumed, &rows)
	default:
		return capacity.Usage{}, errs.Wrapf(errUnknownCapacityKey, "%s", key)
	}
	if err != nil {
		return capacity.Usage{}, infra.WrapRepoErr("failed to read capacity usage", err)
	}
	return capacity.Usage{Consumed: int(consumed), Reservations: int(rows)}, nil
}
