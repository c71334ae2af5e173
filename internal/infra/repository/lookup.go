package repository

import (
	"context"

	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/pgconv"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectTourSQL       = `SELECT id, name, max_guests, guide_id, status, starts_at FROM tours WHERE id = $1`
	selectRestaurantSQL = `SELECT id, name, capacity, owner_id, status FROM restaurants WHERE id = $1`
	selectUserSQL       = `SELECT id, username FROM users WHERE id = $1`
)

type EntityLookup struct {
	db db.DBTX
}

func NewEntityLookup(dbtx db.DBTX) *EntityLookup {
	return &EntityLookup{db: dbtx}
}

func (l *EntityLookup) TourByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	var (
		t         tour.Tour
		maxGuests int32
		status    string
		startsAt  pgtype.Timestamptz
	)
	err := l.db.QueryRow(ctx, selectTourSQL, id).Scan(&t.ID, &t.Name, &maxGuests, &t.GuideID, &status, &startsAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up tour", err)
	}
	t.MaxGuests = int(maxGuests)
	t.Status = tour.Status(status)
	if startsAt.Valid {
		t.StartsAt = startsAt.Time
	}
	return &t, nil
}

func (l *EntityLookup) RestaurantByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	var (
		r     restaurant.Restaurant
		seats int32
	)
	err := l.db.QueryRow(ctx, selectRestaurantSQL, id).Scan(&r.ID, &r.Name, &seats, &r.OwnerID, &r.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up restaurant", err)
	}
	r.Capacity = int(seats)
	return &r, nil
}

func (l *EntityLookup) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var u shared.UserSnapshot
	err := l.db.QueryRow(ctx, selectUserSQL, id).Scan(&u.ID, &u.Username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to look up user", err)
	}
	return &u, nil
}
