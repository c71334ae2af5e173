package repository

import (
	"context"
	"time"

	"tourism-api/internal/domain/tour"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertTourReservationSQL = `
INSERT INTO tour_reservations (id, tour_id, user_id, guests_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

	addTourGuestsSQL = `
UPDATE tour_reservations
SET guests_count = guests_count + $2, updated_at = now()
WHERE id = $1`

	deleteTourReservationSQL = `DELETE FROM tour_reservations WHERE id = $1`

	selectTourReservationColumns = `SELECT id, tour_id, user_id, guests_count, created_at FROM tour_reservations`
)

type TourReservationRepository struct {
	db db.DBTX
}

func NewTourReservationRepository(dbtx db.DBTX) *TourReservationRepository {
	return &TourReservationRepository{db: dbtx}
}

func (r *TourReservationRepository) Create(ctx context.Context, res *tour.Reservation) error {
	_, err := r.db.Exec(ctx, insertTourReservationSQL,
		res.ID(), res.TourID(), res.UserID(), res.GuestsCount(), res.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create tour reservation", err)
	}
	return nil
}

func (r *TourReservationRepository) AddGuests(ctx context.Context, id uuid.UUID, additional int) error {
	tag, err := r.db.Exec(ctx, addTourGuestsSQL, id, additional)
	if err != nil {
		return infra.WrapRepoErr("failed to add guests to tour reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("tour reservation not found")
	}
	return nil
}

func (r *TourReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteTourReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete tour reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("tour reservation not found")
	}
	return nil
}

func (r *TourReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*tour.Reservation, error) {
	return r.findOne(ctx, selectTourReservationColumns+` WHERE id = $1`, id)
}

func (r *TourReservationRepository) FindByUserAndTour(ctx context.Context, userID, tourID uuid.UUID) (*tour.Reservation, error) {
	return r.findOne(ctx, selectTourReservationColumns+` WHERE user_id = $1 AND tour_id = $2`, userID, tourID)
}

func (r *TourReservationRepository) findOne(ctx context.Context, sql string, args ...any) (*tour.Reservation, error) {
	var (
		id, tourID, userID uuid.UUID
		guests             int32
		createdAt          time.Time
	)
	err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &tourID, &userID, &guests, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find tour reservation", err)
	}
	return tour.ReconstructReservation(id, tourID, userID, int(guests), createdAt), nil
}
