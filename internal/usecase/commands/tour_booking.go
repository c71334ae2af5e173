package commands

import (
	"context"
	"log/slog"
	"time"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/tour"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookTourInput struct {
	TourID      uuid.UUID
	UserID      uuid.UUID
	GuestsCount int
}

type TourReservationResult struct {
	ID          uuid.UUID
	TourID      uuid.UUID
	UserID      uuid.UUID
	GuestsCount int
	// Merged is set when the request was added to the user's existing reservation.
	Merged    bool
	CreatedAt time.Time
}

type TourBookingCommands interface {
	Book(ctx context.Context, in BookTourInput) (*TourReservationResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

type tourBookingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy tour.Policy
}

func NewTourBookingCommands(uow shared.UnitOfWork, clk clock.Clock, opts BookingOptions) TourBookingCommands {
	return &tourBookingCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: opts.TourPolicy,
	}
}

func (c *tourBookingCommandsImpl) Book(ctx context.Context, in BookTourInput) (*TourReservationResult, error) {
	if in.GuestsCount <= 0 {
		return nil, tour.ErrInvalidGuestsCount
	}

	key := capacity.TourKey(in.TourID)
	var result *TourReservationResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, key.String()); err != nil {
			return err
		}

		t, err := tx.Lookup().TourByID(ctx, in.TourID)
		if err != nil {
			return err
		}
		if t == nil || !t.Bookable() {
			return ErrTourNotFound
		}
		u, err := tx.Lookup().UserByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}

		usage, err := tx.Ledger().Usage(ctx, key)
		if err != nil {
			return err
		}
		existing, err := tx.TourReservations().FindByUserAndTour(ctx, in.UserID, in.TourID)
		if err != nil {
			return err
		}

		decision, err := c.policy.Admit(*t, usage, existing != nil, in.GuestsCount)
		if err != nil {
			slog.InfoContext(ctx, "tour booking refused",
				"tour_id", in.TourID,
				"user_id", in.UserID,
				"requested", in.GuestsCount,
				"consumed", usage.Consumed,
				"max_guests", t.MaxGuests,
				"reason", err.Error())
			return err
		}

		now := c.clock.Now()
		var (
			res  *tour.Reservation
			kind string
		)
		switch decision {
		case tour.DecisionMerge:
			if err := existing.Merge(in.GuestsCount); err != nil {
				return err
			}
			if err := tx.TourReservations().AddGuests(ctx, existing.ID(), in.GuestsCount); err != nil {
				return err
			}
			res, kind = existing, shared.EventTourReservationAmended
		default:
			res, err = tour.NewReservation(in.TourID, in.UserID, in.GuestsCount, now)
			if err != nil {
				return err
			}
			if err := tx.TourReservations().Create(ctx, res); err != nil {
				return err
			}
			kind = shared.EventTourReservationBooked
		}

		event := shared.TourReservationEvent{
			ReservationID: res.ID(),
			TourID:        res.TourID(),
			UserID:        res.UserID(),
			GuestsCount:   res.GuestsCount(),
			Added:         in.GuestsCount,
			OccurredAt:    now,
		}
		if err := enqueue(ctx, tx, kind, key.String(), event, now); err != nil {
			return err
		}

		result = &TourReservationResult{
			ID:          res.ID(),
			TourID:      res.TourID(),
			UserID:      res.UserID(),
			GuestsCount: res.GuestsCount(),
			Merged:      decision == tour.DecisionMerge,
			CreatedAt:   res.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "tour booked",
		"reservation_id", result.ID,
		"tour_id", result.TourID,
		"guests_count", result.GuestsCount,
		"merged", result.Merged)
	return result, nil
}

// Cancel has no lead-time restriction for tours.
func (c *tourBookingCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.TourReservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res == nil {
			return ErrTourReservationNotFound
		}
		if err := tx.TourReservations().Delete(ctx, reservationID); err != nil {
			return err
		}

		now := c.clock.Now()
		event := shared.TourReservationEvent{
			ReservationID: res.ID(),
			TourID:        res.TourID(),
			UserID:        res.UserID(),
			GuestsCount:   res.GuestsCount(),
			OccurredAt:    now,
		}
		return enqueue(ctx, tx, shared.EventTourReservationCancelled, capacity.TourKey(res.TourID()).String(), event, now)
	})
}
