package commands

import (
	"context"
	"log/slog"
	"time"

	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/domain/restaurant"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookRestaurantInput struct {
	RestaurantID   uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	MealSlot       restaurant.MealSlot
	NumberOfPeople int
}

type RestaurantReservationResult struct {
	ID             uuid.UUID
	RestaurantID   uuid.UUID
	UserID         uuid.UUID
	Date           time.Time
	MealSlot       restaurant.MealSlot
	NumberOfPeople int
	// Available is what is left in the slot after this booking.
	Available int
	CreatedAt time.Time
}

type RestaurantBookingCommands interface {
	Book(ctx context.Context, in BookRestaurantInput) (*RestaurantReservationResult, error)
	// Cancel checks the meal slot's cancellation lead time against the current clock.
	Cancel(ctx context.Context, reservationID uuid.UUID) error
}

type restaurantBookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewRestaurantBookingCommands(uow shared.UnitOfWork, clk clock.Clock, opts BookingOptions) RestaurantBookingCommands {
	return &restaurantBookingCommandsImpl{
		uow:   uow,
		clock: clk,
		loc:   opts.location(),
	}
}

func (c *restaurantBookingCommandsImpl) Book(ctx context.Context, in BookRestaurantInput) (*RestaurantReservationResult, error) {
	if in.NumberOfPeople <= 0 {
		return nil, restaurant.ErrInvalidPeopleCount
	}
	if !in.MealSlot.IsValid() {
		return nil, restaurant.ErrInvalidMealSlot
	}

	key := capacity.SlotKey(in.RestaurantID, in.Date, in.MealSlot)
	var result *RestaurantReservationResult

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, key.String()); err != nil {
			return err
		}

		r, err := tx.Lookup().RestaurantByID(ctx, in.RestaurantID)
		if err != nil {
			return err
		}
		if r == nil {
			return ErrRestaurantNotFound
		}
		u, err := tx.Lookup().UserByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}

		now := c.clock.Now()
		res, err := restaurant.NewReservation(in.RestaurantID, in.UserID, in.Date, in.MealSlot, in.NumberOfPeople, now, c.loc)
		if err != nil {
			return err
		}

		usage, err := tx.Ledger().Usage(ctx, key)
		if err != nil {
			return err
		}
		available := r.Available(usage.Consumed)
		if in.NumberOfPeople > available {
			if available < 0 {
				available = 0
			}
			slog.InfoContext(ctx, "restaurant booking refused",
				"key", key.String(),
				"user_id", in.UserID,
				"requested", in.NumberOfPeople,
				"remaining", available)
			return errs.CapacityExceeded(available)
		}

		if err := tx.RestaurantReservations().Create(ctx, res); err != nil {
			return err
		}

		event := restaurantEvent(res, r.OwnerID, now)
		if err := enqueue(ctx, tx, shared.EventRestaurantReservationBooked, key.String(), event, now); err != nil {
			return err
		}

		result = &RestaurantReservationResult{
			ID:             res.ID(),
			RestaurantID:   res.RestaurantID(),
			UserID:         res.UserID(),
			Date:           res.Date(),
			MealSlot:       res.MealSlot(),
			NumberOfPeople: res.NumberOfPeople(),
			Available:      available - res.NumberOfPeople(),
			CreatedAt:      res.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "restaurant table booked",
		"reservation_id", result.ID,
		"key", key.String(),
		"number_of_people", result.NumberOfPeople,
		"available", result.Available)
	return result, nil
}

func (c *restaurantBookingCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.RestaurantReservations().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}
		if res == nil {
			return ErrRestaurantReservationNotFound
		}

		now := c.clock.Now()
		if err := res.CheckCancellable(now, c.loc); err != nil {
			slog.InfoContext(ctx, "restaurant cancellation refused",
				"reservation_id", reservationID,
				"meal_slot", res.MealSlot(),
				"reason", err.Error())
			return err
		}

		if err := tx.RestaurantReservations().Delete(ctx, reservationID); err != nil {
			return err
		}

		var ownerID uuid.UUID
		r, err := tx.Lookup().RestaurantByID(ctx, res.RestaurantID())
		if err != nil {
			return err
		}
		if r != nil {
			ownerID = r.OwnerID
		}

		key := capacity.SlotKey(res.RestaurantID(), res.Date(), res.MealSlot())
		return enqueue(ctx, tx, shared.EventRestaurantReservationCancelled, key.String(), restaurantEvent(res, ownerID, now), now)
	})
}

func restaurantEvent(res *restaurant.Reservation, ownerID uuid.UUID, now time.Time) shared.RestaurantReservationEvent {
	return shared.RestaurantReservationEvent{
		ReservationID:  res.ID(),
		RestaurantID:   res.RestaurantID(),
		OwnerID:        ownerID,
		UserID:         res.UserID(),
		Date:           res.Date().Format(time.DateOnly),
		MealSlot:       res.MealSlot().String(),
		NumberOfPeople: res.NumberOfPeople(),
		OccurredAt:     now,
	}
}
