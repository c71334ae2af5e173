package commands

import (
	"context"
	"encoding/json"
	"time"

	"tourism-api/internal/domain/tour"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTourNotFound                  = errs.NotFound("tour")
	ErrRestaurantNotFound            = errs.NotFound("restaurant")
	ErrUserNotFound                  = errs.NotFound("user")
	ErrTourReservationNotFound       = errs.NotFound("tour reservation")
	ErrRestaurantReservationNotFound = errs.NotFound("restaurant reservation")
	ErrDuplicateRating               = errs.Mark(errs.New("user has already rated this entity"), errs.ErrAlreadyRated)
	ErrEventEncoding                 = errs.New("failed to encode outbox event")
)

// BookingOptions holds the settings shared by the booking coordinators.
type BookingOptions struct {
	// Location decides calendar days and meal slot clock times.
	Location   *time.Location
	TourPolicy tour.Policy
}

func (o BookingOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func enqueue(ctx context.Context, tx shared.Tx, kind, key string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(errs.Wrap(err, kind), ErrEventEncoding)
	}
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		ID:        uuid.New(),
		Kind:      kind,
		Key:       key,
		Payload:   body,
		CreatedAt: now,
	})
}
