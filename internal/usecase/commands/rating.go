package commands

import (
	"context"
	"log/slog"
	"time"

	"tourism-api/internal/domain/rating"
	"tourism-api/internal/pkg/clock"
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RateInput struct {
	Kind     rating.Kind
	EntityID uuid.UUID
	UserID   uuid.UUID
	Score    int
	Comment  string
}

type RatingResult struct {
	ID        uuid.UUID
	Kind      rating.Kind
	EntityID  uuid.UUID
	UserID    uuid.UUID
	Score     int
	Comment   string
	CreatedAt time.Time
}

type RatingCommands interface {
	Rate(ctx context.Context, in RateInput) (*RatingResult, error)
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{uow: uow, clock: clk}
}

func (c *ratingCommandsImpl) Rate(ctx context.Context, in RateInput) (*RatingResult, error) {
	// Validates score and kind before touching storage.
	if _, err := rating.NewRating(in.Kind, in.EntityID, in.UserID, in.Score, in.Comment, time.Time{}); err != nil {
		return nil, err
	}

	var result *RatingResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, rating.LockName(in.Kind, in.EntityID, in.UserID)); err != nil {
			return err
		}
		if err := c.ensureEntity(ctx, tx.Lookup(), in.Kind, in.EntityID); err != nil {
			return err
		}
		u, err := tx.Lookup().UserByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUserNotFound
		}

		exists, err := tx.Ratings().Exists(ctx, in.Kind, in.EntityID, in.UserID)
		if err != nil {
			return err
		}
		if exists {
			slog.InfoContext(ctx, "rating refused",
				"kind", in.Kind,
				"entity_id", in.EntityID,
				"user_id", in.UserID,
				"reason", "already rated")
			return ErrDuplicateRating
		}

		now := c.clock.Now()
		r, err := rating.NewRating(in.Kind, in.EntityID, in.UserID, in.Score, in.Comment, now)
		if err != nil {
			return err
		}
		if err := tx.Ratings().Create(ctx, r); err != nil {
			return err
		}

		event := shared.RatingEvent{
			RatingID:   r.ID(),
			Kind:       string(r.Kind()),
			EntityID:   r.EntityID(),
			UserID:     r.UserID(),
			Score:      r.Score().Value(),
			OccurredAt: now,
		}
		if err := enqueue(ctx, tx, shared.EventRatingCreated, string(r.Kind())+":"+r.EntityID().String(), event, now); err != nil {
			return err
		}

		result = &RatingResult{
			ID:        r.ID(),
			Kind:      r.Kind(),
			EntityID:  r.EntityID(),
			UserID:    r.UserID(),
			Score:     r.Score().Value(),
			Comment:   r.Comment().String(),
			CreatedAt: r.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *ratingCommandsImpl) ensureEntity(ctx context.Context, lookup shared.EntityLookup, kind rating.Kind, id uuid.UUID) error {
	switch kind {
	case rating.KindTour:
		t, err := lookup.TourByID(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrTourNotFound
		}
	case rating.KindRestaurant:
		r, err := lookup.RestaurantByID(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return ErrRestaurantNotFound
		}
	default:
		return rating.ErrInvalidKind
	}
	return nil
}
