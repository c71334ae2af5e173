package tour

import (
	"time"

	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

var ErrInvalidGuestsCount = errs.Invalid("guests count must be greater than zero")

type Tour struct {
	ID        uuid.UUID
	Name      string
	MaxGuests int
	GuideID   uuid.UUID
	Status    Status
	StartsAt  time.Time
}

// Bookable reports whether reservations may be made. Drafts are invisible to guests.
func (t Tour) Bookable() bool {
	return t.Status == StatusPublished
}

type Reservation struct {
	id          uuid.UUID
	tourID      uuid.UUID
	userID      uuid.UUID
	guestsCount int
	createdAt   time.Time
}

func NewReservation(tourID, userID uuid.UUID, guestsCount int, now time.Time) (*Reservation, error) {
	if guestsCount <= 0 {
		return nil, ErrInvalidGuestsCount
	}
	return &Reservation{
		id:          uuid.New(),
		tourID:      tourID,
		userID:      userID,
		guestsCount: guestsCount,
		createdAt:   now,
	}, nil
}

func ReconstructReservation(id, tourID, userID uuid.UUID, guestsCount int, createdAt time.Time) *Reservation {
	return &Reservation{
		id:          id,
		tourID:      tourID,
		userID:      userID,
		guestsCount: guestsCount,
		createdAt:   createdAt,
	}
}

// Merge adds guests to an existing booking instead of creating a second row.
func (r *Reservation) Merge(additional int) error {
	if additional <= 0 {
		return ErrInvalidGuestsCount
	}
	r.guestsCount += additional
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) TourID() uuid.UUID    { return r.tourID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) GuestsCount() int     { return r.guestsCount }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
