//go:build unit || e2e

package builder

import (
	"time"

	"tourism-api/internal/domain/tour"

	"github.com/google/uuid"
)

type TourBuilder struct {
	ID        uuid.UUID
	Name      string
	MaxGuests int
	GuideID   uuid.UUID
	Status    tour.Status
	StartsAt  time.Time
}

func NewTourBuilder() *TourBuilder {
	return &TourBuilder{
		ID:        uuid.New(),
		Name:      "Petrovaradin Fortress Walk",
		MaxGuests: 20,
		GuideID:   uuid.New(),
		Status:    tour.StatusPublished,
		StartsAt:  time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *TourBuilder) With(mutate func(*TourBuilder)) *TourBuilder {
	mutate(b)
	return b
}

func (b *TourBuilder) WithMaxGuests(n int) *TourBuilder {
	b.MaxGuests = n
	return b
}

func (b *TourBuilder) WithGuide(id uuid.UUID) *TourBuilder {
	b.GuideID = id
	return b
}

func (b *TourBuilder) Draft() *TourBuilder {
	b.Status = tour.StatusDraft
	return b
}

func (b *TourBuilder) Build() tour.Tour {
	return tour.Tour{
		ID:        b.ID,
		Name:      b.Name,
		MaxGuests: b.MaxGuests,
		GuideID:   b.GuideID,
		Status:    b.Status,
		StartsAt:  b.StartsAt,
	}
}
