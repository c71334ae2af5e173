package request

import (
	"tourism-api/internal/domain/rating"
	"tourism-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRatingRequest struct {
	Kind     string    `json:"kind" binding:"required,oneof=tour restaurant"`
	EntityID uuid.UUID `json:"entity_id" binding:"required"`
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Score    int       `json:"score"`
	Comment  string    `json:"comment" binding:"max=1000"`
}

func (r CreateRatingRequest) ToInput() commands.RateInput {
	return commands.RateInput{
		Kind:     rating.Kind(r.Kind),
		EntityID: r.EntityID,
		UserID:   r.UserID,
		Score:    r.Score,
		Comment:  r.Comment,
	}
}
