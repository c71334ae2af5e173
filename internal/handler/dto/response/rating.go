package response

import (
	"time"

	"tourism-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	EntityID  uuid.UUID `json:"entity_id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRatingResult(r *commands.RatingResult) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID,
		Kind:      string(r.Kind),
		EntityID:  r.EntityID,
		UserID:    r.UserID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
