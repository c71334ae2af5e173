package repository

import (
	"context"

	"tourism-api/internal/domain/rating"
	"tourism-api/internal/infra"
	"tourism-api/internal/infra/db"
	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertRatingSQL = `
INSERT INTO ratings (id, entity_kind, entity_id, user_id, score, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	ratingExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM ratings WHERE entity_kind = $1 AND entity_id = $2 AND user_id = $3
)`
)

type RatingRepository struct {
	db db.DBTX
}

func NewRatingRepository(dbtx db.DBTX) *RatingRepository {
	return &RatingRepository{db: dbtx}
}

// Create maps the (kind, entity, user) unique constraint to errs.ErrAlreadyRated.
func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	_, err := r.db.Exec(ctx, insertRatingSQL,
		rt.ID(),
		string(rt.Kind()),
		rt.EntityID(),
		rt.UserID(),
		rt.Score().Value(),
		pgconv.StringToNullable(rt.Comment().String()),
		rt.CreatedAt(),
	)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to create rating", err)
		if pgconv.IsUniqueViolation(err) {
			return errs.Mark(wrapped, errs.ErrAlreadyRated)
		}
		return wrapped
	}
	return nil
}

func (r *RatingRepository) Exists(ctx context.Context, kind rating.Kind, entityID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ratingExistsSQL, string(kind), entityID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing rating", err)
	}
	return exists, nil
}
