package rating

import (
	"time"

	"tourism-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidScore   = errs.Invalid("rating must be between 1 and 5")
	ErrInvalidKind    = errs.Invalid("rated entity must be a tour or a restaurant")
	ErrCommentTooLong = errs.Invalid("comment exceeds maximum length")
)

type Rating struct {
	id        uuid.UUID
	kind      Kind
	entityID  uuid.UUID
	userID    uuid.UUID
	score     Score
	comment   Comment
	createdAt time.Time
}

func NewRating(kind Kind, entityID, userID uuid.UUID, scoreValue int, commentText string, now time.Time) (*Rating, error) {
	if kind != KindTour && kind != KindRestaurant {
		return nil, ErrInvalidKind
	}

	score, err := NewScore(scoreValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Rating{
		id:        uuid.New(),
		kind:      kind,
		entityID:  entityID,
		userID:    userID,
		score:     score,
		comment:   comment,
		createdAt: now,
	}, nil
}

// LockName is the name under which rating admission for one user and entity is serialized.
func LockName(kind Kind, entityID, userID uuid.UUID) string {
	return "rating:" + string(kind) + ":" + entityID.String() + ":" + userID.String()
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) Kind() Kind           { return r.kind }
func (r *Rating) EntityID() uuid.UUID  { return r.entityID }
func (r *Rating) UserID() uuid.UUID    { return r.userID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
