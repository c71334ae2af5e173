//go:build unit || e2e

package builder

import (
	"tourism-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
}

func NewUserBuilder() *UserBuilder {
	id := uuid.New()
	return &UserBuilder{
		ID:       id,
		Username: "user-" + id.String()[:8],
	}
}

func (b *UserBuilder) WithUsername(name string) *UserBuilder {
	b.Username = name
	return b
}

func (b *UserBuilder) Build() shared.UserSnapshot {
	return shared.UserSnapshot{ID: b.ID, Username: b.Username}
}
