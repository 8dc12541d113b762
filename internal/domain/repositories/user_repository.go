package repositories

import (
	"context"

	"github.com/google/uuid"
	"post-service/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindOrCreateByEmail returns the existing user with the candidate's
	// email, creating the candidate when no such user exists. Used for
	// first-sign-in provisioning and by the seed routine.
	FindOrCreateByEmail(ctx context.Context, candidate *entities.ValidatedUser) (*entities.User, error)
}
