package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByIDs returns the users matching the given IDs, in no particular order
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)

	// List returns every user ordered by name
	List(ctx context.Context) ([]*entities.User, error)
}
