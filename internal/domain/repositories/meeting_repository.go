package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts one participant's meeting row
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByIDs returns meetings matching the given IDs, oldest first
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Meeting, error)

	// FindByUser returns the meetings owned by a user, oldest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)

	// FindByGroup returns every participant row of a meeting group with its user preloaded
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entities.Meeting, error)

	// UpdateState sets the open/closed state
	UpdateState(ctx context.Context, id uuid.UUID, state entities.MeetingState) error
}
