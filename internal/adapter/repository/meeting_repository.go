package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

var _ repositories.MeetingRepository = (*MeetingRepository)(nil)

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create inserts a meeting row
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting: %w", err)
	}
	return &meeting, nil
}

// FindByIDs returns meetings matching the given IDs, oldest first
func (r *MeetingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if len(ids) == 0 {
		return meetings, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings by IDs: %w", err)
	}
	return meetings, nil
}

// FindByUser returns the meetings owned by a user
func (r *MeetingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings by user: %w", err)
	}
	return meetings, nil
}

// FindByGroup returns the participant rows of a meeting group
func (r *MeetingRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to find meetings by group: %w", err)
	}
	return meetings, nil
}

// UpdateState sets the open/closed state of a meeting
func (r *MeetingRepository) UpdateState(ctx context.Context, id uuid.UUID, state entities.MeetingState) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":      state,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update meeting state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}
