package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
)

// AnalysisRepository persists necessity verdicts
type AnalysisRepository struct {
	db *gorm.DB
}

var _ repositories.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create appends a verdict
func (r *AnalysisRepository) Create(ctx context.Context, result *entities.AnalysisResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create analysis result: %w", err)
	}
	return nil
}

// FindLatestByMeeting returns the newest verdict of a meeting
func (r *AnalysisRepository) FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisResult, error) {
	var result entities.AnalysisResult
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to find latest analysis: %w", err)
	}
	return &result, nil
}

// ListByMeeting returns all verdicts of a meeting, newest first
func (r *AnalysisRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.AnalysisResult, error) {
	var results []*entities.AnalysisResult
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list analysis results: %w", err)
	}
	return results, nil
}

// UsageRepository persists metered model calls
type UsageRepository struct {
	db *gorm.DB
}

var _ repositories.UsageRepository = (*UsageRepository)(nil)

// NewUsageRepository creates a new usage repository
func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Create appends a usage record
func (r *UsageRepository) Create(ctx context.Context, usage *entities.LLMUsage) error {
	if usage.ID == uuid.Nil {
		usage.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(usage).Error; err != nil {
		return fmt.Errorf("failed to create llm usage: %w", err)
	}
	return nil
}
