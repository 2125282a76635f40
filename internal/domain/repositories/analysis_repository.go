package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// AnalysisRepository stores necessity verdicts
type AnalysisRepository interface {
	// Create appends a verdict
	Create(ctx context.Context, result *entities.AnalysisResult) error

	// FindLatestByMeeting returns the newest verdict for a meeting
	FindLatestByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisResult, error)

	// ListByMeeting returns every verdict for a meeting, newest first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.AnalysisResult, error)
}

// UsageRepository stores metered model calls
type UsageRepository interface {
	// Create appends a usage record
	Create(ctx context.Context, usage *entities.LLMUsage) error
}
