package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	// Create inserts a single question
	Create(ctx context.Context, question *entities.Question) error

	// CreateBatch inserts several questions in one statement
	CreateBatch(ctx context.Context, questions []*entities.Question) error


	// FindByMeetingAndUser returns a participant's questions, oldest first
	FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Question, error)

	// FindByMeeting returns every question of a meeting, oldest first
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Question, error)

	// FindRecent returns up to limit questions for a participant, newest first
	FindRecent(ctx context.Context, meetingID, userID uuid.UUID, limit int) ([]*entities.Question, error)

	// CountByMeetings returns the number of questions per meeting ID
	CountByMeetings(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
