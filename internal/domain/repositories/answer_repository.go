package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// AnswerRepository defines the interface for answer data access
type AnswerRepository interface {
	// Create inserts an answer
	Create(ctx context.Context, answer *entities.Answer) error

	// FindByQuestionIDs returns answers referencing any of the given questions, oldest first
	FindByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]*entities.Answer, error)

	// FindByMeetingAndUser returns a participant's answers for a meeting, oldest first
	FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Answer, error)

	// FindByMeeting returns every answer recorded for a meeting, oldest first
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Answer, error)

	// FindMeetingIDsByUser returns the distinct meetings a user has answered in
	FindMeetingIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// CountAnsweredByMeetings returns, per meeting, how many distinct questions have an answer
	CountAnsweredByMeetings(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
