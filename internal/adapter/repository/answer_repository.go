package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
)

// AnswerRepository implements the answer repository interface using GORM
type AnswerRepository struct {
	db *gorm.DB
}

var _ repositories.AnswerRepository = (*AnswerRepository)(nil)

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create inserts an answer
func (r *AnswerRepository) Create(ctx context.Context, answer *entities.Answer) error {
	if err := r.db.WithContext(ctx).Create(answer).Error; err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

// FindByQuestionIDs returns answers referencing the given questions, oldest first
func (r *AnswerRepository) FindByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	if len(questionIDs) == 0 {
		return answers, nil
	}
	if err := r.db.WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to find answers by questions: %w", err)
	}
	return answers, nil
}

// FindByMeetingAndUser returns a participant's answers, oldest first
func (r *AnswerRepository) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to find answers: %w", err)
	}
	return answers, nil
}

// FindByMeeting returns every answer of a meeting, oldest first
func (r *AnswerRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Answer, error) {
	var answers []*entities.Answer
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("failed to find answers by meeting: %w", err)
	}
	return answers, nil
}

// FindMeetingIDsByUser returns the distinct meetings a user has answered in
func (r *AnswerRepository) FindMeetingIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Answer{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("meeting_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find answered meetings: %w", err)
	}
	return ids, nil
}

// CountAnsweredByMeetings counts, per meeting, the questions that have at least one answer
func (r *AnswerRepository) CountAnsweredByMeetings(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return counts, nil
	}

	var rows []meetingCount
	if err := r.db.WithContext(ctx).
		Table("questions AS q").
		Select("q.meeting_id AS meeting_id, COUNT(DISTINCT q.id) AS count").
		Joins("JOIN answers a ON a.question_id = q.id").
		Where("q.meeting_id IN ?", meetingIDs).
		Group("q.meeting_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count answered questions: %w", err)
	}

	for _, row := range rows {
		counts[row.MeetingID] = row.Count
	}
	return counts, nil
}
