package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
)

// QuestionRepository implements the question repository interface using GORM
type QuestionRepository struct {
	db *gorm.DB
}

var _ repositories.QuestionRepository = (*QuestionRepository)(nil)

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a question
func (r *QuestionRepository) Create(ctx context.Context, question *entities.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// CreateBatch inserts several questions at once
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []*entities.Question) error {
	if len(questions) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	return nil
}

// FindByMeetingAndUser returns a participant's questions, oldest first
func (r *QuestionRepository) FindByMeetingAndUser(ctx context.Context, meetingID, userID uuid.UUID) ([]*entities.Question, error) {
	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	return questions, nil
}

// FindByMeeting returns every question of a meeting, oldest first
func (r *QuestionRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Question, error) {
	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to find questions by meeting: %w", err)
	}
	return questions, nil
}

// FindRecent returns up to limit questions, newest first
func (r *QuestionRepository) FindRecent(ctx context.Context, meetingID, userID uuid.UUID, limit int) ([]*entities.Question, error) {
	var questions []*entities.Question
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND user_id = ?", meetingID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to find recent questions: %w", err)
	}
	return questions, nil
}

type meetingCount struct {
	MeetingID uuid.UUID
	Count     int
}

// CountByMeetings returns the number of questions per meeting
func (r *QuestionRepository) CountByMeetings(ctx context.Context, meetingIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return counts, nil
	}

	var rows []meetingCount
	if err := r.db.WithContext(ctx).
		Model(&entities.Question{}).
		Select("meeting_id, COUNT(*) AS count").
		Where("meeting_id IN ?", meetingIDs).
		Group("meeting_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	for _, row := range rows {
		counts[row.MeetingID] = row.Count
	}
	return counts, nil
}
