package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/internal/usecase/transcript"
)

// DefaultRecentLimit is how many questions RecentQuestions returns by default
const DefaultRecentLimit = 10

// Service records answers and tracks per-participant completion
type Service interface {
	// RecordAnswer stores an answer; QuestionID may be nil for a spontaneous answer
	RecordAnswer(ctx context.Context, input RecordAnswerInput) (*entities.Answer, error)

	// PendingQuestions lists a participant's questions with their answered flag
	PendingQuestions(ctx context.Context, userID, meetingID uuid.UUID) ([]PendingQuestion, error)

	// IsComplete reports whether every question of the pair has an answer
	IsComplete(ctx context.Context, userID, meetingID uuid.UUID) (bool, error)

	// RecentQuestions returns up to limit questions, newest first
	RecentQuestions(ctx context.Context, userID, meetingID uuid.UUID, limit int) ([]*entities.Question, error)

	// ConversationContext pairs each of the participant's answers with its question
	ConversationContext(ctx context.Context, userID, meetingID uuid.UUID) ([]ContextPair, error)

	// MeetingsResponded lists the meetings the user has answered in
	MeetingsResponded(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)
}

// RecordAnswerInput represents input for recording an answer
type RecordAnswerInput struct {
	QuestionID *uuid.UUID
	UserID     uuid.UUID
	MeetingID  uuid.UUID
	Content    string
}

// PendingQuestion is a question with its answer state
type PendingQuestion struct {
	Question *entities.Question
	Answered bool
	// Answer is the latest answer's content, empty when unanswered
	Answer string
}

// ContextPair is one question/answer exchange
type ContextPair struct {
	Question string
	Answer   string
}

// Complete is the completion predicate: non-empty and every entry answered.
// An empty list is never complete.
func Complete(pending []PendingQuestion) bool {
	if len(pending) == 0 {
		return false
	}
	for _, p := range pending {
		if !p.Answered {
			return false
		}
	}
	return true
}

type tracker struct {
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	meetingRepo  repositories.MeetingRepository
	logger       *zap.Logger
}

var _ Service = (*tracker)(nil)

// NewService creates the answer collection service
func NewService(
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	meetingRepo repositories.MeetingRepository,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tracker{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		meetingRepo:  meetingRepo,
		logger:       logger,
	}
}

func (s *tracker) RecordAnswer(ctx context.Context, input RecordAnswerInput) (*entities.Answer, error) {
	if len([]rune(strings.TrimSpace(input.Content))) < entities.MinAnswerLength {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, entities.ErrInvalidAnswer)
	}

	answer := entities.NewAnswer(input.QuestionID, input.UserID, input.MeetingID, input.Content)
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	s.logger.Info("📝 answer recorded",
		zap.String("answer_id", answer.ID.String()),
		zap.String("meeting_id", input.MeetingID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.Bool("spontaneous", answer.IsSpontaneous()),
	)
	return answer, nil
}

func (s *tracker) PendingQuestions(ctx context.Context, userID, meetingID uuid.UUID) ([]PendingQuestion, error) {
	questions, err := s.questionRepo.FindByMeetingAndUser(ctx, meetingID, userID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if len(questions) == 0 {
		return []PendingQuestion{}, nil
	}

	ids := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	answers, err := s.answerRepo.FindByQuestionIDs(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	byQuestion, _ := transcript.AnswersByQuestion(answers)

	pending := make([]PendingQuestion, 0, len(questions))
	for _, q := range questions {
		p := PendingQuestion{Question: q}
		if qa := byQuestion[q.ID]; len(qa) > 0 {
			p.Answered = true
			p.Answer = qa[len(qa)-1].Content
		}
		pending = append(pending, p)
	}
	return pending, nil
}

func (s *tracker) IsComplete(ctx context.Context, userID, meetingID uuid.UUID) (bool, error) {
	pending, err := s.PendingQuestions(ctx, userID, meetingID)
	if err != nil {
		return false, err
	}
	return Complete(pending), nil
}

func (s *tracker) RecentQuestions(ctx context.Context, userID, meetingID uuid.UUID, limit int) ([]*entities.Question, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	questions, err := s.questionRepo.FindRecent(ctx, meetingID, userID, limit)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	return questions, nil
}

func (s *tracker) ConversationContext(ctx context.Context, userID, meetingID uuid.UUID) ([]ContextPair, error) {
	answers, err := s.answerRepo.FindByMeetingAndUser(ctx, meetingID, userID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	questions, err := s.questionRepo.FindByMeetingAndUser(ctx, meetingID, userID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	content := make(map[uuid.UUID]string, len(questions))
	for _, q := range questions {
		content[q.ID] = q.Content
	}

	pairs := make([]ContextPair, 0, len(answers))
	for _, a := range answers {
		q := transcript.SpontaneousLabel
		if a.QuestionID != nil {
			if text, ok := content[*a.QuestionID]; ok {
				q = text
			}
		}
		pairs = append(pairs, ContextPair{Question: q, Answer: a.Content})
	}
	return pairs, nil
}

func (s *tracker) MeetingsResponded(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	ids, err := s.answerRepo.FindMeetingIDsByUser(ctx, userID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	meetings, err := s.meetingRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	return meetings, nil
}
