package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/internal/usecase/question"
)

// Service defines the interface for the meeting lifecycle use case
type Service interface {
	// CreateMeeting creates one meeting row per resolvable participant and
	// generates questions for each of them
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error)

	// SetState opens or closes a meeting row
	SetState(ctx context.Context, meetingID uuid.UUID, open bool) (*entities.Meeting, error)

	// GroupProgress reports answer progress for every participant of a group
	GroupProgress(ctx context.Context, groupID uuid.UUID) ([]ParticipantProgress, error)
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Topic  string
	Emails []string
	// QuestionCount <= 0 means the configured default
	QuestionCount int
}

// MeetingEntry is one participant's meeting row
type MeetingEntry struct {
	MeetingID     uuid.UUID
	Topic         string
	Email         string
	UserID        uuid.UUID
	QuestionCount int
}

// CreateMeetingOutput represents the created group
type CreateMeetingOutput struct {
	GroupID  uuid.UUID
	Meetings []MeetingEntry
}

// ParticipantProgress summarises one participant row of a meeting group
type ParticipantProgress struct {
	MeetingID uuid.UUID
	UserID    uuid.UUID
	Email     string
	State     entities.MeetingState
	Total     int
	Answered  int
}

// Complete applies the completion predicate to the counters
func (p ParticipantProgress) Complete() bool {
	return p.Total > 0 && p.Answered == p.Total
}

type meetingService struct {
	userRepo     repositories.UserRepository
	meetingRepo  repositories.MeetingRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	questions    question.Service
	logger       *zap.Logger
}

var _ Service = (*meetingService)(nil)

// NewService creates the meeting lifecycle service
func NewService(
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	questions question.Service,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &meetingService{
		userRepo:     userRepo,
		meetingRepo:  meetingRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		questions:    questions,
		logger:       logger,
	}
}

func (s *meetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*CreateMeetingOutput, error) {
	if err := entities.ValidateTopic(input.Topic); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}

	out := &CreateMeetingOutput{GroupID: uuid.New()}
	for _, email := range uniqueEmails(input.Emails) {
		user, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			s.logger.Warn("⚠️ skipping participant",
				zap.String("email", email),
				zap.Error(err),
			)
			continue
		}

		meeting := entities.NewMeeting(out.GroupID, input.Topic, user.ID)
		if err := s.meetingRepo.Create(ctx, meeting); err != nil {
			return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
		}

		entry := MeetingEntry{
			MeetingID: meeting.ID,
			Topic:     meeting.Topic,
			Email:     user.Email,
			UserID:    user.ID,
		}

		generated, err := s.questions.GenerateQuestions(ctx, question.GenerateInput{
			Topic:     meeting.Topic,
			UserID:    user.ID,
			MeetingID: meeting.ID,
			Count:     input.QuestionCount,
		})
		if err != nil {
			// The meeting stays without questions and can never complete.
			s.logger.Error("❌ question generation failed, meeting left without questions",
				zap.String("meeting_id", meeting.ID.String()),
				zap.String("email", user.Email),
				zap.Error(err),
			)
		} else {
			entry.QuestionCount = len(generated)
		}

		out.Meetings = append(out.Meetings, entry)
	}

	if len(out.Meetings) == 0 {
		return nil, usecaseErrors.ErrNoParticipantsResolved
	}

	s.logger.Info("✅ meeting created",
		zap.String("group_id", out.GroupID.String()),
		zap.Int("participants", len(out.Meetings)),
	)

	return out, nil
}

func (s *meetingService) SetState(ctx context.Context, meetingID uuid.UUID, open bool) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	meeting.SetOpen(open)
	if err := s.meetingRepo.UpdateState(ctx, meeting.ID, meeting.State); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	return meeting, nil
}

func (s *meetingService) GroupProgress(ctx context.Context, groupID uuid.UUID) ([]ParticipantProgress, error) {
	meetings, err := s.meetingRepo.FindByGroup(ctx, groupID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if len(meetings) == 0 {
		return nil, usecaseErrors.ErrMeetingGroupNotFound
	}

	ids := make([]uuid.UUID, len(meetings))
	for i, m := range meetings {
		ids[i] = m.ID
	}

	totals, err := s.questionRepo.CountByMeetings(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	answered, err := s.answerRepo.CountAnsweredByMeetings(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	progress := make([]ParticipantProgress, 0, len(meetings))
	for _, m := range meetings {
		p := ParticipantProgress{
			MeetingID: m.ID,
			UserID:    m.UserID,
			State:     m.State,
			Total:     totals[m.ID],
			Answered:  answered[m.ID],
		}
		if m.User != nil {
			p.Email = m.User.Email
		}
		progress = append(progress, p)
	}
	return progress, nil
}

// uniqueEmails normalises the list and drops blanks and repeats, keeping order
func uniqueEmails(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		e = entities.NormalizeEmail(e)
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
