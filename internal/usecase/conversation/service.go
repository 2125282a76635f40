package conversation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/internal/usecase/transcript"
	"github.com/johnquangdev/reunicheck/internal/usecase/usage"
	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

// AutoStartMessage asks the session to open (or resume) without an answer
const AutoStartMessage = "__auto_start__"

const (
	// MessageInProgress is returned with every steady-state reply
	MessageInProgress = "Conversation in progress"
	// MessageStarted is returned when a session is opened
	MessageStarted = "Conversation started"
	// MessageResumed is returned when an open follow-up is handed back
	MessageResumed = "Conversation resumed"
)

const systemPrompt = `You are an assistant specialised in meeting optimisation.
Read the context provided and the previous conversation turns, and dig deeper into what the participant answered.
If there are contradictions or vague answers, ask additional questions.
Avoid saying you have no access to information unless context is really missing.
Follow the thread using the conversation so far and reply with a short message ending in a single follow-up question.`

const kickoffInstruction = "Start the deepening conversation: point out anything unclear, incomplete or contradictory " +
	"in these answers and ask your first follow-up question."

const resumeInstruction = "The participant is back. Continue the conversation with a new follow-up question."

// SessionKey identifies a participant's deepening session for one meeting
func SessionKey(userID, meetingID uuid.UUID) string {
	return fmt.Sprintf("user_%s_meeting_%s", userID, meetingID)
}

// Service runs the deepening conversation
type Service interface {
	// Converse handles one turn. message may be AutoStartMessage.
	Converse(ctx context.Context, input ConverseInput) (*Reply, error)
}

// ConverseInput represents one user turn
type ConverseInput struct {
	UserID    uuid.UUID
	MeetingID uuid.UUID
	Message   string
}

// Reply is the outcome of a turn
type Reply struct {
	Message    string
	AIResponse string
	// QuestionID is the follow-up question holding AIResponse
	QuestionID uuid.UUID
}

type session struct {
	userRepo     repositories.UserRepository
	meetingRepo  repositories.MeetingRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	llm          pkgai.Completer
	usage        *usage.Recorder
	locker       cache.Locker
	llmCfg       config.LLMConfig
	lockTTL      time.Duration
	logger       *zap.Logger
}

var _ Service = (*session)(nil)

// NewService creates the conversation service
func NewService(
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	llm pkgai.Completer,
	recorder *usage.Recorder,
	locker cache.Locker,
	llmCfg config.LLMConfig,
	sessionCfg config.SessionConfig,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := sessionCfg.LockTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &session{
		userRepo:     userRepo,
		meetingRepo:  meetingRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		llm:          llm,
		usage:        recorder,
		locker:       locker,
		llmCfg:       llmCfg,
		lockTTL:      ttl,
		logger:       logger,
	}
}

func (s *session) Converse(ctx context.Context, input ConverseInput) (*Reply, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", usecaseErrors.ErrInvalidInput)
	}

	meeting, err := s.meetingRepo.FindByID(ctx, input.MeetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrUserNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if meeting.UserID != input.UserID {
		return nil, usecaseErrors.ErrNotMeetingOwner
	}

	key := SessionKey(input.UserID, input.MeetingID)
	unlock, err := s.locker.TryLock(ctx, key, s.lockTTL)
	if err != nil {
		if errors.Is(err, cache.ErrLockHeld) {
			s.logger.Warn("⚠️ conversation turn rejected, session busy", zap.String("session", key))
			return nil, usecaseErrors.ErrSessionBusy
		}
		return nil, fmt.Errorf("failed to lock session: %w", err)
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release session lock", zap.String("session", key), zap.Error(err))
		}
	}()

	h, err := s.loadHistory(ctx, meeting)
	if err != nil {
		return nil, err
	}

	if message == AutoStartMessage {
		return s.autoStart(ctx, meeting, h)
	}
	return s.answer(ctx, meeting, h, message)
}

func (s *session) autoStart(ctx context.Context, meeting *entities.Meeting, h *history) (*Reply, error) {
	if h.active() {
		if open := h.openFollowUp(); open != nil {
			s.logger.Info("🔁 conversation resumed",
				zap.String("meeting_id", meeting.ID.String()),
				zap.String("user_id", meeting.UserID.String()),
			)
			return &Reply{Message: MessageResumed, AIResponse: open.Content, QuestionID: open.ID}, nil
		}
		reply, err := s.ask(ctx, meeting, h.messages(meeting.Topic, resumeInstruction))
		if err != nil {
			return nil, err
		}
		reply.Message = MessageResumed
		return reply, nil
	}

	reply, err := s.ask(ctx, meeting, h.messages(meeting.Topic, ""))
	if err != nil {
		return nil, err
	}
	s.logger.Info("💬 conversation started",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("user_id", meeting.UserID.String()),
	)
	reply.Message = MessageStarted
	return reply, nil
}

func (s *session) answer(ctx context.Context, meeting *entities.Meeting, h *history, message string) (*Reply, error) {
	var target *uuid.UUID
	if q := h.latestUnanswered(); q != nil {
		target = &q.ID
	}

	ans := entities.NewAnswer(target, meeting.UserID, meeting.ID, message)
	if err := s.answerRepo.Create(ctx, ans); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	reply, err := s.ask(ctx, meeting, h.messages(meeting.Topic, message))
	if err != nil {
		return nil, err
	}
	reply.Message = MessageInProgress
	return reply, nil
}

// ask calls the model and stores its reply as a follow-up question
func (s *session) ask(ctx context.Context, meeting *entities.Meeting, messages []pkgai.Message) (*Reply, error) {
	completion, err := s.llm.Complete(ctx, messages, pkgai.CompletionOptions{
		MaxTokens:   s.llmCfg.ChatMaxTokens,
		Temperature: s.llmCfg.ChatTemperature,
	})
	if err != nil {
		s.logger.Error("❌ conversation model call failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return nil, usecaseErrors.Upstream(err)
	}

	s.usage.Record(ctx, entities.UsagePurposeConversation, &meeting.ID, completion, map[string]interface{}{
		"session": SessionKey(meeting.UserID, meeting.ID),
		"turns":   len(messages),
	})

	content := strings.TrimSpace(completion.Content)
	if content == "" {
		return nil, usecaseErrors.Upstream(pkgai.ErrEmptyCompletion)
	}

	followUp := entities.NewQuestion(meeting.ID, meeting.UserID, content, entities.QuestionSourceFollowUp)
	if err := s.questionRepo.Create(ctx, followUp); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	return &Reply{AIResponse: content, QuestionID: followUp.ID}, nil
}

func (s *session) loadHistory(ctx context.Context, meeting *entities.Meeting) (*history, error) {
	questions, err := s.questionRepo.FindByMeetingAndUser(ctx, meeting.ID, meeting.UserID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	answers, err := s.answerRepo.FindByMeetingAndUser(ctx, meeting.ID, meeting.UserID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	return newHistory(questions, answers), nil
}

// history is a participant's stored questions and answers, oldest first
type history struct {
	questions []*entities.Question
	answers   []*entities.Answer
	answered  map[uuid.UUID]bool
	// started is when the first follow-up was written; zero before the session opens
	started time.Time
}

func newHistory(questions []*entities.Question, answers []*entities.Answer) *history {
	h := &history{
		questions: questions,
		answers:   answers,
		answered:  make(map[uuid.UUID]bool, len(answers)),
	}
	for _, a := range answers {
		if a.QuestionID != nil {
			h.answered[*a.QuestionID] = true
		}
	}
	for _, q := range questions {
		if q.IsFollowUp() && (h.started.IsZero() || q.CreatedAt.Before(h.started)) {
			h.started = q.CreatedAt
		}
	}
	return h
}

func (h *history) active() bool {
	return !h.started.IsZero()
}

// openFollowUp returns the newest unanswered follow-up, if any
func (h *history) openFollowUp() *entities.Question {
	for i := len(h.questions) - 1; i >= 0; i-- {
		q := h.questions[i]
		if q.IsFollowUp() && !h.answered[q.ID] {
			return q
		}
	}
	return nil
}

// latestUnanswered returns the most recently created question without an answer
func (h *history) latestUnanswered() *entities.Question {
	var latest *entities.Question
	for _, q := range h.questions {
		if h.answered[q.ID] {
			continue
		}
		if latest == nil || !q.CreatedAt.Before(latest.CreatedAt) {
			latest = q
		}
	}
	return latest
}

// messages rebuilds the model context from storage. The seed transcript holds
// what was known when the session opened; follow-ups and later answers are
// replayed in time order. next, when set, is appended as the final user turn.
func (h *history) messages(topic, next string) []pkgai.Message {
	var seedAnswers []*entities.Answer
	for _, a := range h.answers {
		if !h.active() || a.CreatedAt.Before(h.started) {
			seedAnswers = append(seedAnswers, a)
		}
	}

	seed := transcript.Participant(topic, h.questions, seedAnswers) + "\n\n" + kickoffInstruction
	out := []pkgai.Message{
		{Role: pkgai.RoleSystem, Content: systemPrompt},
		{Role: pkgai.RoleUser, Content: seed},
	}

	if h.active() {
		type turn struct {
			at  time.Time
			msg pkgai.Message
		}
		var turns []turn
		for _, q := range h.questions {
			if q.IsFollowUp() {
				turns = append(turns, turn{q.CreatedAt, pkgai.Message{Role: pkgai.RoleAssistant, Content: q.Content}})
			}
		}
		for _, a := range h.answers {
			if !a.CreatedAt.Before(h.started) {
				turns = append(turns, turn{a.CreatedAt, pkgai.Message{Role: pkgai.RoleUser, Content: a.Content}})
			}
		}
		sort.SliceStable(turns, func(i, j int) bool { return turns[i].at.Before(turns[j].at) })
		for _, t := range turns {
			out = append(out, t.msg)
		}
	}

	if next != "" {
		out = append(out, pkgai.Message{Role: pkgai.RoleUser, Content: next})
	}
	return out
}
