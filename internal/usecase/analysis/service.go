package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/internal/usecase/transcript"
	"github.com/johnquangdev/reunicheck/internal/usecase/usage"
	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

const systemPrompt = "You are an expert assistant in meeting management. You will receive the context of a meeting " +
	"with the questions asked to its attendees and their answers. Analyse the information and decide whether the " +
	"meeting is necessary or whether the points can be resolved without it."

const instructions = `Your task is to analyse the information and determine:
1. Whether the meeting is necessary or whether there is already enough consensus.
2. Which critical points or disagreements justify holding it.
3. Suggestions to reach decisions without an unnecessary meeting.

Reply with a JSON object only, shaped as:
{"is_meeting_needed": true or false, "conclusions": "your detailed analysis"}

Meeting information:
`

// Service decides whether a meeting still needs to happen
type Service interface {
	// Analyze produces and stores a verdict once every question is answered
	Analyze(ctx context.Context, input AnalyzeInput) (*Verdict, error)

	// LatestVerdict returns the newest stored analysis of a meeting
	LatestVerdict(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisResult, error)
}

// Archiver stores a copy of an analysis outside the database
type Archiver interface {
	Archive(ctx context.Context, objectName string, payload []byte) error
}

// AnalyzeInput represents an analysis request
type AnalyzeInput struct {
	UserID    uuid.UUID
	MeetingID uuid.UUID
}

// Verdict is the outcome of a successful analysis
type Verdict struct {
	ResultID        uuid.UUID
	Conclusions     string
	IsMeetingNeeded bool
}

type analyzer struct {
	userRepo     repositories.UserRepository
	meetingRepo  repositories.MeetingRepository
	questionRepo repositories.QuestionRepository
	answerRepo   repositories.AnswerRepository
	analysisRepo repositories.AnalysisRepository
	llm          pkgai.Completer
	usage        *usage.Recorder
	archive      Archiver
	cfg          config.LLMConfig
	logger       *zap.Logger
}

var _ Service = (*analyzer)(nil)

// NewService creates the analyzer. archive may be nil.
func NewService(
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	analysisRepo repositories.AnalysisRepository,
	llm pkgai.Completer,
	recorder *usage.Recorder,
	archive Archiver,
	cfg config.LLMConfig,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analyzer{
		userRepo:     userRepo,
		meetingRepo:  meetingRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		analysisRepo: analysisRepo,
		llm:          llm,
		usage:        recorder,
		archive:      archive,
		cfg:          cfg,
		logger:       logger,
	}
}

// BuildPrompt returns the messages sent to the model for a transcript
func BuildPrompt(meetingTranscript string) []pkgai.Message {
	return []pkgai.Message{
		{Role: pkgai.RoleSystem, Content: systemPrompt},
		{Role: pkgai.RoleUser, Content: instructions + meetingTranscript},
	}
}

func (a *analyzer) Analyze(ctx context.Context, input AnalyzeInput) (*Verdict, error) {
	meeting, err := a.meetingRepo.FindByID(ctx, input.MeetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	questions, err := a.questionRepo.FindByMeeting(ctx, meeting.ID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	if len(questions) == 0 {
		return nil, usecaseErrors.ErrNoQuestions
	}

	answers, err := a.answerRepo.FindByMeeting(ctx, meeting.ID)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}

	byQuestion, _ := transcript.AnswersByQuestion(answers)
	var missing []uuid.UUID
	for _, q := range questions {
		if len(byQuestion[q.ID]) == 0 {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return nil, &usecaseErrors.MissingAnswersError{QuestionIDs: missing}
	}

	emails, err := a.authorEmails(ctx, answers)
	if err != nil {
		return nil, err
	}
	text := transcript.Meeting(meeting.Topic, questions, answers, emails)

	completion, err := a.llm.Complete(ctx, BuildPrompt(text), pkgai.CompletionOptions{
		MaxTokens:   a.cfg.AnalysisMaxTokens,
		Temperature: a.cfg.AnalysisTemperature,
		JSONMode:    true,
	})
	if err != nil {
		a.logger.Error("❌ analysis model call failed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.Error(err),
		)
		return nil, usecaseErrors.Upstream(err)
	}
	a.usage.Record(ctx, entities.UsagePurposeAnalysis, &meeting.ID, completion, map[string]interface{}{
		"questions": len(questions),
		"answers":   len(answers),
	})

	requestedBy := &input.UserID
	if input.UserID == uuid.Nil {
		requestedBy = nil
	}

	parsed, parseErr := ParseVerdict(completion.Content)
	var result *entities.AnalysisResult
	if parseErr != nil {
		result = entities.NewFailedAnalysisResult(meeting.ID, requestedBy, completion.Content)
	} else {
		result = entities.NewAnalysisResult(meeting.ID, requestedBy, parsed.Conclusions, parsed.IsMeetingNeeded)
	}
	result.Model = completion.Model

	if err := a.analysisRepo.Create(ctx, result); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}
	a.archiveResult(ctx, result, text)

	if parseErr != nil {
		a.logger.Error("❌ failed to parse analysis reply",
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("result_id", result.ID.String()),
			zap.Error(parseErr),
		)
		return nil, &usecaseErrors.ParseFailureError{Raw: completion.Content, Err: parseErr}
	}

	a.logger.Info("✅ meeting analysed",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("result_id", result.ID.String()),
		zap.Bool("is_meeting_needed", parsed.IsMeetingNeeded),
	)

	return &Verdict{
		ResultID:        result.ID,
		Conclusions:     parsed.Conclusions,
		IsMeetingNeeded: parsed.IsMeetingNeeded,
	}, nil
}

func (a *analyzer) LatestVerdict(ctx context.Context, meetingID uuid.UUID) (*entities.AnalysisResult, error) {
	result, err := a.analysisRepo.FindLatestByMeeting(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrAnalysisNotFound) {
			return nil, usecaseErrors.ErrAnalysisNotFound
		}
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	return result, nil
}

func (a *analyzer) authorEmails(ctx context.Context, answers []*entities.Answer) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, ans := range answers {
		if !seen[ans.UserID] {
			seen[ans.UserID] = true
			ids = append(ids, ans.UserID)
		}
	}

	users, err := a.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreRead, err)
	}
	emails := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}
	return emails, nil
}

type archivedAnalysis struct {
	Result     *entities.AnalysisResult `json:"result"`
	Transcript string                   `json:"transcript"`
}

// archiveResult writes the analysis to the object store; failures are only logged
func (a *analyzer) archiveResult(ctx context.Context, result *entities.AnalysisResult, text string) {
	if a.archive == nil {
		return
	}
	payload, err := json.Marshal(archivedAnalysis{Result: result, Transcript: text})
	if err != nil {
		a.logger.Warn("failed to encode analysis archive", zap.Error(err))
		return
	}
	name := ObjectName(result.MeetingID, result.ID)
	if err := a.archive.Archive(ctx, name, payload); err != nil {
		a.logger.Warn("⚠️ failed to archive analysis",
			zap.String("object", name),
			zap.Error(err),
		)
	}
}

// ObjectName is the archive key of an analysis result
func ObjectName(meetingID, resultID uuid.UUID) string {
	return fmt.Sprintf("analyses/%s/%s.json", meetingID, resultID)
}
