package question

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/internal/usecase/usage"
	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

// Service generates topic-derived questions for a participant's meeting
type Service interface {
	// GenerateQuestions asks the model for Count questions about Topic and
	// stores each non-empty line of the reply as a question.
	GenerateQuestions(ctx context.Context, input GenerateInput) ([]*entities.Question, error)
}

// GenerateInput identifies the meeting row the questions belong to
type GenerateInput struct {
	Topic     string
	UserID    uuid.UUID
	MeetingID uuid.UUID
	// Count <= 0 means the configured default
	Count int
}

const systemPrompt = "You are an assistant specialised in meeting optimisation."

type generator struct {
	questionRepo repositories.QuestionRepository
	llm          pkgai.Completer
	usage        *usage.Recorder
	cfg          config.LLMConfig
	logger       *zap.Logger
}

var _ Service = (*generator)(nil)

// NewService creates the question generation service
func NewService(
	questionRepo repositories.QuestionRepository,
	llm pkgai.Completer,
	recorder *usage.Recorder,
	cfg config.LLMConfig,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &generator{
		questionRepo: questionRepo,
		llm:          llm,
		usage:        recorder,
		cfg:          cfg,
		logger:       logger,
	}
}

func (g *generator) GenerateQuestions(ctx context.Context, input GenerateInput) ([]*entities.Question, error) {
	if err := entities.ValidateTopic(input.Topic); err != nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrInvalidInput, err)
	}
	count := input.Count
	if count <= 0 {
		count = g.cfg.QuestionCount
	}
	topic := strings.TrimSpace(input.Topic)

	completion, err := g.llm.Complete(ctx, BuildPrompt(topic, count), pkgai.CompletionOptions{
		MaxTokens:   g.cfg.QuestionMaxTokens,
		Temperature: g.cfg.QuestionTemperature,
	})
	if err != nil {
		g.logger.Error("❌ question generation call failed",
			zap.String("meeting_id", input.MeetingID.String()),
			zap.Error(err),
		)
		return nil, usecaseErrors.Upstream(err)
	}

	g.usage.Record(ctx, entities.UsagePurposeQuestionGeneration, &input.MeetingID, completion, map[string]interface{}{
		"topic": topic,
		"count": count,
	})

	lines := ParseQuestions(completion.Content)
	questions := make([]*entities.Question, 0, len(lines))
	now := time.Now().UTC()
	for i, line := range lines {
		q := entities.NewQuestion(input.MeetingID, input.UserID, line, entities.QuestionSourceGenerated)
		// batch order must survive ORDER BY created_at
		q.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		questions = append(questions, q)
	}

	if err := g.questionRepo.CreateBatch(ctx, questions); err != nil {
		return nil, usecaseErrors.Store(usecaseErrors.ErrStoreWrite, err)
	}

	g.logger.Info("✅ questions generated",
		zap.String("meeting_id", input.MeetingID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.Int("requested", count),
		zap.Int("stored", len(questions)),
	)

	return questions, nil
}

// BuildPrompt returns the system and user messages for a topic
func BuildPrompt(topic string, count int) []pkgai.Message {
	user := fmt.Sprintf(
		"Generate exactly %d key questions to evaluate the current state of the topic %q and its possible solutions "+
			"without needing a meeting. Return one question per line, with no numbering, headings or extra text.",
		count, topic,
	)
	return []pkgai.Message{
		{Role: pkgai.RoleSystem, Content: systemPrompt},
		{Role: pkgai.RoleUser, Content: user},
	}
}

// ParseQuestions splits a model reply into trimmed, non-empty lines
func ParseQuestions(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
