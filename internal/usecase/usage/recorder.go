// Package usage keeps the ledger of metered model calls.
package usage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/domain/repositories"
	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
)

// Recorder writes one LLMUsage row per model call. Failures are logged and
// never returned: metering must not break the calling operation.
type Recorder struct {
	repo    repositories.UsageRepository
	pricing pkgai.Pricing
	logger  *zap.Logger
}

// NewRecorder creates a recorder. A nil repository turns it into a no-op.
func NewRecorder(repo repositories.UsageRepository, pricing pkgai.Pricing, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{repo: repo, pricing: pricing, logger: logger}
}

// Record stores the usage of a completed call
func (r *Recorder) Record(ctx context.Context, purpose entities.UsagePurpose, meetingID *uuid.UUID, completion *pkgai.Completion, metadata map[string]interface{}) {
	if r == nil || r.repo == nil || completion == nil {
		return
	}

	row := &entities.LLMUsage{
		ID:           uuid.New(),
		Purpose:      purpose,
		Model:        completion.Model,
		InputTokens:  completion.Usage.PromptTokens,
		OutputTokens: completion.Usage.CompletionTokens,
		TotalTokens:  completion.Usage.TotalTokens,
		Cost:         r.pricing.Cost(completion.Usage),
		MeetingID:    meetingID,
	}
	if len(metadata) > 0 {
		if raw, err := json.Marshal(metadata); err == nil {
			row.Metadata = datatypes.JSON(raw)
		}
	}

	if err := r.repo.Create(ctx, row); err != nil {
		r.logger.Warn("failed to record llm usage",
			zap.String("purpose", string(purpose)),
			zap.Error(err),
		)
		return
	}

	r.logger.Debug("llm usage recorded",
		zap.String("purpose", string(purpose)),
		zap.Int("total_tokens", row.TotalTokens),
		zap.Float64("cost", row.Cost),
	)
}
