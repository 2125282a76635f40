package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UsagePurpose names the operation that called the model
type UsagePurpose string

const (
	UsagePurposeQuestionGeneration UsagePurpose = "question_generation"
	UsagePurposeConversation       UsagePurpose = "conversation"
	UsagePurposeAnalysis           UsagePurpose = "analysis"
)

// LLMUsage is one metered model call
type LLMUsage struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	Purpose      UsagePurpose   `json:"purpose" gorm:"type:varchar(50);not null;index"`
	Model        string         `json:"model" gorm:"type:varchar(100);not null"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
	TotalTokens  int            `json:"total_tokens"`
	Cost         float64        `json:"cost"`
	MeetingID    *uuid.UUID     `json:"meeting_id,omitempty" gorm:"type:uuid;index"`
	Metadata     datatypes.JSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (LLMUsage) TableName() string {
	return "llm_usage"
}
