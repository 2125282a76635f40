package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus records whether the model verdict could be interpreted
type AnalysisStatus string

const (
	AnalysisStatusCompleted   AnalysisStatus = "completed"
	AnalysisStatusParseFailed AnalysisStatus = "parse_failed"
)

// AnalysisResult is one necessity verdict for a meeting. Rows are append-only;
// the newest row per meeting is the current verdict.
type AnalysisResult struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID       uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index"`
	RequestedBy     *uuid.UUID     `json:"requested_by,omitempty" gorm:"type:uuid"`
	Conclusions     string         `json:"conclusions" gorm:"type:text"`
	IsMeetingNeeded bool           `json:"is_meeting_needed" gorm:"not null"`
	Status          AnalysisStatus `json:"status" gorm:"type:varchar(20);not null"`
	RawResponse     string         `json:"raw_response,omitempty" gorm:"type:text"`
	Model           string         `json:"model,omitempty" gorm:"type:varchar(100)"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (AnalysisResult) TableName() string {
	return "analysis_results"
}

// NewAnalysisResult creates a completed verdict
func NewAnalysisResult(meetingID uuid.UUID, requestedBy *uuid.UUID, conclusions string, needed bool) *AnalysisResult {
	return &AnalysisResult{
		ID:              uuid.New(),
		MeetingID:       meetingID,
		RequestedBy:     requestedBy,
		Conclusions:     conclusions,
		IsMeetingNeeded: needed,
		Status:          AnalysisStatusCompleted,
		CreatedAt:       time.Now().UTC(),
	}
}

// NewFailedAnalysisResult records a reply that could not be parsed. The
// verdict stays false and the raw reply is kept for diagnosis.
func NewFailedAnalysisResult(meetingID uuid.UUID, requestedBy *uuid.UUID, raw string) *AnalysisResult {
	return &AnalysisResult{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		RequestedBy: requestedBy,
		Status:      AnalysisStatusParseFailed,
		RawResponse: raw,
		CreatedAt:   time.Now().UTC(),
	}
}
