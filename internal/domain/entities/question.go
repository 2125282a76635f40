package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionSource tells who authored a question
type QuestionSource string

const (
	// QuestionSourceGenerated marks topic-derived questions
	QuestionSourceGenerated QuestionSource = "generated"
	// QuestionSourceFollowUp marks questions written during a deepening session
	QuestionSourceFollowUp QuestionSource = "follow_up"
)

// Question is a prompt a participant is expected to answer
type Question struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	MeetingID uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;index:idx_questions_meeting_user"`
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_questions_meeting_user"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Source    QuestionSource `json:"source" gorm:"type:varchar(20);default:'generated';not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (Question) TableName() string {
	return "questions"
}

// NewQuestion creates a question scoped to a meeting and participant
func NewQuestion(meetingID, userID uuid.UUID, content string, source QuestionSource) *Question {
	return &Question{
		ID:        uuid.New(),
		MeetingID: meetingID,
		UserID:    userID,
		Content:   strings.TrimSpace(content),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// IsFollowUp reports whether the question came from a deepening session
func (q *Question) IsFollowUp() bool {
	return q.Source == QuestionSourceFollowUp
}
