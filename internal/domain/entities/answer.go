package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinAnswerLength is the shortest accepted answer
const MinAnswerLength = 2

// Answer is a participant's response. A nil QuestionID marks a spontaneous answer.
type Answer struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	QuestionID *uuid.UUID `json:"question_id,omitempty" gorm:"type:uuid;index"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	MeetingID  uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName specifies the table name for GORM
func (Answer) TableName() string {
	return "answers"
}

// NewAnswer creates an answer, optionally tied to a question
func NewAnswer(questionID *uuid.UUID, userID, meetingID uuid.UUID, content string) *Answer {
	return &Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		UserID:     userID,
		MeetingID:  meetingID,
		Content:    strings.TrimSpace(content),
		CreatedAt:  time.Now().UTC(),
	}
}

// IsSpontaneous reports whether the answer is not tied to a question
func (a *Answer) IsSpontaneous() bool {
	return a.QuestionID == nil
}
