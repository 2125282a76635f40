package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeetingState is the open/closed flag of a meeting row
type MeetingState string

const (
	MeetingStateOpen   MeetingState = "open"
	MeetingStateClosed MeetingState = "closed"
)

// MinTopicLength is the shortest accepted meeting topic
const MinTopicLength = 3

// Meeting is one participant's copy of a meeting topic. Rows created together
// share a GroupID.
type Meeting struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	GroupID   uuid.UUID    `json:"group_id" gorm:"type:uuid;not null;index"`
	Topic     string       `json:"topic" gorm:"type:text;not null"`
	State     MeetingState `json:"state" gorm:"type:varchar(20);default:'open';not null"`
	UserID    uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	User      *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates an open meeting row for one participant
func NewMeeting(groupID uuid.UUID, topic string, userID uuid.UUID) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:        uuid.New(),
		GroupID:   groupID,
		Topic:     strings.TrimSpace(topic),
		State:     MeetingStateOpen,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetOpen toggles the meeting state
func (m *Meeting) SetOpen(open bool) {
	if open {
		m.State = MeetingStateOpen
	} else {
		m.State = MeetingStateClosed
	}
	m.UpdatedAt = time.Now().UTC()
}

// ValidateTopic checks the minimum topic length
func ValidateTopic(topic string) error {
	if len([]rune(strings.TrimSpace(topic))) < MinTopicLength {
		return ErrInvalidTopic
	}
	return nil
}
