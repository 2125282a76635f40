package meeting

import "time"

// MeetingEntryResponse is one participant's meeting in a created group
type MeetingEntryResponse struct {
	MeetingID     string `json:"meeting_id"`
	Topic         string `json:"topic"`
	Email         string `json:"email"`
	UserID        string `json:"user_id"`
	QuestionCount int    `json:"question_count"`
}

// CreateMeetingResponse is returned by POST /meetings
type CreateMeetingResponse struct {
	GroupID  string                  `json:"group_id"`
	Meetings []*MeetingEntryResponse `json:"meetings"`
}

// MeetingResponse represents a meeting row
type MeetingResponse struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Topic     string    `json:"topic"`
	State     string    `json:"state"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStateResponse is returned by PATCH /meetings/:meeting_id/state
type UpdateStateResponse struct {
	Meeting *MeetingResponse `json:"meeting"`
}

// MeetingSummary is the short form used in meeting pickers
type MeetingSummary struct {
	MeetingID string `json:"meeting_id"`
	Topic     string `json:"topic"`
}

// ParticipantProgressResponse reports one participant's progress
type ParticipantProgressResponse struct {
	MeetingID      string `json:"meeting_id"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	State          string `json:"state"`
	TotalQuestions int    `json:"total_questions"`
	Answered       int    `json:"answered"`
	Complete       bool   `json:"complete"`
}

// GroupProgressResponse is returned by GET /meetings/groups/:group_id/progress
type GroupProgressResponse struct {
	GroupID      string                         `json:"group_id"`
	Participants []*ParticipantProgressResponse `json:"participants"`
}
