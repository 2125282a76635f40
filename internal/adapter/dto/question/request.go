package question

// PendingQuestionsRequest selects a participant's questions for one meeting
type PendingQuestionsRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	MeetingID string `json:"meeting_id" validate:"required,uuid"`
}
