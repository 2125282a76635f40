package analysis

// AnalyzeRequest asks for a verdict on one meeting
type AnalyzeRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	MeetingID string `json:"meeting_id" validate:"required,uuid"`
}
