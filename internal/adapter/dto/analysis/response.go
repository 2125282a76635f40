package analysis

import "time"

// AnalyzeResponse is returned by POST /analysis/analyze
type AnalyzeResponse struct {
	Message         string `json:"message"`
	Conclusions     string `json:"conclusions"`
	IsMeetingNeeded bool   `json:"is_meeting_needed"`
	ResultID        string `json:"result_id"`
}

// ResultResponse represents a stored analysis
type ResultResponse struct {
	ID              string    `json:"id"`
	MeetingID       string    `json:"meeting_id"`
	RequestedBy     *string   `json:"requested_by,omitempty"`
	Conclusions     string    `json:"conclusions"`
	IsMeetingNeeded bool      `json:"is_meeting_needed"`
	Status          string    `json:"status"`
	RawResponse     string    `json:"raw_response,omitempty"`
	Model           string    `json:"model,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LatestResultResponse is returned by GET /analysis/:meeting_id/latest
type LatestResultResponse struct {
	Result *ResultResponse `json:"result"`
}
