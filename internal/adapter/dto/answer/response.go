package answer

import "github.com/johnquangdev/reunicheck/internal/adapter/dto/meeting"

// CreateAnswerResponse is returned by POST /answers
type CreateAnswerResponse struct {
	Message  string `json:"message"`
	AnswerID string `json:"answer_id"`
}

// MeetingsRespondedResponse lists meetings a user has answered in
type MeetingsRespondedResponse struct {
	Meetings []*meeting.MeetingSummary `json:"meetings"`
}
