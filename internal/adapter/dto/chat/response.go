package chat

import "github.com/johnquangdev/reunicheck/internal/adapter/dto/meeting"

// StartChatResponse lists the meetings a participant can talk about
type StartChatResponse struct {
	UserID   string                    `json:"user_id"`
	Meetings []*meeting.MeetingSummary `json:"meetings"`
}

// ConversationResponse is the assistant's reply to a turn
type ConversationResponse struct {
	Message    string `json:"message"`
	AIResponse string `json:"ai_response"`
	QuestionID string `json:"question_id"`
}

// PairResponse is one question and the answer given to it
type PairResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContextResponse is returned by GET /chat/context/:user_id/:meeting_id
type ContextResponse struct {
	Pairs []*PairResponse `json:"pairs"`
}
