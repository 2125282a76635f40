package chat

// StartChatRequest resolves a participant by email
type StartChatRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

// ConversationRequest is one turn of the deepening conversation
type ConversationRequest struct {
	UserID       string `json:"user_id" validate:"required,uuid"`
	MeetingID    string `json:"meeting_id" validate:"required,uuid"`
	UserResponse string `json:"user_response" validate:"required"`
}
