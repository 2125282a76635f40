package meeting

// CreateMeetingRequest represents the request to create a meeting for a set of participants
type CreateMeetingRequest struct {
	Topic         string   `json:"topic" validate:"required,min=3,max=500"`
	Users         []string `json:"users" validate:"required,min=1,dive,required"`
	QuestionCount int      `json:"question_count,omitempty" validate:"omitempty,min=1,max=20"`
}

// UpdateStateRequest opens or closes a meeting
type UpdateStateRequest struct {
	Open *bool `json:"open" validate:"required"`
}
