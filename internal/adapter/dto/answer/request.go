package answer

// CreateAnswerRequest records an answer; without question_id it is spontaneous
type CreateAnswerRequest struct {
	QuestionID *string `json:"question_id,omitempty" validate:"omitempty,uuid"`
	UserID     string  `json:"user_id" validate:"required,uuid"`
	MeetingID  string  `json:"meeting_id" validate:"required,uuid"`
	Content    string  `json:"content" validate:"required,min=2"`
}
