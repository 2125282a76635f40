package question

import "time"

// PendingQuestionResponse is a question with its answer state
type PendingQuestionResponse struct {
	QuestionID string  `json:"question_id"`
	Content    string  `json:"content"`
	Source     string  `json:"source"`
	Answered   bool    `json:"answered"`
	Answer     *string `json:"answer,omitempty"`
}

// PendingQuestionsResponse is returned by POST /questions/pending
type PendingQuestionsResponse struct {
	Questions []*PendingQuestionResponse `json:"questions"`
	Complete  bool                       `json:"complete"`
}

// QuestionResponse represents a stored question
type QuestionResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meeting_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentQuestionsResponse is returned by GET /questions/recent/:user_id/:meeting_id
type RecentQuestionsResponse struct {
	Questions []*QuestionResponse `json:"questions"`
}
