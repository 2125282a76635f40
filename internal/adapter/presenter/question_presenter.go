package presenter

import (
	chatDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/chat"
	questionDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/question"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
)

// ToQuestionResponse converts a Question entity to QuestionResponse DTO
func ToQuestionResponse(q *entities.Question) *questionDTO.QuestionResponse {
	if q == nil {
		return nil
	}
	return &questionDTO.QuestionResponse{
		ID:        q.ID.String(),
		MeetingID: q.MeetingID.String(),
		UserID:    q.UserID.String(),
		Content:   q.Content,
		Source:    string(q.Source),
		CreatedAt: q.CreatedAt,
	}
}

// ToRecentQuestionsResponse converts questions to RecentQuestionsResponse DTO
func ToRecentQuestionsResponse(questions []*entities.Question) *questionDTO.RecentQuestionsResponse {
	out := make([]*questionDTO.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToQuestionResponse(q))
	}
	return &questionDTO.RecentQuestionsResponse{Questions: out}
}

// ToPendingQuestionsResponse converts pending questions and the completion flag
func ToPendingQuestionsResponse(pending []answerUsecase.PendingQuestion) *questionDTO.PendingQuestionsResponse {
	out := make([]*questionDTO.PendingQuestionResponse, 0, len(pending))
	for _, p := range pending {
		item := &questionDTO.PendingQuestionResponse{
			QuestionID: p.Question.ID.String(),
			Content:    p.Question.Content,
			Source:     string(p.Question.Source),
			Answered:   p.Answered,
		}
		if p.Answered {
			answer := p.Answer
			item.Answer = &answer
		}
		out = append(out, item)
	}
	return &questionDTO.PendingQuestionsResponse{
		Questions: out,
		Complete:  answerUsecase.Complete(pending),
	}
}

// ToContextResponse converts conversation pairs to ContextResponse DTO
func ToContextResponse(pairs []answerUsecase.ContextPair) *chatDTO.ContextResponse {
	out := make([]*chatDTO.PairResponse, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &chatDTO.PairResponse{Question: p.Question, Answer: p.Answer})
	}
	return &chatDTO.ContextResponse{Pairs: out}
}
