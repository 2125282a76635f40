// Package transcript renders stored questions and answers as plain text for
// the language model.
package transcript

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

// NoAnswer marks a question nobody has answered yet
const NoAnswer = "No answer recorded."

// SpontaneousLabel stands in for the question of an answer not tied to one
const SpontaneousLabel = "Spontaneous comment"

// AnswersByQuestion indexes answers by the question they reference, keeping
// their stored order. Spontaneous answers are returned separately.
func AnswersByQuestion(answers []*entities.Answer) (map[uuid.UUID][]*entities.Answer, []*entities.Answer) {
	byQuestion := make(map[uuid.UUID][]*entities.Answer)
	var spontaneous []*entities.Answer
	for _, a := range answers {
		if a.QuestionID == nil {
			spontaneous = append(spontaneous, a)
			continue
		}
		byQuestion[*a.QuestionID] = append(byQuestion[*a.QuestionID], a)
	}
	return byQuestion, spontaneous
}

// Participant renders the topic and a participant's official questions with
// their answers. It seeds a deepening session.
func Participant(topic string, questions []*entities.Question, answers []*entities.Answer) string {
	byQuestion, _ := AnswersByQuestion(answers)

	var b strings.Builder
	fmt.Fprintf(&b, "Meeting topic: %s\n\n", topic)
	n := 0
	for _, q := range questions {
		if q.IsFollowUp() {
			continue
		}
		n++
		fmt.Fprintf(&b, "Question %d: %s\n", n, q.Content)
		qa := byQuestion[q.ID]
		if len(qa) == 0 {
			fmt.Fprintf(&b, "Answer: [unanswered]\n\n")
			continue
		}
		for _, a := range qa {
			fmt.Fprintf(&b, "Answer: %s\n", a.Content)
		}
		b.WriteString("\n")
	}
	if n == 0 {
		b.WriteString("No questions have been generated for this meeting yet.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Meeting renders every question with every answer ever recorded against it,
// annotated with the author's email when known. It feeds the analyzer.
func Meeting(topic string, questions []*entities.Question, answers []*entities.Answer, emails map[uuid.UUID]string) string {
	byQuestion, spontaneous := AnswersByQuestion(answers)

	author := func(userID uuid.UUID) string {
		if email, ok := emails[userID]; ok && email != "" {
			return email
		}
		return userID.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Meeting topic: %s\n\n", topic)
	b.WriteString("Questions and answers:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, q.Content)
		qa := byQuestion[q.ID]
		if len(qa) == 0 {
			fmt.Fprintf(&b, "   - %s\n", NoAnswer)
			continue
		}
		for _, a := range qa {
			fmt.Fprintf(&b, "   - %s: %s\n", author(a.UserID), a.Content)
		}
	}

	if len(spontaneous) > 0 {
		b.WriteString("\nSpontaneous comments:\n")
		for _, a := range spontaneous {
			fmt.Fprintf(&b, "   - %s: %s\n", author(a.UserID), a.Content)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
