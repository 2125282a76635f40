package transcript

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
)

func TestMeeting_AllAnswersAndMarkers(t *testing.T) {
	meetingID, alice, bob := uuid.New(), uuid.New(), uuid.New()
	q1 := entities.NewQuestion(meetingID, alice, "What is blocking the release?", entities.QuestionSourceGenerated)
	q2 := entities.NewQuestion(meetingID, alice, "Who owns the budget?", entities.QuestionSourceGenerated)

	answers := []*entities.Answer{
		entities.NewAnswer(&q1.ID, alice, meetingID, "The QA backlog"),
		entities.NewAnswer(&q1.ID, bob, meetingID, "Missing sign-off"),
		entities.NewAnswer(nil, bob, meetingID, "We could decide by email"),
	}

	out := Meeting("Q1 roadmap", []*entities.Question{q1, q2}, answers, map[uuid.UUID]string{alice: "a@x.com"})

	assert.Contains(t, out, "Meeting topic: Q1 roadmap")
	assert.Contains(t, out, "1. What is blocking the release?")
	assert.Contains(t, out, "a@x.com: The QA backlog")
	assert.Contains(t, out, bob.String()+": Missing sign-off")
	assert.Contains(t, out, "2. Who owns the budget?\n   - "+NoAnswer)
	assert.Contains(t, out, "Spontaneous comments:")
	assert.Contains(t, out, "We could decide by email")
}

func TestParticipant_SkipsFollowUpsAndMarksUnanswered(t *testing.T) {
	meetingID, user := uuid.New(), uuid.New()
	q1 := entities.NewQuestion(meetingID, user, "First?", entities.QuestionSourceGenerated)
	q2 := entities.NewQuestion(meetingID, user, "Second?", entities.QuestionSourceGenerated)
	f := entities.NewQuestion(meetingID, user, "Follow-up?", entities.QuestionSourceFollowUp)

	out := Participant("Hiring plan", []*entities.Question{q1, q2, f}, []*entities.Answer{
		entities.NewAnswer(&q1.ID, user, meetingID, "Yes"),
	})

	assert.Contains(t, out, "Question 1: First?\nAnswer: Yes")
	assert.Contains(t, out, "Question 2: Second?\nAnswer: [unanswered]")
	assert.NotContains(t, out, "Follow-up?")
}

func TestParticipant_NoQuestions(t *testing.T) {
	out := Participant("Hiring plan", nil, nil)
	assert.Contains(t, out, "No questions have been generated")
}
