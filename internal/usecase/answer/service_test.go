package answer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/cache"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	"github.com/johnquangdev/reunicheck/internal/usecase/conversation"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/pkg/ai/aitest"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

type fixture struct {
	users     *repository.UserRepository
	questions *repository.QuestionRepository
	answers   *repository.AnswerRepository
	meetings  *repository.MeetingRepository
	user      *entities.User
	meeting   *entities.Meeting
	svc       Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := database.NewTestDB(t)
	f := &fixture{
		questions: repository.NewQuestionRepository(db),
		answers:   repository.NewAnswerRepository(db),
		meetings:  repository.NewMeetingRepository(db),
	}
	f.users = repository.NewUserRepository(db)
	f.user = entities.NewUser("ana@x.com", "Ana Lopez")
	require.NoError(t, f.users.Create(context.Background(), f.user))
	f.meeting = entities.NewMeeting(uuid.New(), "Budget review", f.user.ID)
	require.NoError(t, f.meetings.Create(context.Background(), f.meeting))

	f.svc = NewService(f.questions, f.answers, f.meetings, nil)
	return f
}

func (f *fixture) addQuestions(t *testing.T, contents ...string) []*entities.Question {
	t.Helper()
	base := time.Now().UTC()
	out := make([]*entities.Question, len(contents))
	for i, c := range contents {
		q := entities.NewQuestion(f.meeting.ID, f.user.ID, c, entities.QuestionSourceGenerated)
		q.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		require.NoError(t, f.questions.Create(context.Background(), q))
		out[i] = q
	}
	return out
}

func (f *fixture) answer(t *testing.T, q *entities.Question, content string) {
	t.Helper()
	var qid *uuid.UUID
	if q != nil {
		qid = &q.ID
	}
	_, err := f.svc.RecordAnswer(context.Background(), RecordAnswerInput{
		QuestionID: qid,
		UserID:     f.user.ID,
		MeetingID:  f.meeting.ID,
		Content:    content,
	})
	require.NoError(t, err)
}

func TestRecordAnswer_RejectsShortContent(t *testing.T) {
	f := setup(t)
	qs := f.addQuestions(t, "What is blocked?")

	_, err := f.svc.RecordAnswer(context.Background(), RecordAnswerInput{
		QuestionID: &qs[0].ID,
		UserID:     f.user.ID,
		MeetingID:  f.meeting.ID,
		Content:    " a ",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidInput))
}

func TestPendingQuestions_Lifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	qs := f.addQuestions(t, "Q1?", "Q2?", "Q3?")

	pending, err := f.svc.PendingQuestions(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.False(t, Complete(pending))

	f.answer(t, qs[0], "first answer")
	f.answer(t, qs[1], "second answer")

	pending, err = f.svc.PendingQuestions(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.True(t, pending[0].Answered)
	assert.Equal(t, "first answer", pending[0].Answer)
	assert.True(t, pending[1].Answered)
	assert.False(t, pending[2].Answered)
	assert.Empty(t, pending[2].Answer)

	done, err := f.svc.IsComplete(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.False(t, done)

	f.answer(t, qs[2], "third answer")
	done, err = f.svc.IsComplete(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestPendingQuestions_Idempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	qs := f.addQuestions(t, "Q1?", "Q2?")
	f.answer(t, qs[0], "first answer")
	f.answer(t, nil, "a side note")

	first, err := f.svc.PendingQuestions(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	second, err := f.svc.PendingQuestions(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	again, err := f.svc.IsComplete(ctx, f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, Complete(first), again)
}

func TestPendingQuestions_AnsweredStaysAnswered(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	qs := f.addQuestions(t, "Q1?", "Q2?")
	f.answer(t, qs[0], "first answer")

	answered := func() bool {
		t.Helper()
		pending, err := f.svc.PendingQuestions(ctx, f.user.ID, f.meeting.ID)
		require.NoError(t, err)
		for _, p := range pending {
			if p.Question.ID == qs[0].ID {
				return p.Answered
			}
		}
		t.Fatalf("question %s not listed", qs[0].ID)
		return false
	}
	require.True(t, answered())

	f.answer(t, qs[0], "revised answer")
	assert.True(t, answered())

	f.answer(t, nil, "a side note")
	assert.True(t, answered())

	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)
	chat := conversation.NewService(f.users, f.meetings, f.questions, f.answers,
		aitest.New("Who signs off?", "Thanks, noted."), nil, cache.NewMemoryLocker(store),
		config.LLMConfig{}, config.SessionConfig{LockTTL: time.Minute}, nil)
	for _, msg := range []string{conversation.AutoStartMessage, "finance signs off"} {
		_, err := chat.Converse(ctx, conversation.ConverseInput{UserID: f.user.ID, MeetingID: f.meeting.ID, Message: msg})
		require.NoError(t, err)
		assert.True(t, answered())
	}
}

func TestPendingQuestions_LatestAnswerWins(t *testing.T) {
	f := setup(t)
	qs := f.addQuestions(t, "Q1?")

	f.answer(t, qs[0], "draft")
	time.Sleep(2 * time.Millisecond)
	f.answer(t, qs[0], "final")

	pending, err := f.svc.PendingQuestions(context.Background(), f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "final", pending[0].Answer)
}

func TestIsComplete_NoQuestionsIsNeverComplete(t *testing.T) {
	f := setup(t)

	done, err := f.svc.IsComplete(context.Background(), f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.False(t, done)
	assert.False(t, Complete(nil))
}

func TestSpontaneousAnswerDoesNotCountTowardCompletion(t *testing.T) {
	f := setup(t)
	f.addQuestions(t, "Q1?")

	f.answer(t, nil, "an unrelated remark")

	done, err := f.svc.IsComplete(context.Background(), f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestRecentQuestions_NewestFirstAndLimited(t *testing.T) {
	f := setup(t)
	f.addQuestions(t, "Q1?", "Q2?", "Q3?")

	recent, err := f.svc.RecentQuestions(context.Background(), f.user.ID, f.meeting.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Q3?", recent[0].Content)
	assert.Equal(t, "Q2?", recent[1].Content)
}

func TestConversationContext_PairsAnswersWithQuestions(t *testing.T) {
	f := setup(t)
	qs := f.addQuestions(t, "Q1?", "Q2?")

	f.answer(t, qs[0], "yes")
	time.Sleep(2 * time.Millisecond)
	f.answer(t, nil, "by the way")

	pairs, err := f.svc.ConversationContext(context.Background(), f.user.ID, f.meeting.ID)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, ContextPair{Question: "Q1?", Answer: "yes"}, pairs[0])
	assert.Equal(t, "Spontaneous comment", pairs[1].Question)
	assert.Equal(t, "by the way", pairs[1].Answer)
}

func TestMeetingsResponded(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	meetings, err := f.svc.MeetingsResponded(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, meetings)

	qs := f.addQuestions(t, "Q1?")
	f.answer(t, qs[0], "done")
	f.answer(t, nil, "also this")

	meetings, err = f.svc.MeetingsResponded(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, f.meeting.ID, meetings[0].ID)
}
