package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(database.NewTestDB(t))

	ana := entities.NewUser("Ana@X.com", "Ana Lopez")
	require.NoError(t, repo.Create(ctx, ana))
	require.NoError(t, repo.Create(ctx, entities.NewUser("bob@x.com", "Bob Smith")))

	err := repo.Create(ctx, entities.NewUser("ana@x.com", "Ana Again"))
	assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)

	found, err := repo.FindByEmail(ctx, " ANA@x.com ")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, found.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana Lopez", users[0].Name)
}

func TestMeetingRepository_GroupAndState(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	users := NewUserRepository(db)
	meetings := NewMeetingRepository(db)

	ana := entities.NewUser("ana@x.com", "Ana Lopez")
	bob := entities.NewUser("bob@x.com", "Bob Smith")
	require.NoError(t, users.Create(ctx, ana))
	require.NoError(t, users.Create(ctx, bob))

	group := uuid.New()
	m1 := entities.NewMeeting(group, "Budget review", ana.ID)
	m2 := entities.NewMeeting(group, "Budget review", bob.ID)
	m2.CreatedAt = m1.CreatedAt.Add(time.Millisecond)
	require.NoError(t, meetings.Create(ctx, m1))
	require.NoError(t, meetings.Create(ctx, m2))

	rows, err := meetings.FindByGroup(ctx, group)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "ana@x.com", rows[0].User.Email)

	own, err := meetings.FindByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, m2.ID, own[0].ID)

	require.NoError(t, meetings.UpdateState(ctx, m1.ID, entities.MeetingStateClosed))
	got, err := meetings.FindByID(ctx, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStateClosed, got.State)

	_, err = meetings.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestQuestionAndAnswerCounts(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	users := NewUserRepository(db)
	meetings := NewMeetingRepository(db)
	questions := NewQuestionRepository(db)
	answers := NewAnswerRepository(db)

	ana := entities.NewUser("ana@x.com", "Ana Lopez")
	require.NoError(t, users.Create(ctx, ana))
	m := entities.NewMeeting(uuid.New(), "Budget review", ana.ID)
	require.NoError(t, meetings.Create(ctx, m))

	base := time.Now().UTC()
	var batch []*entities.Question
	for i, text := range []string{"First?", "Second?", "Third?"} {
		q := entities.NewQuestion(m.ID, ana.ID, text, entities.QuestionSourceGenerated)
		q.CreatedAt = base.Add(time.Duration(i) * time.Second)
		batch = append(batch, q)
	}
	require.NoError(t, questions.CreateBatch(ctx, batch))

	recent, err := questions.FindRecent(ctx, m.ID, ana.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Third?", recent[0].Content)

	// two answers to the same question count once
	for _, content := range []string{"draft", "final"} {
		require.NoError(t, answers.Create(ctx, entities.NewAnswer(&batch[0].ID, ana.ID, m.ID, content)))
	}
	require.NoError(t, answers.Create(ctx, entities.NewAnswer(nil, ana.ID, m.ID, "spontaneous")))

	totals, err := questions.CountByMeetings(ctx, []uuid.UUID{m.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, totals[m.ID])

	answered, err := answers.CountAnsweredByMeetings(ctx, []uuid.UUID{m.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, answered[m.ID])

	ids, err := answers.FindMeetingIDsByUser(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{m.ID}, ids)

	empty, err := answers.CountAnsweredByMeetings(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAnalysisRepository_Latest(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDB(t)
	users := NewUserRepository(db)
	meetings := NewMeetingRepository(db)
	results := NewAnalysisRepository(db)

	ana := entities.NewUser("ana@x.com", "Ana Lopez")
	require.NoError(t, users.Create(ctx, ana))
	m := entities.NewMeeting(uuid.New(), "Budget review", ana.ID)
	require.NoError(t, meetings.Create(ctx, m))

	_, err := results.FindLatestByMeeting(ctx, m.ID)
	assert.ErrorIs(t, err, entities.ErrAnalysisNotFound)

	failed := entities.NewFailedAnalysisResult(m.ID, &ana.ID, "not json")
	ok := entities.NewAnalysisResult(m.ID, &ana.ID, "Send a summary instead.", false)
	ok.CreatedAt = failed.CreatedAt.Add(time.Second)
	require.NoError(t, results.Create(ctx, failed))
	require.NoError(t, results.Create(ctx, ok))

	latest, err := results.FindLatestByMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, latest.ID)
	assert.Equal(t, entities.AnalysisStatusCompleted, latest.Status)

	all, err := results.ListByMeeting(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entities.AnalysisStatusParseFailed, all[1].Status)
}
