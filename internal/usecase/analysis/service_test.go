package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/domain/entities"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
	"github.com/johnquangdev/reunicheck/pkg/ai/aitest"
	"github.com/johnquangdev/reunicheck/pkg/config"
)

type memoryArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (m *memoryArchive) Archive(_ context.Context, name string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[name] = payload
	return nil
}

type fixture struct {
	users     *repository.UserRepository
	meetings  *repository.MeetingRepository
	questions *repository.QuestionRepository
	answers   *repository.AnswerRepository
	results   *repository.AnalysisRepository
	user      *entities.User
	meeting   *entities.Meeting
	archive   *memoryArchive
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := database.NewTestDB(t)

	f := &fixture{
		users:     repository.NewUserRepository(db),
		meetings:  repository.NewMeetingRepository(db),
		questions: repository.NewQuestionRepository(db),
		answers:   repository.NewAnswerRepository(db),
		results:   repository.NewAnalysisRepository(db),
		archive:   &memoryArchive{},
	}
	f.user = entities.NewUser("ana@x.com", "Ana Lopez")
	require.NoError(t, f.users.Create(ctx, f.user))
	f.meeting = entities.NewMeeting(uuid.New(), "Budget review", f.user.ID)
	require.NoError(t, f.meetings.Create(ctx, f.meeting))
	return f
}

func (f *fixture) service(llm *aitest.Stub) Service {
	return NewService(f.users, f.meetings, f.questions, f.answers, f.results, llm, nil, f.archive,
		config.LLMConfig{AnalysisMaxTokens: 1000, AnalysisTemperature: 0.3}, nil)
}

func (f *fixture) addQuestions(t *testing.T, contents ...string) []*entities.Question {
	t.Helper()
	base := time.Now().UTC().Add(-time.Hour)
	out := make([]*entities.Question, len(contents))
	for i, c := range contents {
		q := entities.NewQuestion(f.meeting.ID, f.user.ID, c, entities.QuestionSourceGenerated)
		q.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, f.questions.Create(context.Background(), q))
		out[i] = q
	}
	return out
}

func (f *fixture) answerAll(t *testing.T, questions []*entities.Question) {
	t.Helper()
	for _, q := range questions {
		a := entities.NewAnswer(&q.ID, f.user.ID, f.meeting.ID, "answer to "+q.Content)
		require.NoError(t, f.answers.Create(context.Background(), a))
	}
}

func (f *fixture) analyze(svc Service) (*Verdict, error) {
	return svc.Analyze(context.Background(), AnalyzeInput{UserID: f.user.ID, MeetingID: f.meeting.ID})
}

func TestAnalyze_Completed(t *testing.T) {
	f := setup(t)
	f.answerAll(t, f.addQuestions(t, "Is the budget approved?", "Who owns it?"))
	llm := aitest.New("```json\n{\"is_meeting_needed\": false, \"conclusions\": \"Consensus reached\"}\n```")
	svc := f.service(llm)

	verdict, err := f.analyze(svc)
	require.NoError(t, err)
	assert.False(t, verdict.IsMeetingNeeded)
	assert.Equal(t, "Consensus reached", verdict.Conclusions)

	call := llm.LastCall()
	assert.True(t, call.Options.JSONMode)
	assert.Contains(t, call.Messages[1].Content, "Budget review")
	assert.Contains(t, call.Messages[1].Content, "ana@x.com: answer to Who owns it?")

	stored, err := svc.LatestVerdict(context.Background(), f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, verdict.ResultID, stored.ID)
	assert.Equal(t, entities.AnalysisStatusCompleted, stored.Status)
	assert.Equal(t, "stub-model", stored.Model)
	require.NotNil(t, stored.RequestedBy)
	assert.Equal(t, f.user.ID, *stored.RequestedBy)

	payload, ok := f.archive.objects[ObjectName(f.meeting.ID, verdict.ResultID)]
	require.True(t, ok)
	var archived map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &archived))
	assert.Contains(t, archived["transcript"], "Is the budget approved?")
}

func TestAnalyze_ParseFailureIsPersisted(t *testing.T) {
	f := setup(t)
	f.answerAll(t, f.addQuestions(t, "Is the budget approved?"))
	raw := "I think the meeting is needed."
	svc := f.service(aitest.New(raw))

	_, err := f.analyze(svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrParseFailure))
	var pf *usecaseErrors.ParseFailureError
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, raw, pf.Raw)

	stored, err := svc.LatestVerdict(context.Background(), f.meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AnalysisStatusParseFailed, stored.Status)
	assert.False(t, stored.IsMeetingNeeded)
	assert.Empty(t, stored.Conclusions)
	assert.Equal(t, raw, stored.RawResponse)
}

func TestAnalyze_NoQuestions(t *testing.T) {
	f := setup(t)
	llm := aitest.New("unused")

	_, err := f.analyze(f.service(llm))
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrNoQuestions))
	assert.Empty(t, llm.Calls())
}

func TestAnalyze_MissingAnswersListsQuestions(t *testing.T) {
	f := setup(t)
	qs := f.addQuestions(t, "Q1?", "Q2?", "Q3?")
	f.answerAll(t, qs[:1])
	llm := aitest.New("unused")

	_, err := f.analyze(f.service(llm))
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrMissingAnswers))
	var missing *usecaseErrors.MissingAnswersError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []uuid.UUID{qs[1].ID, qs[2].ID}, missing.QuestionIDs)
	assert.Empty(t, llm.Calls())
}

func TestAnalyze_UnknownMeeting(t *testing.T) {
	f := setup(t)
	_, err := f.service(aitest.New("unused")).Analyze(context.Background(), AnalyzeInput{MeetingID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrMeetingNotFound))
}

func TestAnalyze_UpstreamFailureStoresNothing(t *testing.T) {
	f := setup(t)
	f.answerAll(t, f.addQuestions(t, "Q1?"))
	svc := f.service(aitest.Failing(errors.New("timeout")))

	_, err := f.analyze(svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrUpstream))

	_, err = svc.LatestVerdict(context.Background(), f.meeting.ID)
	assert.True(t, errors.Is(err, usecaseErrors.ErrAnalysisNotFound))
}

func TestAnalyze_ArchiveFailureIsIgnored(t *testing.T) {
	f := setup(t)
	f.answerAll(t, f.addQuestions(t, "Q1?"))
	f.archive.err = errors.New("bucket unavailable")

	verdict, err := f.analyze(f.service(aitest.New(`{"is_meeting_needed": true, "conclusions": "Open disagreement"}`)))
	require.NoError(t, err)
	assert.True(t, verdict.IsMeetingNeeded)
}

func TestObjectName(t *testing.T) {
	m := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	r := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	assert.Equal(t, "analyses/11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222.json", ObjectName(m, r))
}
