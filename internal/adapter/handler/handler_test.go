package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/internal/adapter/dto/common"
	"github.com/johnquangdev/reunicheck/internal/adapter/repository"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/cache"
	"github.com/johnquangdev/reunicheck/internal/infrastructure/database"
	analysisUsecase "github.com/johnquangdev/reunicheck/internal/usecase/analysis"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
	"github.com/johnquangdev/reunicheck/internal/usecase/conversation"
	meetingUsecase "github.com/johnquangdev/reunicheck/internal/usecase/meeting"
	questionUsecase "github.com/johnquangdev/reunicheck/internal/usecase/question"
	userUsecase "github.com/johnquangdev/reunicheck/internal/usecase/user"
	"github.com/johnquangdev/reunicheck/pkg/ai/aitest"
	"github.com/johnquangdev/reunicheck/pkg/config"
	pkgvalidator "github.com/johnquangdev/reunicheck/pkg/validator"
)

func newTestServer(t *testing.T, llm *aitest.Stub) *echo.Echo {
	t.Helper()
	db := database.NewTestDB(t)
	logger := zap.NewNop()
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		LLM:    config.LLMConfig{QuestionCount: 2},
		Session: config.SessionConfig{
			LockBackend: "memory",
			LockTTL:     time.Minute,
		},
	}

	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)

	questionService := questionUsecase.NewService(questionRepo, llm, nil, cfg.LLM, logger)
	meetingService := meetingUsecase.NewService(userRepo, meetingRepo, questionRepo, answerRepo, questionService, logger)
	answerService := answerUsecase.NewService(questionRepo, answerRepo, meetingRepo, logger)
	conversationService := conversation.NewService(userRepo, meetingRepo, questionRepo, answerRepo,
		llm, nil, cache.NewMemoryLocker(store), cfg.LLM, cfg.Session, logger)
	analysisService := analysisUsecase.NewService(userRepo, meetingRepo, questionRepo, answerRepo, analysisRepo,
		llm, nil, nil, cfg.LLM, logger)
	userService := userUsecase.NewService(userRepo, meetingRepo, logger)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	NewRouter(cfg,
		NewUserHandler(userService, logger),
		NewMeetingHandler(meetingService, logger),
		NewChatHandler(userService, conversationService, answerService, logger),
		NewQuestionHandler(answerService, logger),
		NewAnswerHandler(answerService, logger),
		NewAnalysisHandler(analysisService, logger),
	).Setup(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) common.ErrorResponse {
	t.Helper()
	var body common.ErrorResponse
	decode(t, rec, &body)
	return body
}

func createUser(t *testing.T, e *echo.Echo, name, email string) string {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/v1/users", map[string]string{"name": name, "email": email})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(t, rec, &body)
	return body.User.ID
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, aitest.New())
	rec := do(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSwaggerDoc(t *testing.T) {
	e := newTestServer(t, aitest.New())
	rec := do(t, e, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/chat/conversation"`)
	assert.Contains(t, rec.Body.String(), "ReuniCheck API")
}

func TestUsers(t *testing.T) {
	e := newTestServer(t, aitest.New())
	createUser(t, e, "Ana Lopez", "ana@x.com")

	rec := do(t, e, http.MethodPost, "/v1/users", map[string]string{"name": "Ana Again", "email": "ANA@x.com"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorOf(t, rec).Code)

	rec = do(t, e, http.MethodPost, "/v1/users", map[string]string{"name": "Al", "email": "al@x.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorOf(t, rec).Code)

	rec = do(t, e, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "ana@x.com", list.Users[0].Email)
}

func TestMalformedPathID(t *testing.T) {
	e := newTestServer(t, aitest.New())
	rec := do(t, e, http.MethodGet, "/v1/analysis/not-a-uuid/latest", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := errorOf(t, rec)
	assert.Equal(t, "INVALID_ARGUMENT", body.Code)
	assert.Equal(t, "not-a-uuid", body.Details["meeting_id"])
}

func TestUnknownRoute(t *testing.T) {
	e := newTestServer(t, aitest.New())
	rec := do(t, e, http.MethodGet, "/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorOf(t, rec).Code)
}

func TestCreateMeeting_NoParticipantsResolved(t *testing.T) {
	e := newTestServer(t, aitest.New("Q1?"))
	rec := do(t, e, http.MethodPost, "/v1/meetings", map[string]interface{}{
		"topic": "Budget review",
		"users": []string{"ghost@x.com"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_PARTICIPANTS_RESOLVED", errorOf(t, rec).Code)
}

type meetingCreated struct {
	GroupID  string `json:"group_id"`
	Meetings []struct {
		MeetingID     string `json:"meeting_id"`
		UserID        string `json:"user_id"`
		QuestionCount int    `json:"question_count"`
	} `json:"meetings"`
}

type pendingList struct {
	Questions []struct {
		QuestionID string  `json:"question_id"`
		Source     string  `json:"source"`
		Answered   bool    `json:"answered"`
		Answer     *string `json:"answer"`
	} `json:"questions"`
	Complete bool `json:"complete"`
}

func TestFullFlow(t *testing.T) {
	llm := aitest.New(
		"Is the budget approved?\nWho owns the forecast?",
		"Why is finance still pending?",
		`{"is_meeting_needed": false, "conclusions": "Everyone agrees; send a summary instead."}`,
	)
	e := newTestServer(t, llm)
	userID := createUser(t, e, "Ana Lopez", "ana@x.com")

	// create
	rec := do(t, e, http.MethodPost, "/v1/meetings", map[string]interface{}{
		"topic": "Budget review",
		"users": []string{"ana@x.com", "ghost@x.com"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created meetingCreated
	decode(t, rec, &created)
	require.Len(t, created.Meetings, 1)
	assert.Equal(t, 2, created.Meetings[0].QuestionCount)
	meetingID := created.Meetings[0].MeetingID

	// start chat
	rec = do(t, e, http.MethodPost, "/v1/chat/start", map[string]string{"user_email": "ana@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), meetingID)

	// answer first official question
	pending := func() pendingList {
		rec := do(t, e, http.MethodPost, "/v1/questions/pending", map[string]string{"user_id": userID, "meeting_id": meetingID})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var p pendingList
		decode(t, rec, &p)
		return p
	}
	p := pending()
	require.Len(t, p.Questions, 2)
	assert.False(t, p.Complete)

	rec = do(t, e, http.MethodPost, "/v1/answers", map[string]string{
		"question_id": p.Questions[0].QuestionID,
		"user_id":     userID,
		"meeting_id":  meetingID,
		"content":     "Not yet, finance is reviewing",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// analysis refuses while answers are missing
	rec = do(t, e, http.MethodPost, "/v1/analysis/analyze", map[string]string{"user_id": userID, "meeting_id": meetingID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	missing := errorOf(t, rec)
	assert.Equal(t, "MISSING_ANSWERS", missing.Code)
	assert.Equal(t, p.Questions[1].QuestionID, missing.Details["missing_question_ids"])

	// deepening session
	rec = do(t, e, http.MethodPost, "/v1/chat/conversation", map[string]string{
		"user_id": userID, "meeting_id": meetingID, "user_response": conversation.AutoStartMessage,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var reply struct {
		Message    string `json:"message"`
		AIResponse string `json:"ai_response"`
		QuestionID string `json:"question_id"`
	}
	decode(t, rec, &reply)
	assert.Equal(t, "Why is finance still pending?", reply.AIResponse)

	// answer the remaining official question and the follow-up
	p = pending()
	require.Len(t, p.Questions, 3)
	assert.Equal(t, "follow_up", p.Questions[2].Source)
	for _, q := range p.Questions[1:] {
		rec = do(t, e, http.MethodPost, "/v1/answers", map[string]string{
			"question_id": q.QuestionID, "user_id": userID, "meeting_id": meetingID, "content": "Answered in full",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	p = pending()
	assert.True(t, p.Complete)
	require.NotNil(t, p.Questions[0].Answer)
	assert.Equal(t, "Not yet, finance is reviewing", *p.Questions[0].Answer)

	// analyse
	rec = do(t, e, http.MethodPost, "/v1/analysis/analyze", map[string]string{"user_id": userID, "meeting_id": meetingID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var verdict struct {
		Conclusions     string `json:"conclusions"`
		IsMeetingNeeded bool   `json:"is_meeting_needed"`
		ResultID        string `json:"result_id"`
	}
	decode(t, rec, &verdict)
	assert.False(t, verdict.IsMeetingNeeded)
	assert.Contains(t, verdict.Conclusions, "Everyone agrees")

	rec = do(t, e, http.MethodGet, "/v1/analysis/"+meetingID+"/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), verdict.ResultID)

	// read-side endpoints
	rec = do(t, e, http.MethodGet, "/v1/chat/context/"+userID+"/"+meetingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not yet, finance is reviewing")

	rec = do(t, e, http.MethodGet, "/v1/questions/recent/"+userID+"/"+meetingID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Why is finance still pending?")

	rec = do(t, e, http.MethodGet, "/v1/answers/meetings_responded/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), meetingID)

	rec = do(t, e, http.MethodGet, "/v1/meetings/groups/"+created.GroupID+"/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"complete":true`)

	rec = do(t, e, http.MethodPatch, "/v1/meetings/"+meetingID+"/state", map[string]bool{"open": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"closed"`)
}

func TestAnalyze_ParseFailure(t *testing.T) {
	llm := aitest.New("Q1?", "Honestly I cannot decide.")
	e := newTestServer(t, llm)
	userID := createUser(t, e, "Ana Lopez", "ana@x.com")

	rec := do(t, e, http.MethodPost, "/v1/meetings", map[string]interface{}{
		"topic": "Budget review", "users": []string{"ana@x.com"}, "question_count": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created meetingCreated
	decode(t, rec, &created)
	meetingID := created.Meetings[0].MeetingID

	rec = do(t, e, http.MethodPost, "/v1/answers", map[string]string{
		"user_id": userID, "meeting_id": meetingID, "content": "spontaneous note",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var p pendingList
	rec = do(t, e, http.MethodPost, "/v1/questions/pending", map[string]string{"user_id": userID, "meeting_id": meetingID})
	decode(t, rec, &p)
	require.Len(t, p.Questions, 1)
	assert.False(t, p.Questions[0].Answered)

	rec = do(t, e, http.MethodPost, "/v1/answers", map[string]string{
		"question_id": p.Questions[0].QuestionID, "user_id": userID, "meeting_id": meetingID, "content": "yes",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPost, "/v1/analysis/analyze", map[string]string{"user_id": userID, "meeting_id": meetingID})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := errorOf(t, rec)
	assert.Equal(t, "AI_PARSE_FAILED", body.Code)
	assert.Equal(t, "Honestly I cannot decide.", body.Details["raw_output"])

	rec = do(t, e, http.MethodGet, "/v1/analysis/"+meetingID+"/latest", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"parse_failed"`)
}

func TestConversation_NotOwner(t *testing.T) {
	e := newTestServer(t, aitest.New("Q1?"))
	createUser(t, e, "Ana Lopez", "ana@x.com")
	bobID := createUser(t, e, "Bob Smith", "bob@x.com")

	rec := do(t, e, http.MethodPost, "/v1/meetings", map[string]interface{}{"topic": "Budget review", "users": []string{"ana@x.com"}})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created meetingCreated
	decode(t, rec, &created)

	rec = do(t, e, http.MethodPost, "/v1/chat/conversation", map[string]string{
		"user_id": bobID, "meeting_id": created.Meetings[0].MeetingID, "user_response": "hello",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_MEETING_OWNER", errorOf(t, rec).Code)
}
