package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	questionDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/question"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Question handles question listing requests
type Question struct {
	answerService answerUsecase.Service
	logger        *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(answerService answerUsecase.Service, logger *zap.Logger) *Question {
	return &Question{
		answerService: answerService,
		logger:        logger,
	}
}

// Pending handles POST /questions/pending
// @Summary      Questions of a participant with their answer state
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      question.PendingQuestionsRequest  true  "Participant and meeting"
// @Success      200      {object}  question.PendingQuestionsResponse
// @Failure      400      {object}  common.ErrorResponse
// @Router       /questions/pending [post]
func (h *Question) Pending(c echo.Context) error {
	var req questionDTO.PendingQuestionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	userID, err := parseUUID("user_id", req.UserID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	meetingID, err := parseUUID("meeting_id", req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	pending, err := h.answerService.PendingQuestions(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPendingQuestionsResponse(pending))
}

// Recent handles GET /questions/recent/:user_id/:meeting_id
// @Summary      Latest questions of a participant, newest first
// @Tags         Questions
// @Produce      json
// @Param        user_id     path      string  true  "User ID (UUID)"
// @Param        meeting_id  path      string  true  "Meeting ID (UUID)"
// @Success      200         {object}  question.RecentQuestionsResponse
// @Router       /questions/recent/{user_id}/{meeting_id} [get]
func (h *Question) Recent(c echo.Context) error {
	userID := middleware.UUIDParam(c, "user_id")
	meetingID := middleware.UUIDParam(c, "meeting_id")

	questions, err := h.answerService.RecentQuestions(c.Request().Context(), userID, meetingID, answerUsecase.DefaultRecentLimit)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToRecentQuestionsResponse(questions))
}
