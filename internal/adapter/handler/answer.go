package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	answerDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/answer"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Answer handles answer collection requests
type Answer struct {
	answerService answerUsecase.Service
	logger        *zap.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService answerUsecase.Service, logger *zap.Logger) *Answer {
	return &Answer{
		answerService: answerService,
		logger:        logger,
	}
}

// Create handles POST /answers
// @Summary      Record an answer
// @Description  Without question_id the answer is stored as a spontaneous comment
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        request  body      answer.CreateAnswerRequest  true  "Answer"
// @Success      201      {object}  answer.CreateAnswerResponse
// @Failure      400      {object}  common.ErrorResponse
// @Router       /answers [post]
func (h *Answer) Create(c echo.Context) error {
	var req answerDTO.CreateAnswerRequest
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
	var questionID *uuid.UUID
	if req.QuestionID != nil && *req.QuestionID != "" {
		id, err := parseUUID("question_id", *req.QuestionID)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		questionID = &id
	}

	a, err := h.answerService.RecordAnswer(c.Request().Context(), answerUsecase.RecordAnswerInput{
		QuestionID: questionID,
		UserID:     userID,
		MeetingID:  meetingID,
		Content:    req.Content,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, &answerDTO.CreateAnswerResponse{
		Message:  "Answer recorded",
		AnswerID: a.ID.String(),
	})
}

// MeetingsResponded handles GET /answers/meetings_responded/:user_id
// @Summary      Meetings a user has answered in
// @Tags         Answers
// @Produce      json
// @Param        user_id  path      string  true  "User ID (UUID)"
// @Success      200      {object}  answer.MeetingsRespondedResponse
// @Router       /answers/meetings_responded/{user_id} [get]
func (h *Answer) MeetingsResponded(c echo.Context) error {
	userID := middleware.UUIDParam(c, "user_id")

	meetings, err := h.answerService.MeetingsResponded(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{user: userID.String()}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &answerDTO.MeetingsRespondedResponse{
		Meetings: presenter.ToMeetingSummaries(meetings),
	})
}
