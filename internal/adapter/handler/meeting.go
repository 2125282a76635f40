package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/meeting"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/reunicheck/internal/usecase/meeting"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Meeting handles meeting lifecycle requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting
// @Description  Creates one meeting per resolvable participant email and generates their questions
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Topic and participant emails"
// @Success      201      {object}  meeting.CreateMeetingResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid request or no participant resolved"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingDTO.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		Topic:         req.Topic,
		Emails:        req.Users,
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToCreateMeetingResponse(out))
}

// UpdateState handles PATCH /meetings/:meeting_id/state
// @Summary      Open or close a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        meeting_id  path      string                       true  "Meeting ID (UUID)"
// @Param        request     body      meeting.UpdateStateRequest  true  "Desired state"
// @Success      200         {object}  meeting.UpdateStateResponse
// @Failure      400         {object}  common.ErrorResponse
// @Failure      404         {object}  common.ErrorResponse
// @Router       /meetings/{meeting_id}/state [patch]
func (h *Meeting) UpdateState(c echo.Context) error {
	meetingID := middleware.UUIDParam(c, "meeting_id")

	var req meetingDTO.UpdateStateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.SetState(c.Request().Context(), meetingID, *req.Open)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{meeting: meetingID.String()}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &meetingDTO.UpdateStateResponse{
		Meeting: presenter.ToMeetingResponse(m),
	})
}

// GroupProgress handles GET /meetings/groups/:group_id/progress
// @Summary      Participant progress of a meeting group
// @Tags         Meetings
// @Produce      json
// @Param        group_id  path      string  true  "Group ID (UUID)"
// @Success      200       {object}  meeting.GroupProgressResponse
// @Failure      404       {object}  common.ErrorResponse
// @Router       /meetings/groups/{group_id}/progress [get]
func (h *Meeting) GroupProgress(c echo.Context) error {
	groupID := middleware.UUIDParam(c, "group_id")

	progress, err := h.meetingService.GroupProgress(c.Request().Context(), groupID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{group: groupID.String()}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToGroupProgressResponse(groupID.String(), progress))
}
