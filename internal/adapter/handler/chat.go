package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	chatDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/chat"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	answerUsecase "github.com/johnquangdev/reunicheck/internal/usecase/answer"
	"github.com/johnquangdev/reunicheck/internal/usecase/conversation"
	userUsecase "github.com/johnquangdev/reunicheck/internal/usecase/user"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Chat handles the participant-facing conversation
type Chat struct {
	userService         userUsecase.Service
	conversationService conversation.Service
	answerService       answerUsecase.Service
	logger              *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	userService userUsecase.Service,
	conversationService conversation.Service,
	answerService answerUsecase.Service,
	logger *zap.Logger,
) *Chat {
	return &Chat{
		userService:         userService,
		conversationService: conversationService,
		answerService:       answerService,
		logger:              logger,
	}
}

// Start handles POST /chat/start
// @Summary      Resolve a participant and list their meetings
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      chat.StartChatRequest  true  "Participant email"
// @Success      200      {object}  chat.StartChatResponse
// @Failure      404      {object}  common.ErrorResponse  "Unknown user or no meetings assigned"
// @Router       /chat/start [post]
func (h *Chat) Start(c echo.Context) error {
	var req chatDTO.StartChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	start, err := h.userService.StartChat(c.Request().Context(), req.UserEmail)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{email: req.UserEmail}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &chatDTO.StartChatResponse{
		UserID:   start.UserID.String(),
		Meetings: presenter.ToMeetingSummaries(start.Meetings),
	})
}

// Conversation handles POST /chat/conversation
// @Summary      One turn of the deepening conversation
// @Description  Send "__auto_start__" as user_response to open or resume the session
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      chat.ConversationRequest  true  "Turn"
// @Success      200      {object}  chat.ConversationResponse
// @Failure      403      {object}  common.ErrorResponse  "Meeting belongs to another user"
// @Failure      404      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse  "A turn for this session is in progress"
// @Failure      502      {object}  common.ErrorResponse  "Language model failure"
// @Router       /chat/conversation [post]
func (h *Chat) Conversation(c echo.Context) error {
	var req chatDTO.ConversationRequest
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

	reply, err := h.conversationService.Converse(c.Request().Context(), conversation.ConverseInput{
		UserID:    userID,
		MeetingID: meetingID,
		Message:   req.UserResponse,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{
			user:    req.UserID,
			meeting: req.MeetingID,
			session: conversation.SessionKey(userID, meetingID),
		}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &chatDTO.ConversationResponse{
		Message:    reply.Message,
		AIResponse: reply.AIResponse,
		QuestionID: reply.QuestionID.String(),
	})
}

// Context handles GET /chat/context/:user_id/:meeting_id
// @Summary      Question and answer pairs of a participant
// @Tags         Chat
// @Produce      json
// @Param        user_id     path      string  true  "User ID (UUID)"
// @Param        meeting_id  path      string  true  "Meeting ID (UUID)"
// @Success      200         {object}  chat.ContextResponse
// @Failure      400         {object}  common.ErrorResponse
// @Router       /chat/context/{user_id}/{meeting_id} [get]
func (h *Chat) Context(c echo.Context) error {
	userID := middleware.UUIDParam(c, "user_id")
	meetingID := middleware.UUIDParam(c, "meeting_id")

	pairs, err := h.answerService.ConversationContext(c.Request().Context(), userID, meetingID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToContextResponse(pairs))
}
