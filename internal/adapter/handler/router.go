package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/johnquangdev/reunicheck/docs"
	"github.com/johnquangdev/reunicheck/internal/adapter/dto/common"
	"github.com/johnquangdev/reunicheck/pkg/config"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	userHandler     *User
	meetingHandler  *Meeting
	chatHandler     *Chat
	questionHandler *Question
	answerHandler   *Answer
	analysisHandler *Analysis
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	userHandler *User,
	meetingHandler *Meeting,
	chatHandler *Chat,
	questionHandler *Question,
	answerHandler *Answer,
	analysisHandler *Analysis,
) *Router {
	return &Router{
		cfg:             cfg,
		userHandler:     userHandler,
		meetingHandler:  meetingHandler,
		chatHandler:     chatHandler,
		questionHandler: questionHandler,
		answerHandler:   answerHandler,
		analysisHandler: analysisHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupUserRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupChatRoutes(v1)
	rt.setupQuestionRoutes(v1)
	rt.setupAnswerRoutes(v1)
	rt.setupAnalysisRoutes(v1)
}

func (rt *Router) setupUserRoutes(g *echo.Group) {
	users := g.Group("/users")
	users.POST("", rt.userHandler.CreateUser)
	users.GET("", rt.userHandler.ListUsers)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.PATCH("/:meeting_id/state", rt.meetingHandler.UpdateState, middleware.RequireUUIDParams("meeting_id"))
	meetings.GET("/groups/:group_id/progress", rt.meetingHandler.GroupProgress, middleware.RequireUUIDParams("group_id"))
}

func (rt *Router) setupChatRoutes(g *echo.Group) {
	chat := g.Group("/chat")
	chat.POST("/start", rt.chatHandler.Start)
	chat.POST("/conversation", rt.chatHandler.Conversation)
	chat.GET("/context/:user_id/:meeting_id", rt.chatHandler.Context, middleware.RequireUUIDParams("user_id", "meeting_id"))
}

func (rt *Router) setupQuestionRoutes(g *echo.Group) {
	questions := g.Group("/questions")
	questions.POST("/pending", rt.questionHandler.Pending)
	questions.GET("/recent/:user_id/:meeting_id", rt.questionHandler.Recent, middleware.RequireUUIDParams("user_id", "meeting_id"))
}

func (rt *Router) setupAnswerRoutes(g *echo.Group) {
	answers := g.Group("/answers")
	answers.POST("", rt.answerHandler.Create)
	answers.GET("/meetings_responded/:user_id", rt.answerHandler.MeetingsResponded, middleware.RequireUUIDParams("user_id"))
}

func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	analysis := g.Group("/analysis")
	analysis.POST("/analyze", rt.analysisHandler.Analyze)
	analysis.GET("/:meeting_id/latest", rt.analysisHandler.Latest, middleware.RequireUUIDParams("meeting_id"))
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
