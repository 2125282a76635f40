package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analysisDTO "github.com/johnquangdev/reunicheck/internal/adapter/dto/analysis"
	"github.com/johnquangdev/reunicheck/internal/adapter/presenter"
	analysisUsecase "github.com/johnquangdev/reunicheck/internal/usecase/analysis"
	"github.com/johnquangdev/reunicheck/pkg/middleware"
)

// Analysis handles meeting-necessity requests
type Analysis struct {
	analysisService analysisUsecase.Service
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService analysisUsecase.Service, logger *zap.Logger) *Analysis {
	return &Analysis{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Analyze handles POST /analysis/analyze
// @Summary      Decide whether a meeting is needed
// @Description  Requires every question of the meeting to be answered, follow-ups included. Each conversation turn stores a new follow-up, so after chatting the newest follow-up must be answered through POST /answers before analysing.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysis.AnalyzeRequest  true  "Meeting to analyse"
// @Success      200      {object}  analysis.AnalyzeResponse
// @Failure      400      {object}  common.ErrorResponse  "No questions or unanswered questions"
// @Failure      404      {object}  common.ErrorResponse
// @Failure      502      {object}  common.ErrorResponse  "Model failure or unreadable verdict"
// @Router       /analysis/analyze [post]
func (h *Analysis) Analyze(c echo.Context) error {
	var req analysisDTO.AnalyzeRequest
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

	verdict, err := h.analysisService.Analyze(c.Request().Context(), analysisUsecase.AnalyzeInput{
		UserID:    userID,
		MeetingID: meetingID,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{meeting: req.MeetingID}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &analysisDTO.AnalyzeResponse{
		Message:         "Analysis completed",
		Conclusions:     verdict.Conclusions,
		IsMeetingNeeded: verdict.IsMeetingNeeded,
		ResultID:        verdict.ResultID.String(),
	})
}

// Latest handles GET /analysis/:meeting_id/latest
// @Summary      Latest stored analysis of a meeting
// @Tags         Analysis
// @Produce      json
// @Param        meeting_id  path      string  true  "Meeting ID (UUID)"
// @Success      200         {object}  analysis.LatestResultResponse
// @Failure      404         {object}  common.ErrorResponse
// @Router       /analysis/{meeting_id}/latest [get]
func (h *Analysis) Latest(c echo.Context) error {
	meetingID := middleware.UUIDParam(c, "meeting_id")

	result, err := h.analysisService.LatestVerdict(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, refs{meeting: meetingID.String()}))
	}

	return HandleSuccess(h.logger, c, http.StatusOK, &analysisDTO.LatestResultResponse{
		Result: presenter.ToResultResponse(result),
	})
}
