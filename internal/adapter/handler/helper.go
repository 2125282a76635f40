package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/reunicheck/errors"
	"github.com/johnquangdev/reunicheck/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/reunicheck/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request, then the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the JSON body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    errors.ErrorCode_INTERNAL.String(),
		Message: "Internal server error",
		Info:    err.Error(),
	})
}

// NewHTTPErrorHandler renders errors returned by middleware and the router
// with the same envelope as handlers
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			err = errors.FromHTTPStatus(he.Code, fmt.Sprint(he.Message))
		}
		if hErr := HandleError(logger, c, err); hErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(hErr))
		}
	}
}

// refs carries identifiers echoed back in error details
type refs struct {
	user    string
	email   string
	meeting string
	group   string
	session string
}

// toAppError translates usecase failures into API errors
func toAppError(err error, r refs) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var missing *usecaseErrors.MissingAnswersError
	if stdErrors.As(err, &missing) {
		ids := make([]string, len(missing.QuestionIDs))
		for i, id := range missing.QuestionIDs {
			ids[i] = id.String()
		}
		return errors.ErrMissingAnswers(ids)
	}

	var parse *usecaseErrors.ParseFailureError
	if stdErrors.As(err, &parse) {
		return errors.ErrAIParseFailed(parse.Raw, parse.Err)
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUserNotFound):
		ref := r.user
		if r.email != "" {
			ref = r.email
		}
		return errors.ErrUserNotFound(ref)
	case stdErrors.Is(err, usecaseErrors.ErrEmailAlreadyUsed):
		return errors.ErrUserAlreadyExists(r.email)
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(r.meeting)
	case stdErrors.Is(err, usecaseErrors.ErrMeetingGroupNotFound):
		return errors.ErrMeetingGroupNotFound(r.group)
	case stdErrors.Is(err, usecaseErrors.ErrNoParticipantsResolved):
		return errors.ErrNoParticipantsResolved()
	case stdErrors.Is(err, usecaseErrors.ErrNoMeetingsAssigned):
		return errors.ErrNoMeetingsAssigned(r.email)
	case stdErrors.Is(err, usecaseErrors.ErrNotMeetingOwner):
		return errors.ErrNotMeetingOwner()
	case stdErrors.Is(err, usecaseErrors.ErrNoQuestions):
		return errors.ErrNoQuestions(r.meeting)
	case stdErrors.Is(err, usecaseErrors.ErrSessionBusy):
		return errors.ErrSessionBusy(r.session)
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisNotFound):
		return errors.ErrAnalysisNotFound(r.meeting)
	case stdErrors.Is(err, usecaseErrors.ErrUpstream):
		return errors.ErrAIUpstreamFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrValidationFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrStoreWrite):
		return errors.ErrDBWriteFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrStoreRead):
		return errors.ErrDBQueryFailed(err)
	}
	return errors.ErrInternal(err)
}

// bindAndValidate decodes the JSON body into req and validates it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithDetail("reason", err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrValidationFailed(err)
	}
	return nil
}

// parseUUID parses a validated body field
func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidID(field, value)
	}
	return id, nil
}
