package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AppError is the error type handlers translate usecase failures into
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(httpCode int, code ErrorCode, message string, raw error) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error", err)
}

// Request Errors
func ErrInvalidPayload() AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid request payload", nil)
}

func ErrValidationFailed(err error) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_VALIDATION_FAILED, "Request validation failed", err)
}

func ErrInvalidID(param, value string) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, fmt.Sprintf("%s must be a valid UUID", param), nil).
		WithDetail(param, value)
}

// User Errors
func ErrUserNotFound(ref string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_USER_NOT_FOUND, "User not found", nil).
		WithDetail("user", ref)
}

func ErrUserAlreadyExists(email string) AppError {
	return newAppError(http.StatusConflict, ErrorCode_USER_ALREADY_EXISTS, "User already exists", nil).
		WithDetail("email", email)
}

// Meeting Errors
func ErrMeetingNotFound(meetingID string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_MEETING_NOT_FOUND, "Meeting not found", nil).
		WithDetail("meeting_id", meetingID)
}

func ErrMeetingGroupNotFound(groupID string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_MEETING_GROUP_NOT_FOUND, "Meeting group not found", nil).
		WithDetail("group_id", groupID)
}

func ErrNoParticipantsResolved() AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_NO_PARTICIPANTS_RESOLVED, "No meeting could be created: none of the participants could be resolved", nil)
}

func ErrNoMeetingsAssigned(email string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_NO_MEETINGS_ASSIGNED, "No meetings assigned to this user", nil).
		WithDetail("email", email)
}

func ErrNotMeetingOwner() AppError {
	return newAppError(http.StatusForbidden, ErrorCode_NOT_MEETING_OWNER, "Meeting does not belong to this user", nil)
}

// Question / Answer Errors
func ErrNoQuestions(meetingID string) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_NO_QUESTIONS, "No questions found for this meeting", nil).
		WithDetail("meeting_id", meetingID)
}

func ErrMissingAnswers(questionIDs []string) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_MISSING_ANSWERS,
		fmt.Sprintf("Missing answers for questions: %s", strings.Join(questionIDs, ", ")), nil).
		WithDetail("missing_question_ids", strings.Join(questionIDs, ","))
}

// Conversation Errors
func ErrSessionBusy(sessionKey string) AppError {
	return newAppError(http.StatusConflict, ErrorCode_SESSION_BUSY, "Another message for this conversation is still being processed", nil).
		WithDetail("session", sessionKey)
}

// AI Errors
func ErrAIUpstreamFailed(err error) AppError {
	return newAppError(http.StatusBadGateway, ErrorCode_AI_UPSTREAM_FAILED, "Language model request failed", err)
}

func ErrAIParseFailed(raw string, err error) AppError {
	return newAppError(http.StatusBadGateway, ErrorCode_AI_PARSE_FAILED, "Language model reply could not be interpreted", err).
		WithDetail("raw_output", raw)
}

func ErrAnalysisNotFound(meetingID string) AppError {
	return newAppError(http.StatusNotFound, ErrorCode_ANALYSIS_NOT_FOUND, "No analysis recorded for this meeting", nil).
		WithDetail("meeting_id", meetingID)
}

// Storage Errors
func ErrDBQueryFailed(err error) AppError {
	return newAppError(http.StatusInternalServerError, ErrorCode_DB_QUERY_FAILED, "Database query failed", err)
}

func ErrDBWriteFailed(err error) AppError {
	return newAppError(http.StatusBadRequest, ErrorCode_DB_WRITE_FAILED, "Database write failed", err)
}

// FromHTTPStatus wraps an error raised by the HTTP framework itself
func FromHTTPStatus(status int, message string) AppError {
	code := ErrorCode_INTERNAL
	switch {
	case status == http.StatusNotFound:
		code = ErrorCode_NOT_FOUND
	case status == http.StatusMethodNotAllowed:
		code = ErrorCode_INVALID_ARGUMENT
	case status == http.StatusConflict:
		code = ErrorCode_CONFLICT
	case status >= 400 && status < 500:
		code = ErrorCode_INVALID_PAYLOAD
	}
	return newAppError(status, code, message, nil)
}
