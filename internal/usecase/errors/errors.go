package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreRead    = errors.New("store read failed")
	ErrStoreWrite   = errors.New("store write failed")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)

// Meeting errors
var (
	ErrMeetingNotFound        = errors.New("meeting not found")
	ErrMeetingGroupNotFound   = errors.New("meeting group not found")
	ErrNoParticipantsResolved = errors.New("no participants could be resolved")
	ErrNoMeetingsAssigned     = errors.New("no meetings assigned to user")
	ErrNotMeetingOwner        = errors.New("meeting does not belong to user")
)

// Question / answer errors
var (
	ErrNoQuestions    = errors.New("meeting has no questions")
	ErrMissingAnswers = errors.New("some questions have no answer")
)

// Conversation errors
var (
	ErrSessionBusy = errors.New("conversation session is busy")
)

// AI errors
var (
	ErrUpstream         = errors.New("language model call failed")
	ErrParseFailure     = errors.New("language model reply could not be parsed")
	ErrAnalysisNotFound = errors.New("analysis not found")
)

// MissingAnswersError names the questions blocking an analysis
type MissingAnswersError struct {
	QuestionIDs []uuid.UUID
}

func (e *MissingAnswersError) Error() string {
	ids := make([]string, len(e.QuestionIDs))
	for i, id := range e.QuestionIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s: %s", ErrMissingAnswers, strings.Join(ids, ", "))
}

func (e *MissingAnswersError) Unwrap() error {
	return ErrMissingAnswers
}

// ParseFailureError carries the raw model output that could not be interpreted
type ParseFailureError struct {
	Raw string
	Err error
}

func (e *ParseFailureError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParseFailure, e.Err)
}

func (e *ParseFailureError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}

// Store wraps a repository failure with the matching sentinel
func Store(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Upstream wraps a model call failure
func Upstream(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstream, err)
}
