package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("name must be at least 3 characters")
	ErrInvalidRole       = errors.New("invalid role")

	// Meeting errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrInvalidTopic    = errors.New("topic must be at least 3 characters")

	// Question / answer errors
	ErrInvalidAnswer = errors.New("answer must be at least 2 characters")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis not found")
)
