package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 0
	ErrorCode_INTERNAL          ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 2
	ErrorCode_NOT_FOUND         ErrorCode = 3
	ErrorCode_ALREADY_EXISTS    ErrorCode = 4
	ErrorCode_PERMISSION_DENIED ErrorCode = 5
	ErrorCode_CONFLICT          ErrorCode = 6

	// Request
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 100
	ErrorCode_VALIDATION_FAILED ErrorCode = 101

	// Users
	ErrorCode_USER_NOT_FOUND      ErrorCode = 200
	ErrorCode_USER_ALREADY_EXISTS ErrorCode = 201

	// Meetings
	ErrorCode_MEETING_NOT_FOUND        ErrorCode = 300
	ErrorCode_NO_PARTICIPANTS_RESOLVED ErrorCode = 301
	ErrorCode_NO_MEETINGS_ASSIGNED     ErrorCode = 302
	ErrorCode_NOT_MEETING_OWNER        ErrorCode = 303
	ErrorCode_MEETING_GROUP_NOT_FOUND  ErrorCode = 304

	// Questions and answers
	ErrorCode_NO_QUESTIONS    ErrorCode = 400
	ErrorCode_MISSING_ANSWERS ErrorCode = 401

	// Conversation
	ErrorCode_SESSION_BUSY ErrorCode = 500

	// Analysis
	ErrorCode_ANALYSIS_NOT_FOUND ErrorCode = 600
	ErrorCode_AI_UPSTREAM_FAILED ErrorCode = 601
	ErrorCode_AI_PARSE_FAILED    ErrorCode = 602

	// Storage
	ErrorCode_DB_QUERY_FAILED ErrorCode = 700
	ErrorCode_DB_WRITE_FAILED ErrorCode = 701
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:           "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:        "PERMISSION_DENIED",
	ErrorCode_CONFLICT:                 "CONFLICT",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:        "VALIDATION_FAILED",
	ErrorCode_USER_NOT_FOUND:           "USER_NOT_FOUND",
	ErrorCode_USER_ALREADY_EXISTS:      "USER_ALREADY_EXISTS",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_NO_PARTICIPANTS_RESOLVED: "NO_PARTICIPANTS_RESOLVED",
	ErrorCode_NO_MEETINGS_ASSIGNED:     "NO_MEETINGS_ASSIGNED",
	ErrorCode_NOT_MEETING_OWNER:        "NOT_MEETING_OWNER",
	ErrorCode_MEETING_GROUP_NOT_FOUND:  "MEETING_GROUP_NOT_FOUND",
	ErrorCode_NO_QUESTIONS:             "NO_QUESTIONS",
	ErrorCode_MISSING_ANSWERS:          "MISSING_ANSWERS",
	ErrorCode_SESSION_BUSY:             "SESSION_BUSY",
	ErrorCode_ANALYSIS_NOT_FOUND:       "ANALYSIS_NOT_FOUND",
	ErrorCode_AI_UPSTREAM_FAILED:       "AI_UPSTREAM_FAILED",
	ErrorCode_AI_PARSE_FAILED:          "AI_PARSE_FAILED",
	ErrorCode_DB_QUERY_FAILED:          "DB_QUERY_FAILED",
	ErrorCode_DB_WRITE_FAILED:          "DB_WRITE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and logs
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
