package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSON is returned when no candidate in the reply decodes as a JSON object
	ErrNoJSON = errors.New("no JSON object found in reply")
	// ErrMissingVerdict is returned when is_meeting_needed is absent
	ErrMissingVerdict = errors.New("missing is_meeting_needed in reply")
	// ErrEmptyConclusions is returned when conclusions is absent or blank
	ErrEmptyConclusions = errors.New("missing conclusions in reply")
)

// ParsedVerdict is the model's decision
type ParsedVerdict struct {
	IsMeetingNeeded bool
	Conclusions     string
}

type verdictJSON struct {
	IsMeetingNeeded *bool           `json:"is_meeting_needed"`
	Conclusions     json.RawMessage `json:"conclusions"`
}

// ParseVerdict interprets a model reply. It accepts bare JSON, JSON inside a
// markdown fence and JSON surrounded by prose.
func ParseVerdict(raw string) (*ParsedVerdict, error) {
	var lastErr error
	for _, candidate := range candidates(raw) {
		var v verdictJSON
		if err := json.Unmarshal([]byte(candidate), &v); err != nil {
			lastErr = err
			continue
		}
		return validate(v)
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, lastErr)
	}
	return nil, ErrNoJSON
}

func validate(v verdictJSON) (*ParsedVerdict, error) {
	if v.IsMeetingNeeded == nil {
		return nil, ErrMissingVerdict
	}
	conclusions := decodeConclusions(v.Conclusions)
	if conclusions == "" {
		return nil, ErrEmptyConclusions
	}
	return &ParsedVerdict{IsMeetingNeeded: *v.IsMeetingNeeded, Conclusions: conclusions}, nil
}

// decodeConclusions accepts a string or a list of strings
func decodeConclusions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, "\n"))
	}
	return ""
}

// candidates lists the texts worth decoding, most specific last
func candidates(content string) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	out := []string{content}
	if fenced := extractFenced(content); fenced != "" && fenced != content {
		out = append(out, fenced)
	}
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start != -1 && end > start {
		if obj := content[start : end+1]; obj != content {
			out = append(out, obj)
		}
	}
	return out
}

// extractFenced returns the body of the first markdown code block
func extractFenced(content string) string {
	start := strings.Index(content, "```")
	if start == -1 {
		return ""
	}
	body := content[start+3:]
	// drop an optional language tag such as "json"
	if nl := strings.Index(body, "\n"); nl != -1 && !strings.ContainsAny(body[:nl], "{[") {
		body = body[nl+1:]
	}
	if end := strings.Index(body, "```"); end != -1 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
