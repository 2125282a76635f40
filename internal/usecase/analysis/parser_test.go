package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_Accepted(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		needed bool
		want   string
	}{
		{"bare json", `{"is_meeting_needed": true, "conclusions": "Disagreement on budget"}`, true, "Disagreement on budget"},
		{"fenced", "```json\n{\"is_meeting_needed\": false, \"conclusions\": \"Consensus reached\"}\n```", false, "Consensus reached"},
		{"fence without tag", "```\n{\"is_meeting_needed\": false, \"conclusions\": \"ok\"}\n```", false, "ok"},
		{"surrounded by prose", "Here is my analysis:\n{\"is_meeting_needed\": true, \"conclusions\": \"Owners disagree\"}\nHope it helps.", true, "Owners disagree"},
		{"list conclusions", `{"is_meeting_needed": true, "conclusions": ["a", "b"]}`, true, "a\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseVerdict(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.needed, v.IsMeetingNeeded)
			assert.Equal(t, tc.want, v.Conclusions)
		})
	}
}

func TestParseVerdict_Rejected(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "", ErrNoJSON},
		{"prose only", "The meeting is definitely needed.", ErrNoJSON},
		{"truncated", `{"is_meeting_needed": true, "conclusions": "cut`, ErrNoJSON},
		{"missing verdict", `{"conclusions": "something"}`, ErrMissingVerdict},
		{"blank conclusions", `{"is_meeting_needed": false, "conclusions": "  "}`, ErrEmptyConclusions},
		{"missing conclusions", `{"is_meeting_needed": false}`, ErrEmptyConclusions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVerdict(tc.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
