// Package aitest provides a scripted ai.Completer for tests.
package aitest

import (
	"context"
	"sync"

	pkgai "github.com/johnquangdev/reunicheck/pkg/ai"
)

// Call is one recorded Complete invocation
type Call struct {
	Messages []pkgai.Message
	Options  pkgai.CompletionOptions
}

// Reply is a scripted outcome: either Content or Err
type Reply struct {
	Content string
	Err     error
}

// Stub replays scripted replies in order and records every call. Once the
// script is exhausted the last reply repeats.
type Stub struct {
	mu      sync.Mutex
	replies []Reply
	calls   []Call
	Model   string
}

var _ pkgai.Completer = (*Stub)(nil)

// New creates a stub returning the given contents in order
func New(contents ...string) *Stub {
	s := &Stub{Model: "stub-model"}
	for _, c := range contents {
		s.replies = append(s.replies, Reply{Content: c})
	}
	return s
}

// Failing creates a stub whose every call fails with err
func Failing(err error) *Stub {
	return &Stub{Model: "stub-model", replies: []Reply{{Err: err}}}
}

// Push appends replies to the script
func (s *Stub) Push(replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

// Complete implements ai.Completer
func (s *Stub) Complete(_ context.Context, messages []pkgai.Message, opts pkgai.CompletionOptions) (*pkgai.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, Call{Messages: append([]pkgai.Message(nil), messages...), Options: opts})

	idx := len(s.calls) - 1
	if idx >= len(s.replies) {
		idx = len(s.replies) - 1
	}
	if idx < 0 {
		return &pkgai.Completion{Model: s.Model}, nil
	}

	reply := s.replies[idx]
	if reply.Err != nil {
		return nil, reply.Err
	}
	return &pkgai.Completion{
		Content: reply.Content,
		Model:   s.Model,
		Usage:   pkgai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

// Calls returns a copy of the recorded calls
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// LastCall returns the most recent call; it panics when there is none
func (s *Stub) LastCall() Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[len(s.calls)-1]
}
