package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/reunicheck/pkg/config"
)

// Chat roles
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// ErrEmptyCompletion is returned when the provider answers without any choice
var ErrEmptyCompletion = errors.New("model returned no choices")

// Message is one chat turn sent to the model
type Message struct {
	Role    string
	Content string
}

// CompletionOptions tunes a single request
type CompletionOptions struct {
	MaxTokens   int
	Temperature float32
	// JSONMode asks the provider for a JSON object response
	JSONMode bool
}

// Usage is the token accounting reported by the provider
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the model's reply
type Completion struct {
	Content string
	Model   string
	Usage   Usage
}

// Completer is implemented by chat-completion backends
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (*Completion, error)
}

// ChatClient talks to any OpenAI-compatible chat-completion endpoint
// (Groq by default).
type ChatClient struct {
	client *openai.Client
	model  string
}

var _ Completer = (*ChatClient)(nil)

// NewChatClient creates a client from the LLM config block
func NewChatClient(cfg *config.LLMConfig) *ChatClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &ChatClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Complete sends the conversation and returns the first choice
func (c *ChatClient) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(messages),
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("chat completion failed with status %d: %w", apiErr.HTTPStatusCode, err)
		}
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}

	return &Completion{
		Content: strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:   model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
