package enhancer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/logging"
)

// OpenAIConfig selects the chat-completion endpoint used for summaries.
type OpenAIConfig struct {
	APIKey string `json:"-"`
	Model  string `json:"model"`

	// BaseURL overrides the API root, e.g. for an OpenAI-compatible gateway.
	BaseURL string `json:"base_url"`
}

// OpenAISummarizer implements interfaces.Summarizer with a chat completion.
type OpenAISummarizer struct {
	client *openai.Client
	model  string
	logger logging.Logger
}

var _ interfaces.Summarizer = (*OpenAISummarizer)(nil)

// NewOpenAISummarizer builds a summarizer. httpClient may be nil.
func NewOpenAISummarizer(cfg OpenAIConfig, httpClient *http.Client, logger logging.Logger) (*OpenAISummarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if logger == nil {
		return nil, errors.New("openai: nil logger")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT3Dot5Turbo
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if httpClient != nil {
		clientCfg.HTTPClient = httpClient
	}

	l := logger.With(logging.Field{Key: "backend", Value: "openai"})
	l.Info("created openai summarizer", logging.Field{Key: "model", Value: cfg.Model})

	return &OpenAISummarizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: l,
	}, nil
}

// Summarize sends one chat completion request. There is no retry.
func (s *OpenAISummarizer) Summarize(ctx context.Context, p interfaces.Prompt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.System},
			{Role: openai.ChatMessageRoleUser, Content: p.User},
		},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}

	s.logger.Debug("sending chat completion", logging.Field{Key: "model", Value: s.model})

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
