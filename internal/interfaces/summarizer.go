package interfaces

import "context"

// Prompt is the text handed to a Summarizer.
type Prompt struct {
	System string
	User   string

	// Temperature and MaxTokens are hints; providers may ignore them.
	Temperature float32
	MaxTokens   int
}

// Summarizer turns a prompt into narrative text. It is the only
// non-deterministic, externally controlled dependency of the service, so
// callers must treat every error (and every answer) as untrusted.
type Summarizer interface {
	Summarize(ctx context.Context, prompt Prompt) (string, error)
}
