package enhancer

import "time"

// Config bounds the enhancement call and its output.
type Config struct {
	// Timeout caps the whole provider call.
	Timeout time.Duration `json:"timeout"`

	// MaxSummaryLen is the rune limit applied to the substituted summary.
	MaxSummaryLen int `json:"max_summary_len"`

	// MaxExcerptItems and MaxSnippetLen bound the evidence sent to the provider.
	MaxExcerptItems int `json:"max_excerpt_items"`
	MaxSnippetLen   int `json:"max_snippet_len"`

	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultConfig returns the bounds used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Timeout:         20 * time.Second,
		MaxSummaryLen:   500,
		MaxExcerptItems: 10,
		MaxSnippetLen:   100,
		Temperature:     0.3,
		MaxTokens:       800,
	}
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.MaxSummaryLen <= 0 {
		c.MaxSummaryLen = d.MaxSummaryLen
	}
	if c.MaxExcerptItems <= 0 {
		c.MaxExcerptItems = d.MaxExcerptItems
	}
	if c.MaxSnippetLen <= 0 {
		c.MaxSnippetLen = d.MaxSnippetLen
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	return c
}
