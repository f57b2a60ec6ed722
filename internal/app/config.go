package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/raysh454/xssrisk/internal/assessor"
	"github.com/raysh454/xssrisk/internal/enhancer"
	"github.com/raysh454/xssrisk/internal/logging"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr         string
	MaxConns     int
	MaxBodyBytes int64
}

// Config contains the runtime configuration shared by the CLI and the server.
type Config struct {
	Server ServerConfig

	Log logging.Config

	// OpenAI configuration; an empty APIKey disables enhancement.
	OpenAI enhancer.OpenAIConfig

	// Enhancement bounds
	Enhance enhancer.Config

	// Assessor configuration
	Assessor assessor.Config
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         "127.0.0.1:8000",
			MaxConns:     256,
			MaxBodyBytes: 1 << 20,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "json",
		},
		OpenAI: enhancer.OpenAIConfig{
			Model: "gpt-3.5-turbo",
		},
		Enhance:  enhancer.DefaultConfig(),
		Assessor: assessor.DefaultConfig(),
	}
}

// SetDefaults registers every configuration key on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.max_conns", d.Server.MaxConns)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", d.OpenAI.Model)
	v.SetDefault("openai.base_url", "")
	v.SetDefault("enhance.timeout", d.Enhance.Timeout)
	v.SetDefault("enhance.max_summary_len", d.Enhance.MaxSummaryLen)
	v.SetDefault("enhance.max_excerpt_items", d.Enhance.MaxExcerptItems)
	v.SetDefault("enhance.max_snippet_len", d.Enhance.MaxSnippetLen)
	v.SetDefault("enhance.temperature", d.Enhance.Temperature)
	v.SetDefault("enhance.max_tokens", d.Enhance.MaxTokens)
}

// LoadConfig reads a Config from v, falling back to defaults for unset keys.
func LoadConfig(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := DefaultConfig()
	cfg.Server = ServerConfig{
		Addr:         v.GetString("server.addr"),
		MaxConns:     v.GetInt("server.max_conns"),
		MaxBodyBytes: v.GetInt64("server.max_body_bytes"),
	}
	cfg.Log = logging.Config{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.OpenAI = enhancer.OpenAIConfig{
		APIKey:  v.GetString("openai.api_key"),
		Model:   v.GetString("openai.model"),
		BaseURL: v.GetString("openai.base_url"),
	}
	cfg.Enhance = enhancer.Config{
		Timeout:         v.GetDuration("enhance.timeout"),
		MaxSummaryLen:   v.GetInt("enhance.max_summary_len"),
		MaxExcerptItems: v.GetInt("enhance.max_excerpt_items"),
		MaxSnippetLen:   v.GetInt("enhance.max_snippet_len"),
		Temperature:     float32(v.GetFloat64("enhance.temperature")),
		MaxTokens:       v.GetInt("enhance.max_tokens"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if c.Server.MaxConns <= 0 {
		errs = append(errs, fmt.Errorf("server.max_conns must be positive, got %d", c.Server.MaxConns))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Enhance.Timeout <= 0 || c.Enhance.Timeout > 5*time.Minute {
		errs = append(errs, fmt.Errorf("enhance.timeout out of range: %s", c.Enhance.Timeout))
	}
	// go-openai omits a zero temperature, so 0 would silently mean the provider default.
	if c.Enhance.Temperature <= 0 || c.Enhance.Temperature > 2 {
		errs = append(errs, fmt.Errorf("enhance.temperature out of range: %v", c.Enhance.Temperature))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EnhancementEnabled reports whether an API key is configured.
func (c *Config) EnhancementEnabled() bool {
	return c.OpenAI.APIKey != ""
}
