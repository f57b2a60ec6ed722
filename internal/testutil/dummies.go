// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// WarnCount returns the number of warnings recorded so far.
func (l *DummyLogger) WarnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Warns)
}

// ─── Summarizer ────────────────────────────────────────────────────────

// DummySummarizer implements interfaces.Summarizer.
// It returns Text, or Err when set. Delay simulates a slow provider and
// honours context cancellation. Panic makes Summarize panic.
type DummySummarizer struct {
	Text  string
	Err   error
	Delay time.Duration
	Panic bool

	mu      sync.Mutex
	Prompts []interfaces.Prompt
}

func (d *DummySummarizer) Summarize(ctx context.Context, p interfaces.Prompt) (string, error) {
	d.mu.Lock()
	d.Prompts = append(d.Prompts, p)
	d.mu.Unlock()

	if d.Panic {
		panic("dummy summarizer panic")
	}
	if d.Delay > 0 {
		select {
		case <-time.After(d.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if d.Err != nil {
		return "", d.Err
	}
	return d.Text, nil
}

// Calls returns how many times Summarize was invoked.
func (d *DummySummarizer) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Prompts)
}

// LastPrompt returns the most recent prompt, or the zero Prompt.
func (d *DummySummarizer) LastPrompt() interfaces.Prompt {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Prompts) == 0 {
		return interfaces.Prompt{}
	}
	return d.Prompts[len(d.Prompts)-1]
}
