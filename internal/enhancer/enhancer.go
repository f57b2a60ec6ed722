package enhancer

import (
	"context"
	"errors"
	"fmt"

	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/logging"
	"github.com/raysh454/xssrisk/internal/model"
)

// Outcome records what happened to one enhancement attempt.
type Outcome string

const (
	OutcomeEnhanced Outcome = "enhanced"
	OutcomeFallback Outcome = "fallback"
)

// Observer is notified once per Enhance call.
type Observer func(ctx context.Context, outcome Outcome)

// Enhancer substitutes provider narrative for the heuristic summary. It never
// makes a result worse than the baseline: on any failure the baseline is
// returned as is, and on success only the summary differs.
type Enhancer struct {
	summarizer interfaces.Summarizer
	cfg        Config
	logger     logging.Logger
	observe    Observer
}

// Option configures an Enhancer.
type Option func(*Enhancer)

// WithObserver registers a callback for enhancement outcomes.
func WithObserver(o Observer) Option {
	return func(e *Enhancer) {
		e.observe = o
	}
}

// New constructs an Enhancer around summarizer.
func New(summarizer interfaces.Summarizer, cfg Config, logger logging.Logger, opts ...Option) (*Enhancer, error) {
	if summarizer == nil {
		return nil, errors.New("enhancer: nil summarizer")
	}
	if logger == nil {
		return nil, errors.New("enhancer: nil logger")
	}
	e := &Enhancer{
		summarizer: summarizer,
		cfg:        cfg.withDefaults(),
		logger:     logger.With(logging.Field{Key: "component", Value: "enhancer"}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Enhance asks the provider for a narrative summary of report and merges it
// into a copy of baseline. Failures are logged and swallowed. A nil report or
// baseline yields baseline unchanged.
func (e *Enhancer) Enhance(ctx context.Context, report *model.Report, baseline *model.Assessment) *model.Assessment {
	if report == nil || baseline == nil {
		return baseline
	}
	summary, err := e.summarize(ctx, report, baseline)
	if err != nil {
		e.logger.Warn("enhancement failed, using heuristic result",
			logging.Field{Key: "url", Value: report.Metadata.URL},
			logging.Field{Key: "error", Value: err.Error()})
		e.notify(ctx, OutcomeFallback)
		return baseline
	}

	e.logger.Info("enhancement completed", logging.Field{Key: "url", Value: report.Metadata.URL})
	e.notify(ctx, OutcomeEnhanced)
	return baseline.WithSummary(summary)
}

func (e *Enhancer) summarize(ctx context.Context, report *model.Report, baseline *model.Assessment) (summary string, err error) {
	// A misbehaving provider must not take the request down with it.
	defer func() {
		if r := recover(); r != nil {
			summary, err = "", fmt.Errorf("summarizer panic: %v", r)
		}
	}()

	prompt, err := buildPrompt(report, baseline, e.cfg)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	text, err := e.summarizer.Summarize(callCtx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return sanitizeSummary(text, e.cfg.MaxSummaryLen)
}

func (e *Enhancer) notify(ctx context.Context, o Outcome) {
	if e.observe != nil {
		e.observe(ctx, o)
	}
}
