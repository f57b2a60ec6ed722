package app

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/raysh454/xssrisk/internal/assessor"
	"github.com/raysh454/xssrisk/internal/enhancer"
	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/logging"
	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/observability"
)

const (
	ServiceName    = "XSS Risk Analysis Service"
	ServiceVersion = "1.0.0"
	tracerName     = "github.com/raysh454/xssrisk/internal/app"
)

// ErrInternal marks failures that are not the caller's fault.
var ErrInternal = errors.New("internal analysis error")

// Status is the service identity returned by health queries.
type Status struct {
	Service       string `json:"service"`
	Status        string `json:"status"`
	Version       string `json:"version"`
	OpenAIEnabled bool   `json:"openai_enabled"`
}

// Analyzer validates reports, scores them with the heuristic assessor and,
// when a summarizer is configured, substitutes a provider-written summary.
// It holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	assessor   interfaces.Assessor
	summarizer interfaces.Summarizer
	enhancer   *enhancer.Enhancer
	metrics    *observability.Metrics
	logger     logging.Logger
	tracer     trace.Tracer
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithAssessor replaces the heuristic assessor.
func WithAssessor(a interfaces.Assessor) Option {
	return func(an *Analyzer) { an.assessor = a }
}

// WithSummarizer enables enhancement with s regardless of the OpenAI config.
func WithSummarizer(s interfaces.Summarizer) Option {
	return func(an *Analyzer) { an.summarizer = s }
}

// WithMetrics records assessment and enhancement outcomes on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(an *Analyzer) { an.metrics = m }
}

// NewAnalyzer wires the assessor and, if possible, the enhancer.
func NewAnalyzer(cfg *Config, logger logging.Logger, opts ...Option) (*Analyzer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		return nil, errors.New("analyzer: nil logger")
	}

	a := &Analyzer{
		logger: logger.With(logging.Field{Key: "component", Value: "analyzer"}),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.assessor == nil {
		h, err := assessor.NewHeuristicsAssessor(cfg.Assessor, logger)
		if err != nil {
			return nil, fmt.Errorf("creating assessor: %w", err)
		}
		a.assessor = h
	}

	if a.summarizer == nil && cfg.EnhancementEnabled() {
		s, err := enhancer.NewOpenAISummarizer(cfg.OpenAI, nil, logger)
		if err != nil {
			// Enhancement is optional; serve heuristics only.
			a.logger.Warn("openai summarizer unavailable", logging.Field{Key: "error", Value: err})
		} else {
			a.summarizer = s
		}
	}

	if a.summarizer != nil {
		e, err := enhancer.New(a.summarizer, cfg.Enhance, logger, enhancer.WithObserver(a.observeEnhancement))
		if err != nil {
			return nil, fmt.Errorf("creating enhancer: %w", err)
		}
		a.enhancer = e
	}

	a.logger.Info("analyzer ready", logging.Field{Key: "openai_enabled", Value: a.enhancer != nil})
	return a, nil
}

// Status reports service identity and whether enhancement is configured.
func (a *Analyzer) Status() Status {
	return Status{
		Service:       ServiceName,
		Status:        "running",
		Version:       ServiceVersion,
		OpenAIEnabled: a.enhancer != nil,
	}
}

// Analyze produces the assessment for one report. Schema violations are
// returned as *model.ValidationError, engine failures wrap ErrInternal.
func (a *Analyzer) Analyze(ctx context.Context, report *model.Report) (*model.Assessment, error) {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	if err := report.Validate(); err != nil {
		span.SetStatus(codes.Error, "invalid report")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("report.url", report.Metadata.URL),
		attribute.Int("report.evidence", len(report.Evidence)),
	)
	a.noteAdvisoryFields(report)

	baseline, err := a.assess(ctx, report)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assessment failed")
		return nil, err
	}
	a.metrics.RecordAssessment(ctx, baseline.Verdict.String(), baseline.RiskScore)
	span.SetAttributes(
		attribute.Int("assessment.risk_score", baseline.RiskScore),
		attribute.String("assessment.verdict", baseline.Verdict.String()),
	)

	if a.enhancer == nil {
		return baseline, nil
	}

	ectx, espan := a.tracer.Start(ctx, "enhance")
	result := a.enhancer.Enhance(ectx, report, baseline)
	espan.End()
	return result, nil
}

// Diff assesses base and head and reports how the result moved.
func (a *Analyzer) Diff(ctx context.Context, base, head *model.Report) (diff *model.AssessmentDiff, err error) {
	_, span := a.tracer.Start(ctx, "diff")
	defer span.End()

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	if err := head.Validate(); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("diff panicked", logging.Field{Key: "panic", Value: fmt.Sprint(r)})
			diff, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	return a.assessor.Diff(base, head), nil
}

func (a *Analyzer) assess(ctx context.Context, report *model.Report) (result *model.Assessment, err error) {
	_, span := a.tracer.Start(ctx, "assess")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("assessment panicked",
				logging.Field{Key: "url", Value: report.Metadata.URL},
				logging.Field{Key: "panic", Value: fmt.Sprint(r)})
			result, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	result = a.assessor.Assess(report)
	if result == nil {
		return nil, fmt.Errorf("%w: assessor returned no result", ErrInternal)
	}
	return result, nil
}

// noteAdvisoryFields logs collector-supplied values that disagree with the
// report body. They never influence the assessment.
func (a *Analyzer) noteAdvisoryFields(report *model.Report) {
	if n := len(report.Evidence); report.Metadata.EvidenceCount != n {
		a.logger.Warn("evidenceCount does not match evidence length",
			logging.Field{Key: "url", Value: report.Metadata.URL},
			logging.Field{Key: "declared", Value: report.Metadata.EvidenceCount},
			logging.Field{Key: "actual", Value: n})
	}
	if report.Metadata.RiskLevel != "" || report.Metadata.RiskScore != 0 {
		a.logger.Debug("collector pre-assessment",
			logging.Field{Key: "url", Value: report.Metadata.URL},
			logging.Field{Key: "risk_level", Value: report.Metadata.RiskLevel},
			logging.Field{Key: "risk_score", Value: report.Metadata.RiskScore})
	}
}

func (a *Analyzer) observeEnhancement(ctx context.Context, o enhancer.Outcome) {
	a.metrics.RecordEnhancement(ctx, string(o))
}
