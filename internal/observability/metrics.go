package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// Metrics owns the meter provider, its prometheus registry and the
// instruments recorded by the analyzer.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry

	assessments  metric.Int64Counter
	riskScore    metric.Int64Histogram
	enhancements metric.Int64Counter
}

// NewMetrics initializes the prometheus exporter on a private registry and
// creates the analysis instruments.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "xssrisk"
	}

	reg := prometheus.NewRegistry()
	exporter, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(cfg.ServiceName)

	m := &Metrics{provider: provider, registry: reg}

	if m.assessments, err = meter.Int64Counter("xssrisk_assessments",
		metric.WithDescription("Assessments produced, by verdict.")); err != nil {
		return nil, fmt.Errorf("create assessments counter: %w", err)
	}
	if m.riskScore, err = meter.Int64Histogram("xssrisk_risk_score",
		metric.WithDescription("Distribution of heuristic risk scores."),
		metric.WithExplicitBucketBoundaries(9, 29, 59, 79, 100)); err != nil {
		return nil, fmt.Errorf("create risk score histogram: %w", err)
	}
	if m.enhancements, err = meter.Int64Counter("xssrisk_enhancements",
		metric.WithDescription("Enhancement attempts, by outcome.")); err != nil {
		return nil, fmt.Errorf("create enhancements counter: %w", err)
	}

	return m, nil
}

// RecordAssessment counts one assessment and observes its score.
func (m *Metrics) RecordAssessment(ctx context.Context, verdict string, score int) {
	if m == nil {
		return
	}
	m.assessments.Add(ctx, 1, metric.WithAttributes(attribute.String("verdict", verdict)))
	m.riskScore.Record(ctx, int64(score))
}

// RecordEnhancement counts one enhancement attempt.
func (m *Metrics) RecordEnhancement(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.enhancements.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Handler serves the prometheus exposition for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
