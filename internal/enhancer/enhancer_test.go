package enhancer_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/xssrisk/internal/assessor"
	"github.com/raysh454/xssrisk/internal/enhancer"
	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/testutil"
)

func sampleReport(n int) *model.Report {
	r := &model.Report{Metadata: model.ReportMetadata{URL: "https://shop.example/cart", Timestamp: "2025-01-01T00:00:00Z"}}
	for i := 0; i < n; i++ {
		r.Evidence = append(r.Evidence, model.Evidence{
			ID:       i,
			Time:     "2025-01-01T00:00:00Z",
			Type:     model.TypeInnerHTMLSet,
			Severity: model.SeverityMedium,
			Location: map[string]any{},
			Snippet:  fmt.Sprintf("el.innerHTML = data[%d] + %s", i, strings.Repeat("z", 150)),
		})
	}
	r.Metadata.EvidenceCount = n
	return r
}

func newEnhancer(t *testing.T, s *testutil.DummySummarizer, cfg enhancer.Config, opts ...enhancer.Option) (*enhancer.Enhancer, *testutil.DummyLogger) {
	t.Helper()
	logger := &testutil.DummyLogger{}
	e, err := enhancer.New(s, cfg, logger, opts...)
	require.NoError(t, err)
	return e, logger
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestNew_RequiresDependencies(t *testing.T) {
	t.Parallel()
	_, err := enhancer.New(nil, enhancer.DefaultConfig(), &testutil.DummyLogger{})
	assert.Error(t, err)
	_, err = enhancer.New(&testutil.DummySummarizer{}, enhancer.DefaultConfig(), nil)
	assert.Error(t, err)
}

func TestEnhance_FallbackOnProviderError(t *testing.T) {
	t.Parallel()
	report := sampleReport(3)
	baseline := assessor.Assess(report)
	before := mustJSON(t, baseline)

	s := &testutil.DummySummarizer{Err: errors.New("quota exceeded")}
	e, logger := newEnhancer(t, s, enhancer.DefaultConfig())

	got := e.Enhance(context.Background(), report, baseline)

	assert.Same(t, baseline, got)
	assert.Equal(t, before, mustJSON(t, got))
	assert.Equal(t, 1, s.Calls())
	assert.Equal(t, 1, logger.WarnCount())
}

func TestEnhance_FallbackOnTimeout(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	cfg := enhancer.DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	s := &testutil.DummySummarizer{Text: "late narrative", Delay: time.Second}
	e, _ := newEnhancer(t, s, cfg)

	start := time.Now()
	got := e.Enhance(context.Background(), report, baseline)

	assert.Same(t, baseline, got)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestEnhance_FallbackOnPanic(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	e, _ := newEnhancer(t, &testutil.DummySummarizer{Panic: true}, enhancer.DefaultConfig())

	assert.NotPanics(t, func() {
		got := e.Enhance(context.Background(), report, baseline)
		assert.Same(t, baseline, got)
	})
}

func TestEnhance_FallbackOnEmptyOrMarkupOnlyText(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	for _, text := range []string{"", "   \n ", "<script>alert(1)</script>", "<div> </div>"} {
		e, _ := newEnhancer(t, &testutil.DummySummarizer{Text: text}, enhancer.DefaultConfig())
		got := e.Enhance(context.Background(), report, baseline)
		assert.Same(t, baseline, got, "text %q", text)
	}
}

func TestEnhance_EscapesDecodedEntities(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	s := &testutil.DummySummarizer{Text: "Avoid payloads like &lt;img src=x onerror=alert(1)&gt; in the page."}
	e, _ := newEnhancer(t, s, enhancer.DefaultConfig())

	got := e.Enhance(context.Background(), report, baseline)
	require.NotSame(t, baseline, got)
	assert.Equal(t, "Avoid payloads like &lt;img src=x onerror=alert(1)&gt; in the page.", got.Summary)
	assert.NotContains(t, got.Summary, "<img")
}

func TestEnhance_TruncationKeepsEntitiesWhole(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	cfg := enhancer.DefaultConfig()
	cfg.MaxSummaryLen = 10
	// "abcdefg" is 7 runes and "&lt;" would need 4 more.
	s := &testutil.DummySummarizer{Text: "abcdefg&lt;script&gt;"}
	e, _ := newEnhancer(t, s, cfg)

	got := e.Enhance(context.Background(), report, baseline)
	assert.Equal(t, "abcdefg", got.Summary)

	cfg.MaxSummaryLen = 11
	e, _ = newEnhancer(t, s, cfg)
	got = e.Enhance(context.Background(), report, baseline)
	assert.Equal(t, "abcdefg&lt;", got.Summary)
}

func TestEnhance_NilInputsReturnBaseline(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	s := &testutil.DummySummarizer{Text: "fine"}
	e, _ := newEnhancer(t, s, enhancer.DefaultConfig())

	assert.Same(t, baseline, e.Enhance(context.Background(), nil, baseline))
	assert.Nil(t, e.Enhance(context.Background(), report, nil))
	assert.Equal(t, 0, s.Calls())
}

func TestEnhance_SuccessReplacesOnlySummary(t *testing.T) {
	t.Parallel()
	report := sampleReport(2)
	baseline := assessor.Assess(report)
	before := mustJSON(t, baseline)

	s := &testutil.DummySummarizer{Text: "  The page assigns untrusted data to <b>innerHTML</b> twice.  "}
	e, _ := newEnhancer(t, s, enhancer.DefaultConfig())

	got := e.Enhance(context.Background(), report, baseline)

	require.NotSame(t, baseline, got)
	assert.Equal(t, "The page assigns untrusted data to innerHTML twice.", got.Summary)
	assert.Equal(t, baseline.RiskScore, got.RiskScore)
	assert.Equal(t, baseline.Verdict, got.Verdict)
	assert.Equal(t, baseline.Explanation, got.Explanation)
	assert.Equal(t, baseline.Recommendations, got.Recommendations)
	assert.Equal(t, baseline.SupportingEvidence, got.SupportingEvidence)

	// The baseline itself is untouched and shares no slices with the result.
	assert.Equal(t, before, mustJSON(t, baseline))
	got.Recommendations[0] = "mutated"
	assert.NotEqual(t, "mutated", baseline.Recommendations[0])
}

func TestEnhance_TruncatesSummary(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	s := &testutil.DummySummarizer{Text: strings.Repeat("ü", 900)}
	e, _ := newEnhancer(t, s, enhancer.DefaultConfig())

	got := e.Enhance(context.Background(), report, baseline)
	assert.Equal(t, 500, len([]rune(got.Summary)))
}

func TestEnhance_PromptIsBounded(t *testing.T) {
	t.Parallel()
	report := sampleReport(25)
	baseline := assessor.Assess(report)

	s := &testutil.DummySummarizer{Text: "ok"}
	e, _ := newEnhancer(t, s, enhancer.DefaultConfig())
	e.Enhance(context.Background(), report, baseline)

	p := s.LastPrompt()
	assert.Contains(t, p.System, "XSS")
	assert.Contains(t, p.User, "URL: https://shop.example/cart")
	assert.Contains(t, p.User, "Evidence Count: 25")
	assert.Contains(t, p.User, fmt.Sprintf("Heuristic Risk Score: %d/100", baseline.RiskScore))
	assert.Contains(t, p.User, "data[9]")
	assert.NotContains(t, p.User, "data[10]")
	assert.NotContains(t, p.User, strings.Repeat("z", 101))
	assert.InDelta(t, 0.3, p.Temperature, 1e-6)
	assert.Equal(t, 800, p.MaxTokens)
}

func TestEnhance_ZeroTemperatureUsesDefault(t *testing.T) {
	t.Parallel()
	report := sampleReport(1)
	baseline := assessor.Assess(report)

	cfg := enhancer.DefaultConfig()
	cfg.Temperature = 0
	s := &testutil.DummySummarizer{Text: "ok"}
	e, _ := newEnhancer(t, s, cfg)
	e.Enhance(context.Background(), report, baseline)

	assert.InDelta(t, 0.3, s.LastPrompt().Temperature, 1e-6)
}

func TestEnhance_ObserverOutcomes(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var outcomes []enhancer.Outcome
	obs := enhancer.WithObserver(func(_ context.Context, o enhancer.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		outcomes = append(outcomes, o)
	})

	report := sampleReport(1)
	baseline := assessor.Assess(report)

	ok, _ := newEnhancer(t, &testutil.DummySummarizer{Text: "fine"}, enhancer.DefaultConfig(), obs)
	bad, _ := newEnhancer(t, &testutil.DummySummarizer{Err: errors.New("down")}, enhancer.DefaultConfig(), obs)
	ok.Enhance(context.Background(), report, baseline)
	bad.Enhance(context.Background(), report, baseline)

	assert.Equal(t, []enhancer.Outcome{enhancer.OutcomeEnhanced, enhancer.OutcomeFallback}, outcomes)
}
