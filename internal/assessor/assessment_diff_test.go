package assessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/xssrisk/internal/model"
)

func TestDiff_BothNil(t *testing.T) {
	diff := Diff(nil, nil)

	assert.Zero(t, diff.ScoreBase)
	assert.Zero(t, diff.ScoreHead)
	assert.Zero(t, diff.ScoreDelta)
	assert.False(t, diff.VerdictChanged)
	assert.Empty(t, diff.TypeCountDeltas)
	assert.Empty(t, diff.SummaryChanges)
	assert.True(t, diff.SamePage)
}

func TestDiff_ComputesDeltas(t *testing.T) {
	base := &model.Report{
		Metadata: model.ReportMetadata{URL: "https://example.com"},
		Evidence: []model.Evidence{
			{Type: model.TypeInlineScript, Severity: model.SeverityLow},
			{Type: model.TypeDocumentWrite, Severity: model.SeverityMedium},
		},
	}
	head := &model.Report{
		Metadata: model.ReportMetadata{URL: "https://example.com"},
		Evidence: []model.Evidence{
			{Type: model.TypeInlineScript, Severity: model.SeverityLow},
			{Type: model.TypeInlineScript, Severity: model.SeverityLow},
			{Type: model.TypeEvalCall, Severity: model.SeverityHigh},
		},
	}

	diff := Diff(base, head)

	// base: 1.5 + 10.4 = 11.9 -> 11; head: 1.5 + 1.5 + 30 = 33
	assert.Equal(t, 11, diff.ScoreBase)
	assert.Equal(t, 33, diff.ScoreHead)
	assert.Equal(t, 22, diff.ScoreDelta)
	assert.Equal(t, model.VerdictLowRisk, diff.VerdictBase)
	assert.Equal(t, model.VerdictMediumRisk, diff.VerdictHead)
	assert.True(t, diff.VerdictChanged)
	assert.True(t, diff.SamePage)

	assert.Equal(t, map[model.EvidenceType]int{
		model.TypeInlineScript:  1,
		model.TypeEvalCall:      1,
		model.TypeDocumentWrite: -1,
	}, diff.TypeCountDeltas)

	assert.Contains(t, diff.ExplanationAdded, "Dynamic code execution via eval() or Function() constructor detected - highest XSS risk.")
	assert.Contains(t, diff.ExplanationRemoved, "document.write() usage detected - can be exploited for injection attacks.")
	assert.Equal(t, []string{"Eliminate use of eval() and Function() constructor. Use safer alternatives like JSON.parse() for data."}, diff.RecommendationsAdded)
	assert.Equal(t, []string{"Avoid document.write(). Use modern DOM manipulation methods instead."}, diff.RecommendationsRemoved)

	require.NotEmpty(t, diff.SummaryChanges)
	for _, c := range diff.SummaryChanges {
		assert.Contains(t, []string{"added", "removed"}, c.Type)
	}
}

func TestDiff_DifferentPages(t *testing.T) {
	base := &model.Report{Metadata: model.ReportMetadata{URL: "https://example.com/a#top"}}
	head := &model.Report{Metadata: model.ReportMetadata{URL: "https://example.com/b"}}
	assert.False(t, Diff(base, head).SamePage)

	head.Metadata.URL = "https://EXAMPLE.com/a/?utm_source=x"
	assert.True(t, Diff(base, head).SamePage)
}

func TestLinesOnlyIn(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, linesOnlyIn([]string{"a", "b", "c"}, []string{"b"}))
	assert.Equal(t, []string{}, linesOnlyIn(nil, []string{"b"}))
}
