package assessor

import (
	"sort"

	"github.com/raysh454/xssrisk/internal/model"
)

const (
	maxSupportingEvidence = 5
	maxSnippetLen         = 100
	truncationMarker      = "..."
)

// TruncateSnippet cuts s to max runes and appends the truncation marker,
// but only when something was actually cut.
func TruncateSnippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + truncationMarker
}

// selectSupporting returns excerpts of the riskiest evidence items, ordered by
// per-item contribution descending. Ties keep input order.
func selectSupporting(evidence []model.Evidence) []model.SupportingEvidence {
	type ranked struct {
		ev      model.Evidence
		contrib float64
	}
	items := make([]ranked, len(evidence))
	for i, ev := range evidence {
		items[i] = ranked{ev: ev, contrib: Contribution(ev)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].contrib > items[j].contrib
	})

	n := min(len(items), maxSupportingEvidence)
	out := make([]model.SupportingEvidence, 0, n)
	for _, it := range items[:n] {
		out = append(out, model.SupportingEvidence{
			Type:     it.ev.Type,
			Severity: it.ev.Severity,
			Snippet:  TruncateSnippet(it.ev.Snippet, maxSnippetLen),
		})
	}
	return out
}
