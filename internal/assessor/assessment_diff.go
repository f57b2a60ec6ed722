package assessor

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/utils"
)

// Diff assesses both reports and explains what changed from base to head.
// Nil reports are treated as empty.
func Diff(base, head *model.Report) *model.AssessmentDiff {
	if base == nil {
		base = &model.Report{}
	}
	if head == nil {
		head = &model.Report{}
	}

	ba, ha := Assess(base), Assess(head)
	bt, ht := TallyEvidence(base.Evidence), TallyEvidence(head.Evidence)

	diff := &model.AssessmentDiff{
		URLBase:                base.Metadata.URL,
		URLHead:                head.Metadata.URL,
		SamePage:               utils.SamePage(base.Metadata.URL, head.Metadata.URL),
		ScoreBase:              ba.RiskScore,
		ScoreHead:              ha.RiskScore,
		ScoreDelta:             ha.RiskScore - ba.RiskScore,
		VerdictBase:            ba.Verdict,
		VerdictHead:            ha.Verdict,
		VerdictChanged:         ba.Verdict != ha.Verdict,
		TypeCountDeltas:        make(map[model.EvidenceType]int),
		ExplanationAdded:       linesOnlyIn(ha.Explanation, ba.Explanation),
		ExplanationRemoved:     linesOnlyIn(ba.Explanation, ha.Explanation),
		RecommendationsAdded:   linesOnlyIn(ha.Recommendations, ba.Recommendations),
		RecommendationsRemoved: linesOnlyIn(ba.Recommendations, ha.Recommendations),
		SummaryChanges:         textChanges(ba.Summary, ha.Summary),
	}

	for typ, hc := range ht.TypeCounts {
		if d := hc - bt.TypeCounts[typ]; d != 0 {
			diff.TypeCountDeltas[typ] = d
		}
	}
	// Types that disappeared entirely.
	for typ, bc := range bt.TypeCounts {
		if _, ok := ht.TypeCounts[typ]; !ok && bc != 0 {
			diff.TypeCountDeltas[typ] = -bc
		}
	}

	return diff
}

// linesOnlyIn returns the entries of a missing from b, in a's order.
func linesOnlyIn(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	out := []string{}
	for _, s := range a {
		if _, ok := inB[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// textChanges computes a semantic character diff and keeps only the changed runs.
func textChanges(base, head string) []model.DiffChunk {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(base, head, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	chunks := []model.DiffChunk{}
	for _, d := range diffs {
		var kind string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = "added"
		case diffmatchpatch.DiffDelete:
			kind = "removed"
		default:
			continue
		}
		if strings.TrimSpace(d.Text) == "" {
			continue
		}
		chunks = append(chunks, model.DiffChunk{Type: kind, Content: d.Text})
	}
	return chunks
}
