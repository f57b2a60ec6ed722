package assessor

import (
	"math"

	"github.com/raysh454/xssrisk/internal/model"
)

const maxRiskScore = 100

// Tally is the accumulated view of a report's evidence.
type Tally struct {
	// Total is the unclamped sum of per-item contributions.
	Total float64

	TypeCounts     map[model.EvidenceType]int
	SeverityCounts map[model.Severity]int
}

// TallyEvidence accumulates contributions and per-type/per-severity counts.
func TallyEvidence(evidence []model.Evidence) Tally {
	t := Tally{
		TypeCounts:     make(map[model.EvidenceType]int),
		SeverityCounts: make(map[model.Severity]int),
	}
	for _, ev := range evidence {
		t.Total += Contribution(ev)
		t.TypeCounts[ev.Type]++
		t.SeverityCounts[ev.Severity]++
	}
	return t
}

// Score is floor(Total) clamped to [0, 100]. The model saturates instead of
// normalizing, so adding evidence can never lower the score.
func (t Tally) Score() int {
	score := int(math.Floor(t.Total))
	if score > maxRiskScore {
		return maxRiskScore
	}
	if score < 0 {
		return 0
	}
	return score
}

// HasCategory reports whether any evidence type of category c was seen.
func (t Tally) HasCategory(c model.Category) bool {
	for typ, n := range t.TypeCounts {
		if n > 0 && typ.Category() == c {
			return true
		}
	}
	return false
}
