package model

// Verdict is the categorical label derived from a risk score.
type Verdict string

const (
	VerdictSafe       Verdict = "Safe"
	VerdictLowRisk    Verdict = "Low Risk"
	VerdictMediumRisk Verdict = "Medium Risk"
	VerdictHighRisk   Verdict = "High Risk"
	VerdictCritical   Verdict = "Critical"
)

func (v Verdict) String() string {
	return string(v)
}

// Rank orders verdicts from Safe (0) to Critical (4). Unknown verdicts rank -1.
func (v Verdict) Rank() int {
	switch v {
	case VerdictSafe:
		return 0
	case VerdictLowRisk:
		return 1
	case VerdictMediumRisk:
		return 2
	case VerdictHighRisk:
		return 3
	case VerdictCritical:
		return 4
	default:
		return -1
	}
}

// SupportingEvidence is a condensed excerpt of one of the riskiest evidence items.
type SupportingEvidence struct {
	Type     EvidenceType `json:"type"`
	Severity Severity     `json:"severity"`
	Snippet  string       `json:"snippet"`
}

// Assessment is the analysis result returned to the caller. Once built it is
// treated as immutable; use WithSummary to derive a variant.
type Assessment struct {
	// RiskScore is in [0, 100].
	RiskScore int     `json:"risk_score"`
	Verdict   Verdict `json:"verdict"`
	Summary   string  `json:"summary"`

	Explanation        []string             `json:"explanation"`
	Recommendations    []string             `json:"recommendations"`
	SupportingEvidence []SupportingEvidence `json:"supporting_evidence"`
}

// WithSummary returns a copy of a with its summary replaced. The slices are
// copied so the two values share no backing arrays.
func (a *Assessment) WithSummary(summary string) *Assessment {
	out := &Assessment{
		RiskScore:          a.RiskScore,
		Verdict:            a.Verdict,
		Summary:            summary,
		Explanation:        append([]string{}, a.Explanation...),
		Recommendations:    append([]string{}, a.Recommendations...),
		SupportingEvidence: append([]SupportingEvidence{}, a.SupportingEvidence...),
	}
	return out
}
