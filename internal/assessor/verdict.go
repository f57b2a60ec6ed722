package assessor

import "github.com/raysh454/xssrisk/internal/model"

// verdictThreshold maps an inclusive minimum score to a verdict.
type verdictThreshold struct {
	MinScore int
	Verdict  model.Verdict
}

// verdictThresholds is evaluated top-down; the first match wins.
var verdictThresholds = []verdictThreshold{
	{80, model.VerdictCritical},
	{60, model.VerdictHighRisk},
	{30, model.VerdictMediumRisk},
	{10, model.VerdictLowRisk},
}

// VerdictFor maps a risk score to its verdict.
func VerdictFor(score int) model.Verdict {
	for _, t := range verdictThresholds {
		if score >= t.MinScore {
			return t.Verdict
		}
	}
	return model.VerdictSafe
}
