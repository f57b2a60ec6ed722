package assessor

import "github.com/raysh454/xssrisk/internal/model"

// severityWeights maps severity tiers to base points. Unknown tiers score 0.
var severityWeights = map[model.Severity]float64{
	model.SeverityHigh:   15,
	model.SeverityMedium: 8,
	model.SeverityLow:    3,
}

// typeMultipliers amplify the severity weight by how exploitable the
// behaviour usually is. Unknown types are neutral (1.0).
var typeMultipliers = map[model.EvidenceType]float64{
	model.TypeEvalCall:            2.0,
	model.TypeFunctionConstructor: 2.0,
	model.TypeJavascriptProtocol:  1.8,
	model.TypeSetTimeoutString:    1.5,
	model.TypeSetIntervalString:   1.5,
	model.TypeDocumentWrite:       1.3,
	model.TypeInnerHTMLSet:        1.2,
	model.TypeOuterHTMLSet:        1.2,
	model.TypeInsertAdjacentHTML:  1.2,
	model.TypeInlineEventHandler:  1.0,
	model.TypeInlineScript:        0.5,
}

const defaultTypeMultiplier = 1.0

// SeverityWeight returns the base points for s, falling back to 0.
func SeverityWeight(s model.Severity) float64 {
	if w, ok := severityWeights[s]; ok {
		return w
	}
	return 0
}

// TypeMultiplier returns the amplification factor for t, falling back to 1.0.
func TypeMultiplier(t model.EvidenceType) float64 {
	if m, ok := typeMultipliers[t]; ok {
		return m
	}
	return defaultTypeMultiplier
}

// Contribution is the score contribution of a single evidence item.
func Contribution(ev model.Evidence) float64 {
	return SeverityWeight(ev.Severity) * TypeMultiplier(ev.Type)
}
