package assessor

import (
	"errors"

	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/logging"
	"github.com/raysh454/xssrisk/internal/model"
)

// HeuristicsAssessor is the deterministic weighting model behind every
// assessment. It holds no mutable state and is safe for concurrent use.
type HeuristicsAssessor struct {
	cfg    Config
	logger logging.Logger
}

var _ interfaces.Assessor = (*HeuristicsAssessor)(nil)

// NewHeuristicsAssessor constructs the heuristics assessor.
func NewHeuristicsAssessor(cfg Config, logger logging.Logger) (*HeuristicsAssessor, error) {
	if logger == nil {
		return nil, errors.New("assessor: nil logger")
	}
	if cfg.ScoringVersion == "" {
		cfg.ScoringVersion = DefaultConfig().ScoringVersion
	}

	l := logger.With(logging.Field{Key: "component", Value: "heuristics-assessor"})
	l.Info("heuristics assessor constructed", logging.Field{Key: "scoring_version", Value: cfg.ScoringVersion})

	return &HeuristicsAssessor{cfg: cfg, logger: l}, nil
}

// ScoringVersion identifies the weighting model.
func (h *HeuristicsAssessor) ScoringVersion() string {
	return h.cfg.ScoringVersion
}

// Assess scores a report. A nil report is treated as an empty one.
func (h *HeuristicsAssessor) Assess(report *model.Report) *model.Assessment {
	return Assess(report)
}

// Diff compares the heuristic assessments of two reports.
func (h *HeuristicsAssessor) Diff(base, head *model.Report) *model.AssessmentDiff {
	return Diff(base, head)
}

// Assess is the pure scoring function: tally, clamp, threshold, then derive
// the narrative fields from the evidence composition.
func Assess(report *model.Report) *model.Assessment {
	if report == nil {
		report = &model.Report{}
	}

	t := TallyEvidence(report.Evidence)
	score := t.Score()
	verdict := VerdictFor(score)

	return &model.Assessment{
		RiskScore:          score,
		Verdict:            verdict,
		Summary:            buildSummary(len(report.Evidence), report.Metadata.URL, score, verdict, t.SeverityCounts[model.SeverityHigh]),
		Explanation:        buildExplanation(t),
		Recommendations:    buildRecommendations(t),
		SupportingEvidence: selectSupporting(report.Evidence),
	}
}
