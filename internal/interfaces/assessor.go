package interfaces

import "github.com/raysh454/xssrisk/internal/model"

// Assessor is the cross-package contract for the heuristic scoring engine.
// Implementations are pure: no I/O, no shared mutable state, same input
// always yields the same Assessment.
type Assessor interface {
	// Assess scores a report. It never fails for a schema-valid report.
	Assess(report *model.Report) *model.Assessment

	// Diff compares the heuristic assessments of two reports.
	Diff(base, head *model.Report) *model.AssessmentDiff
}
