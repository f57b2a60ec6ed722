package server

import (
	"github.com/raysh454/xssrisk/internal/model"
)

// AnalyzeRequest is the evidence report submitted for analysis. Top-level
// keys are pointers so that a missing key is reported as a schema violation.
type AnalyzeRequest struct {
	Metadata *model.ReportMetadata `json:"metadata"`
	Evidence *[]model.Evidence     `json:"evidence"`
}

// Report converts the request into a validated-ready model.Report.
func (r *AnalyzeRequest) Report() (*model.Report, error) {
	ve := &model.ValidationError{}
	if r.Metadata == nil {
		ve.Add("metadata", "field required")
	}
	if r.Evidence == nil {
		ve.Add("evidence", "field required")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}
	return &model.Report{Metadata: *r.Metadata, Evidence: *r.Evidence}, nil
}

// DiffRequest carries the two reports to compare.
type DiffRequest struct {
	Base *AnalyzeRequest `json:"base"`
	Head *AnalyzeRequest `json:"head"`
}

// Reports converts both sides, reporting missing sides as schema violations.
func (r *DiffRequest) Reports() (base, head *model.Report, err error) {
	ve := &model.ValidationError{}
	if r.Base == nil {
		ve.Add("base", "field required")
	}
	if r.Head == nil {
		ve.Add("head", "field required")
	}
	if err := ve.Err(); err != nil {
		return nil, nil, err
	}
	if base, err = r.Base.Report(); err != nil {
		return nil, nil, err
	}
	if head, err = r.Head.Report(); err != nil {
		return nil, nil, err
	}
	return base, head, nil
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"metadata.url: field required"`
}
