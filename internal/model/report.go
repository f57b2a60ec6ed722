package model

import (
	"errors"
	"fmt"
	"strings"
)

// ReportMetadata describes where a report came from. RiskLevel and RiskScore
// are the collector's own pre-assessment and are advisory only.
type ReportMetadata struct {
	URL           string `json:"url"`
	Timestamp     string `json:"timestamp"`
	EvidenceCount int    `json:"evidenceCount"`
	RiskLevel     string `json:"riskLevel"`
	RiskScore     int    `json:"riskScore"`
}

// Report is the unit of analysis submitted by a collector.
type Report struct {
	Metadata ReportMetadata `json:"metadata"`
	Evidence []Evidence     `json:"evidence"`
}

// FieldError is a single schema violation at a JSON path.
type FieldError struct {
	Path string
	Msg  string
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Msg
}

// ValidationError aggregates every schema violation found in a report.
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return "invalid report: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual field errors to errors.Is/As.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f)
	}
	return out
}

// Add records a violation at path.
func (e *ValidationError) Add(path, format string, args ...any) {
	e.Fields = append(e.Fields, &FieldError{Path: path, Msg: fmt.Sprintf(format, args...)})
}

// Err returns e when it holds at least one violation, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidationError reports whether err carries a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validate checks the fields the engine and the adapter rely on. Unknown
// evidence types and severities are accepted; they score with default weights.
func (r *Report) Validate() error {
	if r == nil {
		ve := &ValidationError{}
		ve.Add("$", "report is required")
		return ve
	}

	ve := &ValidationError{}
	if strings.TrimSpace(r.Metadata.URL) == "" {
		ve.Add("metadata.url", "field required")
	}
	if strings.TrimSpace(r.Metadata.Timestamp) == "" {
		ve.Add("metadata.timestamp", "field required")
	}
	if r.Metadata.EvidenceCount < 0 {
		ve.Add("metadata.evidenceCount", "must not be negative")
	}

	for i, ev := range r.Evidence {
		prefix := fmt.Sprintf("evidence[%d]", i)
		if ev.Type == "" {
			ve.Add(prefix+".type", "field required")
		}
		if ev.Severity == "" {
			ve.Add(prefix+".severity", "field required")
		}
		if ev.Time == "" {
			ve.Add(prefix+".time", "field required")
		}
		if ev.Location == nil {
			ve.Add(prefix+".location", "must be an object")
		}
	}

	return ve.Err()
}
