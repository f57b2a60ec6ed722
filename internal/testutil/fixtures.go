package testutil

import "github.com/raysh454/xssrisk/internal/model"

// ─── Report fixtures ───────────────────────────────────────────────────

// SampleURL is the page URL used by the report fixtures.
const SampleURL = "https://example.com/page"

// SampleReportJSON is a single high-severity eval report. Its heuristic
// assessment is 30 / Medium Risk.
const SampleReportJSON = `{
  "metadata": {"url": "https://example.com/page", "timestamp": "2025-01-01T00:00:00Z", "evidenceCount": 1, "riskLevel": "low", "riskScore": 3},
  "evidence": [
    {"id": 1, "time": "2025-01-01T00:00:01Z", "type": "eval-call", "severity": "high", "location": {"line": 12}, "snippet": "eval(location.hash.slice(1))"}
  ]
}`

// Evidence builds a schema-valid evidence item.
func Evidence(typ model.EvidenceType, sev model.Severity, snippet string) model.Evidence {
	return model.Evidence{
		Time:     "2025-01-01T00:00:00Z",
		Type:     typ,
		Severity: sev,
		Location: map[string]any{"line": 1},
		Snippet:  snippet,
	}
}

// Report wraps evidence in schema-valid metadata for SampleURL.
func Report(evidence ...model.Evidence) *model.Report {
	if evidence == nil {
		evidence = []model.Evidence{}
	}
	return &model.Report{
		Metadata: model.ReportMetadata{
			URL:           SampleURL,
			Timestamp:     "2025-01-01T00:00:00Z",
			EvidenceCount: len(evidence),
		},
		Evidence: evidence,
	}
}
