package model

// DiffChunk is one changed run of text between two summaries.
type DiffChunk struct {
	Type    string `json:"type"` // "added" | "removed"
	Content string `json:"content"`
}

// AssessmentDiff explains how the heuristic assessment of a page changed
// between two reports (base = before, head = after).
type AssessmentDiff struct {
	URLBase string `json:"url_base"`
	URLHead string `json:"url_head"`

	// SamePage is false when the two reports were collected on different pages.
	SamePage bool `json:"same_page"`

	ScoreBase  int `json:"score_base"`
	ScoreHead  int `json:"score_head"`
	ScoreDelta int `json:"score_delta"`

	VerdictBase    Verdict `json:"verdict_base"`
	VerdictHead    Verdict `json:"verdict_head"`
	VerdictChanged bool    `json:"verdict_changed"`

	// TypeCountDeltas: evidence type -> (head count - base count), zero deltas omitted.
	TypeCountDeltas map[EvidenceType]int `json:"type_count_deltas"`

	ExplanationAdded       []string `json:"explanation_added"`
	ExplanationRemoved     []string `json:"explanation_removed"`
	RecommendationsAdded   []string `json:"recommendations_added"`
	RecommendationsRemoved []string `json:"recommendations_removed"`

	SummaryChanges []DiffChunk `json:"summary_changes"`
}
