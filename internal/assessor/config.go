package assessor

// Config holds runtime settings for the assessor. Keep small; the weight
// tables themselves are fixed.
type Config struct {
	// ScoringVersion identifies the weighting model in logs and status output.
	ScoringVersion string `json:"scoring_version"`
}

// DefaultConfig returns the configuration of the current weighting model.
func DefaultConfig() Config {
	return Config{ScoringVersion: "heuristics-v1"}
}
