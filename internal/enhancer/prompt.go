package enhancer

import (
	"encoding/json"
	"fmt"

	"github.com/raysh454/xssrisk/internal/interfaces"
	"github.com/raysh454/xssrisk/internal/model"
)

const systemPrompt = "You are a cybersecurity expert specializing in XSS vulnerability analysis."

// excerptItem is the condensed evidence the provider sees. It is a context
// hint only; the numeric score always comes from the heuristics.
type excerptItem struct {
	Type     model.EvidenceType `json:"type"`
	Severity model.Severity     `json:"severity"`
	Snippet  string             `json:"snippet"`
}

func buildExcerpt(evidence []model.Evidence, maxItems, maxSnippet int) []excerptItem {
	n := min(len(evidence), maxItems)
	out := make([]excerptItem, 0, n)
	for _, ev := range evidence[:n] {
		snippet := []rune(ev.Snippet)
		if len(snippet) > maxSnippet {
			snippet = snippet[:maxSnippet]
		}
		out = append(out, excerptItem{Type: ev.Type, Severity: ev.Severity, Snippet: string(snippet)})
	}
	return out
}

func buildPrompt(report *model.Report, baseline *model.Assessment, cfg Config) (interfaces.Prompt, error) {
	excerpt := buildExcerpt(report.Evidence, cfg.MaxExcerptItems, cfg.MaxSnippetLen)
	sample, err := json.MarshalIndent(excerpt, "", "  ")
	if err != nil {
		return interfaces.Prompt{}, fmt.Errorf("marshal evidence excerpt: %w", err)
	}

	user := fmt.Sprintf(`You are a security expert analyzing a web page for XSS vulnerabilities.

URL: %s
Evidence Count: %d
Heuristic Risk Score: %d/100

Evidence Sample:
%s

Based on this evidence, provide:
1. A refined risk assessment (0-100)
2. A clear verdict
3. A concise summary of the security posture
4. Key explanations of identified risks
5. Actionable recommendations

Focus on practical, actionable insights.`, report.Metadata.URL, len(report.Evidence), baseline.RiskScore, sample)

	return interfaces.Prompt{
		System:      systemPrompt,
		User:        user,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, nil
}
