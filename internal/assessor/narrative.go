package assessor

import (
	"fmt"
	"strings"

	"github.com/raysh454/xssrisk/internal/model"
)

type categoryText struct {
	Category model.Category
	Text     string
}

// categoryExplanations are appended in this order, once per present category.
var categoryExplanations = []categoryText{
	{model.CategoryDynamicCode, "Dynamic code execution via eval() or Function() constructor detected - highest XSS risk."},
	{model.CategoryProtocolURL, "JavaScript protocol URLs found - can execute arbitrary code when clicked."},
	{model.CategoryDirectMarkupWrite, "document.write() usage detected - can be exploited for injection attacks."},
	{model.CategoryMarkupPropertySet, "Direct HTML manipulation detected - potential for script injection if user input is involved."},
}

// categoryRemediations are appended in this order, once per present category.
var categoryRemediations = []categoryText{
	{model.CategoryDynamicCode, "Eliminate use of eval() and Function() constructor. Use safer alternatives like JSON.parse() for data."},
	{model.CategoryProtocolURL, "Replace javascript: protocol URLs with proper event handlers or data attributes."},
	{model.CategoryMarkupPropertySet, "Use textContent or safer DOM methods. If HTML is required, sanitize with DOMPurify or similar library."},
	{model.CategoryInlineEventHandler, "Replace inline event handlers with addEventListener() to follow CSP best practices."},
	{model.CategoryDirectMarkupWrite, "Avoid document.write(). Use modern DOM manipulation methods instead."},
}

// standingRecommendations close every recommendation list.
var standingRecommendations = []string{
	"Implement Content Security Policy (CSP) to prevent inline script execution.",
	"Validate and sanitize all user inputs on both client and server side.",
	"Use framework-provided safe rendering methods (e.g., React's JSX, Vue templates).",
}

// StandingRecommendations returns a copy of the recommendations every
// assessment ends with.
func StandingRecommendations() []string {
	return append([]string{}, standingRecommendations...)
}

func buildExplanation(t Tally) []string {
	out := make([]string, 0, 7)
	if n := t.SeverityCounts[model.SeverityHigh]; n > 0 {
		out = append(out, fmt.Sprintf("Found %d high-severity evidence items indicating dangerous JavaScript execution patterns.", n))
	}
	if n := t.SeverityCounts[model.SeverityMedium]; n > 0 {
		out = append(out, fmt.Sprintf("Detected %d medium-severity signals that could enable DOM manipulation attacks.", n))
	}
	if n := t.SeverityCounts[model.SeverityLow]; n > 0 {
		out = append(out, fmt.Sprintf("Identified %d low-severity indicators worth monitoring.", n))
	}
	for _, ce := range categoryExplanations {
		if t.HasCategory(ce.Category) {
			out = append(out, ce.Text)
		}
	}
	return out
}

func buildRecommendations(t Tally) []string {
	out := make([]string, 0, len(categoryRemediations)+len(standingRecommendations))
	seen := make(map[string]struct{})
	add := func(s string) {
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, cr := range categoryRemediations {
		if t.HasCategory(cr.Category) {
			add(cr.Text)
		}
	}
	for _, s := range standingRecommendations {
		add(s)
	}
	return out
}

func buildSummary(evidenceCount int, url string, score int, verdict model.Verdict, highCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis of %d evidence items from %s. ", evidenceCount, url)
	fmt.Fprintf(&b, "Risk Score: %d/100. ", score)
	fmt.Fprintf(&b, "Verdict: %s.", verdict)
	if highCount > 0 {
		fmt.Fprintf(&b, " Critical: %d high-severity issues require immediate attention.", highCount)
	}
	return b.String()
}
