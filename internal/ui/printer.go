package ui

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/raysh454/xssrisk/internal/model"
)

func verdictStyle(v model.Verdict) string {
	switch v {
	case model.VerdictCritical:
		return pterm.FgRed.Sprint("CRITICAL")
	case model.VerdictHighRisk:
		return pterm.FgRed.Sprint("HIGH RISK")
	case model.VerdictMediumRisk:
		return pterm.FgYellow.Sprint("MEDIUM RISK")
	case model.VerdictLowRisk:
		return pterm.FgBlue.Sprint("LOW RISK")
	default:
		return pterm.FgGreen.Sprint("SAFE")
	}
}

// PrintAssessment renders an assessment for a terminal.
func PrintAssessment(w io.Writer, a *model.Assessment) error {
	fmt.Fprint(w, pterm.DefaultSection.Sprint("Assessment"))
	fmt.Fprintf(w, "Risk score: %s/100  Verdict: %s\n\n",
		pterm.Bold.Sprint(strconv.Itoa(a.RiskScore)), verdictStyle(a.Verdict))
	fmt.Fprintln(w, a.Summary)
	fmt.Fprintln(w)

	if len(a.Explanation) > 0 {
		fmt.Fprint(w, pterm.Warning.Sprintln("Findings:"))
		for _, e := range a.Explanation {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		fmt.Fprintln(w)
	}

	if len(a.SupportingEvidence) > 0 {
		data := [][]string{{"Severity", "Type", "Snippet"}}
		for _, ev := range a.SupportingEvidence {
			data = append(data, []string{
				severityStyle(ev.Severity),
				pterm.FgCyan.Sprint(ev.Type.String()),
				ev.Snippet,
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("rendering evidence table: %w", err)
		}
		fmt.Fprintln(w, table)
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, pterm.Info.Sprintln("Recommendations:"))
	for _, r := range a.Recommendations {
		fmt.Fprintf(w, "  - %s\n", r)
	}
	return nil
}

func severityStyle(s model.Severity) string {
	switch s {
	case model.SeverityHigh:
		return pterm.FgRed.Sprint("HIGH")
	case model.SeverityMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	case model.SeverityLow:
		return pterm.FgBlue.Sprint("LOW")
	default:
		return s.String()
	}
}

// PrintDiff renders an assessment diff for a terminal.
func PrintDiff(w io.Writer, d *model.AssessmentDiff) error {
	fmt.Fprint(w, pterm.DefaultSection.Sprint("Assessment diff"))
	if !d.SamePage {
		fmt.Fprint(w, pterm.Warning.Sprintf("Comparing different pages: %s -> %s\n", d.URLBase, d.URLHead))
	}
	fmt.Fprintf(w, "Score: %d -> %d (%+d)\n", d.ScoreBase, d.ScoreHead, d.ScoreDelta)
	fmt.Fprintf(w, "Verdict: %s -> %s\n\n", verdictStyle(d.VerdictBase), verdictStyle(d.VerdictHead))

	if len(d.TypeCountDeltas) > 0 {
		types := make([]string, 0, len(d.TypeCountDeltas))
		for t := range d.TypeCountDeltas {
			types = append(types, string(t))
		}
		sort.Strings(types)

		data := [][]string{{"Evidence type", "Delta"}}
		for _, t := range types {
			delta := d.TypeCountDeltas[model.EvidenceType(t)]
			cell := fmt.Sprintf("%+d", delta)
			if delta > 0 {
				cell = pterm.FgRed.Sprint(cell)
			} else {
				cell = pterm.FgGreen.Sprint(cell)
			}
			data = append(data, []string{t, cell})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("rendering delta table: %w", err)
		}
		fmt.Fprintln(w, table)
		fmt.Fprintln(w)
	}

	printLines(w, "+", d.ExplanationAdded)
	printLines(w, "-", d.ExplanationRemoved)
	printLines(w, "+", d.RecommendationsAdded)
	printLines(w, "-", d.RecommendationsRemoved)
	return nil
}

func printLines(w io.Writer, marker string, lines []string) {
	for _, l := range lines {
		if marker == "+" {
			fmt.Fprintln(w, pterm.FgRed.Sprint(marker+" "+l))
		} else {
			fmt.Fprintln(w, pterm.FgGreen.Sprint(marker+" "+l))
		}
	}
}
