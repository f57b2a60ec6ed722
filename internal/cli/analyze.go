package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raysh454/xssrisk/internal/app"
	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/server"
	"github.com/raysh454/xssrisk/internal/ui"
)

func newAnalyzeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze [report.json]",
		Short:   "Assess a single evidence report",
		Example: "xssrisk analyze report.json --json\ncat report.json | xssrisk analyze",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, v, args)
		},
	}
	cmd.Flags().Bool("json", false, "Print the assessment as JSON")
	return cmd
}

func runAnalyze(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, logger, err := loadRuntime(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	report, err := readReport(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	analyzer, err := app.NewAnalyzer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}
	res, err := analyzer.Analyze(cmd.Context(), report)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeIndented(cmd.OutOrStdout(), res)
	}
	return ui.PrintAssessment(cmd.OutOrStdout(), res)
}

func newDiffCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diff <base.json> <head.json>",
		Short:   "Compare the assessments of two evidence reports",
		Example: "xssrisk diff before.json after.json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, v, args)
		},
	}
	cmd.Flags().Bool("json", false, "Print the diff as JSON")
	return cmd
}

func runDiff(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, logger, err := loadRuntime(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	base, err := readReport(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	head, err := readReport(cmd.InOrStdin(), args[1])
	if err != nil {
		return err
	}

	analyzer, err := app.NewAnalyzer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}
	d, err := analyzer.Diff(cmd.Context(), base, head)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeIndented(cmd.OutOrStdout(), d)
	}
	return ui.PrintDiff(cmd.OutOrStdout(), d)
}

// readReport decodes a report from path, or from stdin when path is "-".
func readReport(stdin io.Reader, path string) (*model.Report, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening report: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req server.AnalyzeRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", path, err)
	}
	return req.Report()
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
