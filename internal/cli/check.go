package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/hedgegate/internal/scenario"
)

var (
	checkScenario string
	checkRules    string
	checkFormat   string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkScenario, "scenario", "", "Glob pattern for scenario YAML files (required)")
	checkCmd.Flags().StringVar(&checkRules, "rules", "", "Path to rules YAML (optional)")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "Output format (text|json)")
	checkCmd.MarkFlagRequired("scenario")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run classifier assertions from scenario files",
	Long: "Loads scenario YAML files matching a glob pattern, classifies each case,\n" +
		"and reports pass/fail.\n\n" +
		"Exit code 0 if all cases pass, 1 if any fail.\n" +
		"Use in CI to gate rule file changes.",
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	matches, err := filepath.Glob(checkScenario)
	if err != nil {
		return fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no scenario files match pattern: %s", checkScenario)
	}

	var results []*scenario.RunResult
	anyFailed := false
	for _, path := range matches {
		r, err := scenario.LoadAndRun(path, checkRules)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if r.Failed > 0 {
			anyFailed = true
		}
		results = append(results, r)
	}

	switch checkFormat {
	case "json":
		out, err := scenario.FormatJSON(results)
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "text":
		fmt.Print(scenario.FormatText(results))
	default:
		return fmt.Errorf("unknown format %q (use text or json)", checkFormat)
	}

	if anyFailed {
		os.Exit(1)
	}
	return nil
}
