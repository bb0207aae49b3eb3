package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/hedgegate/internal/classify"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

var (
	classifyRules  string
	classifyFormat string
)

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyRules, "rules", "", "Path to rules YAML")
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "text", "Output format (text|json)")
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify one text and report the deciding rule layer",
	Long: "Classifies the given text (or stdin when no argument is given) against the\n" +
		"active rule set.\n\n" +
		"Exit code 0 if the text is accepted, 1 if rejected, 2 on error.",
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}

	cfg, err := ruleset.Load(classifyRules)
	if err != nil {
		return err
	}

	result, err := classify.Classify(text, cfg)
	if err != nil {
		return err
	}

	switch classifyFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "text":
		if result.Accepted {
			fmt.Println("ACCEPT")
		} else {
			fmt.Printf("REJECT  %s", result.Signal)
			if result.MatchedToken != "" {
				fmt.Printf("  (%s)", result.MatchedToken)
			}
			fmt.Println()
		}
	default:
		return fmt.Errorf("unknown format %q (use text or json)", classifyFormat)
	}

	if !result.Accepted {
		// RunE errors would print a usage line; a rejection is a result,
		// not a usage problem.
		os.Exit(1)
	}
	return nil
}
