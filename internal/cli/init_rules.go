package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ppiankov/hedgegate/internal/ruleset"
)

var initRulesPath string

func init() {
	rootCmd.AddCommand(initRulesCmd)
	initRulesCmd.Flags().StringVar(&initRulesPath, "path", "", "Destination (default ~/.hedgegate/rules.yaml)")
}

var initRulesCmd = &cobra.Command{
	Use:   "init-rules",
	Short: "Generate default rules.yaml with comments",
	Long:  "Creates ~/.hedgegate/rules.yaml with default thresholds and indicator lists.\nEdit this file to customize classification behavior.",
	RunE:  runInitRules,
}

func runInitRules(cmd *cobra.Command, args []string) error {
	path := initRulesPath
	if path == "" {
		path = ruleset.DefaultPath()
		if path == "" {
			return fmt.Errorf("cannot determine home directory; use --path")
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("rules file already exists at %s", path)
	}

	if err := os.WriteFile(path, []byte(ruleset.DefaultRulesYAML()), 0644); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
