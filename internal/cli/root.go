package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hedgegate",
	Short: "Confidence gate for agent text pipelines",
	Long:  "Flags text that leans on banned claims, secondhand framing, excessive hedging,\nor self-contradictory certainty — and reports which rule layer made the call.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
