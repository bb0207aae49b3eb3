package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/hedgegate/internal/audit"
)

var auditVerifyFormat string

func init() {
	rootCmd.AddCommand(auditVerifyCmd)
	auditVerifyCmd.Flags().StringVarP(&auditVerifyFormat, "format", "f", "text", "Output format (text|json)")
}

var auditVerifyCmd = &cobra.Command{
	Use:   "audit-verify <log-file>",
	Short: "Verify the hash chain of a JSONL audit log",
	Long: "Reads an audit log and validates that every entry's prev_hash matches\n" +
		"the hash of the preceding line.\n\n" +
		"Exit code 0 if the chain is intact, 1 if broken.",
	Args: cobra.ExactArgs(1),
	RunE: runAuditVerify,
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	result := audit.Verify(args[0])

	switch auditVerifyFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "text":
		fmt.Print(audit.FormatVerify(result))
	default:
		return fmt.Errorf("unknown format %q (use text or json)", auditVerifyFormat)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
