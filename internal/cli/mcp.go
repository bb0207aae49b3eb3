package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	hgmcp "github.com/ppiankov/hedgegate/internal/mcp"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

var (
	mcpRules string
	mcpAudit string
	mcpWatch bool
)

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringVar(&mcpRules, "rules", "", "Path to rules YAML")
	mcpCmd.Flags().StringVar(&mcpAudit, "audit-log", "", "Path to JSONL audit log (optional)")
	mcpCmd.Flags().BoolVar(&mcpWatch, "watch", false, "Hot-reload the rules file on change")
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP tool server for agent integration",
	Long:  "Runs hedgegate as an MCP (Model Context Protocol) server over stdio.\nExposes tools: classify, batch, rules.",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	srv, err := hgmcp.New(hgmcp.Config{
		RulesPath:    mcpRules,
		AuditLogPath: mcpAudit,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nShutting down MCP server...")
		cancel()
	}()

	if mcpWatch {
		watchPath := mcpRules
		if watchPath == "" {
			watchPath = ruleset.DefaultPath()
		}
		reloader, err := hgmcp.NewReloader(srv, watchPath)
		if err != nil {
			return fmt.Errorf("failed to watch rules: %w", err)
		}
		go func() {
			if err := reloader.Run(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "rules watcher stopped: %v\n", err)
			}
		}()
	}

	fmt.Fprintln(os.Stderr, "hedgegate MCP server running on stdio")
	return srv.Run(ctx)
}
