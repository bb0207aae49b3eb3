// Package mcp exposes the classifier as MCP tools over stdio, so agent
// frameworks can gate their own output without linking the SDK.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/hedgegate/internal/audit"
	"github.com/ppiankov/hedgegate/internal/classify"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

// Config holds MCP server configuration.
type Config struct {
	RulesPath    string
	AuditLogPath string
	SessionID    string
}

// Server wraps the MCP SDK server around a loaded rule set. Rules can be
// hot-swapped by a Reloader; classification calls take a read lock.
type Server struct {
	mcpServer *mcpsdk.Server
	auditLog  *audit.Log
	sessionID string
	rulesPath string

	mu        sync.RWMutex
	cfg       *classify.Config
	rulesHash string
}

// New creates an MCP server with loaded rules and registered tools.
func New(cfg Config) (*Server, error) {
	rules, hash, err := ruleset.LoadWithHash(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = audit.NewSessionID()
	}

	var auditLog *audit.Log
	if cfg.AuditLogPath != "" {
		auditLog, err = audit.Open(cfg.AuditLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit log: %w", err)
		}
	}

	s := &Server{
		auditLog:  auditLog,
		sessionID: sessionID,
		rulesPath: cfg.RulesPath,
		cfg:       rules,
		rulesHash: hash,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "hedgegate",
			Version: "0.1.0",
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// registerTools adds all hedgegate tools to the MCP server.
func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hedgegate_classify",
		Description: "Classify one text for hedging, secondhand framing, and contradictory certainty. Returns accept/reject with the rule layer that decided.",
	}, s.handleClassify)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hedgegate_batch",
		Description: "Classify several texts in one call. Each text is evaluated independently.",
	}, s.handleBatch)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hedgegate_rules",
		Description: "Return the active rule set and its hash.",
	}, s.handleRules)
}

// Run starts the MCP server on stdio transport. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close closes the audit log if configured.
func (s *Server) Close() error {
	if s.auditLog != nil {
		return s.auditLog.Close()
	}
	return nil
}

// ReloadRules re-reads the rules file and swaps the active config. A bad
// file leaves the previous rules in place and returns the error.
func (s *Server) ReloadRules() error {
	rules, hash, err := ruleset.LoadWithHash(s.rulesPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = rules
	s.rulesHash = hash
	s.mu.Unlock()
	return nil
}

// snapshot returns the active config and hash under the read lock.
func (s *Server) snapshot() (*classify.Config, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.rulesHash
}

func (s *Server) recordAudit(text string, result classify.Result, rulesHash string) {
	if s.auditLog == nil {
		return
	}
	entry := audit.Entry{
		SessionID:    s.sessionID,
		TextHash:     audit.HashText(text),
		TextBytes:    len(text),
		Accepted:     result.Accepted,
		Signal:       string(result.Signal),
		MatchedToken: result.MatchedToken,
		Score:        result.Score,
		RulesHash:    rulesHash,
	}
	// Audit failure must not fail the tool call; the decision stands.
	_ = s.auditLog.Record(entry)
}
