// Package gate wraps the classifier for host applications. The classifier
// itself is pure and stateless; the gate owns the per-session bookkeeping
// a host needs around it — violation counts, a monotonically escalating
// session level, and audit recording.
package gate

import (
	"fmt"
	"sync"

	"github.com/ppiankov/hedgegate/internal/audit"
	"github.com/ppiankov/hedgegate/internal/classify"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

// Level is the escalation state of a session.
type Level int

const (
	LevelClean Level = iota
	LevelFlagged
	LevelQuarantined
)

// Escalation boundaries: first rejection flags a session, the third
// quarantines it.
const (
	flaggedAt     = 1
	quarantinedAt = 3
)

// Label returns a human-readable name for a level.
func (l Level) Label() string {
	switch l {
	case LevelClean:
		return "clean"
	case LevelFlagged:
		return "flagged"
	case LevelQuarantined:
		return "quarantined"
	default:
		return "unknown"
	}
}

// Config holds gate configuration.
type Config struct {
	RulesPath    string
	AuditLogPath string
	SessionID    string
}

// Stats is a snapshot of session bookkeeping.
type Stats struct {
	SessionID string `json:"session_id"`
	Evaluated int    `json:"evaluated"`
	Rejected  int    `json:"rejected"`
	Level     string `json:"level"`
	RulesHash string `json:"rules_hash"`
}

// RejectedError is returned by Require when text fails classification.
type RejectedError struct {
	Signal       classify.Signal
	MatchedToken string
	Score        float64
}

func (e *RejectedError) Error() string {
	if e.MatchedToken != "" {
		return fmt.Sprintf("text rejected (%s): matched %q", e.Signal, e.MatchedToken)
	}
	return fmt.Sprintf("text rejected (%s)", e.Signal)
}

// Gate evaluates texts against a loaded rule set on behalf of one session.
// Safe for concurrent use.
type Gate struct {
	cfg       *classify.Config
	rulesHash string
	auditLog  *audit.Log
	sessionID string

	mu        sync.Mutex
	evaluated int
	rejected  int
	level     Level
}

// New creates a Gate with loaded rules and an optional audit log.
func New(cfg Config) (*Gate, error) {
	rules, hash, err := ruleset.LoadWithHash(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("gate: load rules: %w", err)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = audit.NewSessionID()
	}

	var log *audit.Log
	if cfg.AuditLogPath != "" {
		log, err = audit.Open(cfg.AuditLogPath)
		if err != nil {
			return nil, fmt.Errorf("gate: open audit log: %w", err)
		}
	}

	return &Gate{
		cfg:       rules,
		rulesHash: hash,
		auditLog:  log,
		sessionID: sessionID,
	}, nil
}

// Evaluate classifies text, records the decision, and updates session
// state. Rejections are reported in the Result, not as errors; the only
// error paths are the input size cap and audit write failures.
func (g *Gate) Evaluate(text string) (classify.Result, error) {
	result, err := classify.Classify(text, g.cfg)
	if err != nil {
		return classify.Result{}, err
	}

	g.mu.Lock()
	g.evaluated++
	if !result.Accepted {
		g.rejected++
	}
	g.escalateLocked()
	g.mu.Unlock()

	if g.auditLog != nil {
		entry := audit.Entry{
			SessionID:    g.sessionID,
			TextHash:     audit.HashText(text),
			TextBytes:    len(text),
			Accepted:     result.Accepted,
			Signal:       string(result.Signal),
			MatchedToken: result.MatchedToken,
			Score:        result.Score,
			RulesHash:    g.rulesHash,
		}
		if err := g.auditLog.Record(entry); err != nil {
			return result, fmt.Errorf("gate: record audit: %w", err)
		}
	}

	return result, nil
}

// Require classifies text and converts a rejection into a *RejectedError.
// Intended for middleware-style callers that treat rejection as a refusal.
func (g *Gate) Require(text string) error {
	result, err := g.Evaluate(text)
	if err != nil {
		return err
	}
	if !result.Accepted {
		return &RejectedError{
			Signal:       result.Signal,
			MatchedToken: result.MatchedToken,
			Score:        result.Score,
		}
	}
	return nil
}

// escalateLocked recomputes the session level from the rejection count.
// Levels only go up; a run of clean texts never un-flags a session.
func (g *Gate) escalateLocked() {
	level := LevelClean
	switch {
	case g.rejected >= quarantinedAt:
		level = LevelQuarantined
	case g.rejected >= flaggedAt:
		level = LevelFlagged
	}
	if level > g.level {
		g.level = level
	}
}

// Quarantined reports whether the session has crossed the quarantine
// boundary. Hosts decide what to do about it.
func (g *Gate) Quarantined() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level >= LevelQuarantined
}

// Stats returns a snapshot of session bookkeeping.
func (g *Gate) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Stats{
		SessionID: g.sessionID,
		Evaluated: g.evaluated,
		Rejected:  g.rejected,
		Level:     g.level.Label(),
		RulesHash: g.rulesHash,
	}
}

// Close closes the audit log if one is open.
func (g *Gate) Close() error {
	if g.auditLog != nil {
		return g.auditLog.Close()
	}
	return nil
}
