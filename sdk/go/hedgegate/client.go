package hedgegate

import (
	"errors"
	"fmt"

	"github.com/ppiankov/hedgegate/internal/gate"
)

// Client classifies text in-process. Thread-safe for concurrent calls.
type Client struct {
	cfg clientConfig
	g   *gate.Gate
}

// New creates a Client with the given options. Rules load once at
// construction; an invalid rules file fails here, never at classify time.
func New(opts ...Option) (*Client, error) {
	var cfg clientConfig
	for _, o := range opts {
		o(&cfg)
	}

	g, err := gate.New(gate.Config{
		RulesPath:    cfg.rulesPath,
		AuditLogPath: cfg.auditLogPath,
		SessionID:    cfg.sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("hedgegate: %w", err)
	}

	return &Client{cfg: cfg, g: g}, nil
}

// Classify evaluates one text. Rejections are reported in the Result, not
// as errors.
func (c *Client) Classify(text string) (Result, error) {
	r, err := c.g.Evaluate(text)
	if err != nil {
		return Result{}, err
	}
	return toResult(r), nil
}

// Require evaluates one text and returns a *RejectedError if it fails.
func (c *Client) Require(text string) error {
	err := c.g.Require(text)
	if err == nil {
		return nil
	}
	var rejected *gate.RejectedError
	if errors.As(err, &rejected) {
		return &RejectedError{
			Signal:       Signal(rejected.Signal),
			MatchedToken: rejected.MatchedToken,
			Score:        rejected.Score,
		}
	}
	return err
}

// Stats returns session bookkeeping: texts evaluated, rejections, and the
// escalation level.
func (c *Client) Stats() Stats {
	s := c.g.Stats()
	return Stats{
		SessionID: s.SessionID,
		Evaluated: s.Evaluated,
		Rejected:  s.Rejected,
		Level:     s.Level,
		RulesHash: s.RulesHash,
	}
}

// Close releases the audit log if one is open.
func (c *Client) Close() error {
	return c.g.Close()
}
