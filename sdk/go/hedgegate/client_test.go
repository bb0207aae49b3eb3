package hedgegate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append(opts, WithRules(filepath.Join(t.TempDir(), "absent.yaml")))
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestClassifyAccepts(t *testing.T) {
	c := newTestClient(t)

	r, err := c.Classify("a plain confident statement")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !r.Accepted {
		t.Errorf("expected acceptance, got %s", r.Signal)
	}
	if r.Signal != SignalNone {
		t.Errorf("expected signal none, got %s", r.Signal)
	}
}

func TestClassifyRejectsWithSignal(t *testing.T) {
	c := newTestClient(t)

	r, err := c.Classify("it could be true")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if r.Accepted {
		t.Error("expected rejection")
	}
	if r.Signal != SignalUncertaintyBudget {
		t.Errorf("expected uncertainty_budget, got %s", r.Signal)
	}
}

func TestRequireReturnsTypedError(t *testing.T) {
	c := newTestClient(t)

	err := c.Require("the rumor is spreading")
	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rejected.Signal != SignalWordIndicator {
		t.Errorf("expected word_indicator, got %s", rejected.Signal)
	}

	if err := c.Require("a plain confident statement"); err != nil {
		t.Errorf("expected nil for clean text, got %v", err)
	}
}

func TestStatsTrackSession(t *testing.T) {
	c := newTestClient(t, WithSessionID("s-sdk"))

	c.Classify("a plain confident statement")
	c.Classify("pure gossip")

	stats := c.Stats()
	if stats.SessionID != "s-sdk" {
		t.Errorf("unexpected session id %q", stats.SessionID)
	}
	if stats.Evaluated != 2 || stats.Rejected != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestInvalidRulesFailConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	os.WriteFile(path, []byte("threshold: -1\n"), 0644)

	if _, err := New(WithRules(path)); err == nil {
		t.Error("expected construction error for invalid rules")
	}
}
