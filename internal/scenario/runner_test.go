package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const basicScenario = `name: hedging-basics
cases:
  - text: "the rumor is spreading"
    expect: reject
    signal: word_indicator
    token: rumor
  - text: "a plain confident statement"
    expect: accept
  - text: "it could be true"
    expect: reject
    signal: uncertainty_budget
`

func TestLoadAndRunPasses(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "basic.yaml", basicScenario)

	r, err := LoadAndRun(path, filepath.Join(dir, "absent-rules.yaml"))
	if err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	if r.Failed != 0 {
		t.Fatalf("expected all cases to pass: %+v", r.Cases)
	}
	if r.Total != 3 || r.Passed != 3 {
		t.Errorf("unexpected counts: %+v", r)
	}
	if r.Name != "hedging-basics" {
		t.Errorf("unexpected name %q", r.Name)
	}
}

func TestWrongExpectationFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `name: bad
cases:
  - text: "the rumor is spreading"
    expect: accept
`)

	r, err := LoadAndRun(path, filepath.Join(dir, "absent-rules.yaml"))
	if err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	if r.Failed != 1 {
		t.Errorf("expected one failed case, got %d", r.Failed)
	}
	if r.Cases[0].Actual != "reject" {
		t.Errorf("expected actual reject, got %s", r.Cases[0].Actual)
	}
}

func TestSignalMismatchFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sig.yaml", `name: sig
cases:
  - text: "the rumor is spreading"
    expect: reject
    signal: uncertainty_budget
`)

	r, err := LoadAndRun(path, filepath.Join(dir, "absent-rules.yaml"))
	if err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	if r.Failed != 1 {
		t.Fatal("expected signal mismatch to fail the case")
	}
	if !strings.Contains(r.Cases[0].Detail, "expected signal") {
		t.Errorf("expected detail to explain mismatch, got %q", r.Cases[0].Detail)
	}
}

func TestScenarioRulesFieldWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rules.yaml", "words:\n  - banana\nuncertainty: []\nphrases: []\n")
	path := writeFile(t, dir, "scoped.yaml", `name: scoped
rules: rules.yaml
cases:
  - text: "banana bread"
    expect: reject
    signal: word_indicator
  - text: "the rumor is spreading"
    expect: accept
`)

	r, err := LoadAndRun(path, "")
	if err != nil {
		t.Fatalf("LoadAndRun: %v", err)
	}
	if r.Failed != 0 {
		t.Fatalf("expected scenario-local rules to apply: %+v", r.Cases)
	}
}

func TestInvalidExpectRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", `name: bad
cases:
  - text: "x"
    expect: flag
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid expect value")
	}
}

func TestEmptyScenarioRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "name: empty\ncases: []\n")

	if _, err := Load(path); err == nil {
		t.Error("expected error for empty scenario")
	}
}

func TestFormatText(t *testing.T) {
	results := []*RunResult{
		{Name: "ok", Total: 2, Passed: 2},
		{Name: "broken", Total: 1, Failed: 1, Cases: []CaseResult{
			{Index: 0, Text: "x", Expected: "accept", Actual: "reject"},
		}},
	}

	out := FormatText(results)
	if !strings.Contains(out, "PASS  ok") {
		t.Errorf("missing pass line: %q", out)
	}
	if !strings.Contains(out, "FAIL  broken") {
		t.Errorf("missing fail line: %q", out)
	}
	if !strings.Contains(out, "2 of 3 cases passed") {
		t.Errorf("missing summary: %q", out)
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON([]*RunResult{{Name: "ok", Total: 1, Passed: 1}})
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(out, `"name": "ok"`) {
		t.Errorf("unexpected JSON: %s", out)
	}
}
