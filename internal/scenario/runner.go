// Package scenario runs YAML assertion files against the classifier. It
// backs the `hedgegate check` command so rule files can be gated in CI.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/hedgegate/internal/classify"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

// Load reads and validates a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("scenario %s has no cases", s.Name)
	}
	for i, c := range s.Cases {
		if c.Expect != "accept" && c.Expect != "reject" {
			return nil, fmt.Errorf("case %d: expect must be accept or reject, got %q", i, c.Expect)
		}
	}

	return &s, nil
}

// Run evaluates all cases in a scenario against the given config.
// Each case is an independent classification.
func Run(s *Scenario, cfg *classify.Config) *RunResult {
	result := &RunResult{Name: s.Name, Total: len(s.Cases)}

	for i, c := range s.Cases {
		cr := CaseResult{Index: i, Text: c.Text, Expected: c.Expect}

		r, err := classify.Classify(c.Text, cfg)
		if err != nil {
			cr.Actual = "error"
			cr.Detail = err.Error()
			result.Cases = append(result.Cases, cr)
			result.Failed++
			continue
		}

		cr.Actual = "reject"
		if r.Accepted {
			cr.Actual = "accept"
		}

		cr.Passed = cr.Actual == c.Expect
		if cr.Passed && c.Signal != "" && string(r.Signal) != c.Signal {
			cr.Passed = false
			cr.Detail = fmt.Sprintf("expected signal %s, got %s", c.Signal, r.Signal)
		}
		if cr.Passed && c.Token != "" && r.MatchedToken != c.Token {
			cr.Passed = false
			cr.Detail = fmt.Sprintf("expected token %q, got %q", c.Token, r.MatchedToken)
		}

		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}

	return result
}

// LoadAndRun loads a scenario file and evaluates it. The scenario's own
// rules field (resolved relative to the scenario file) wins over rulesPath.
func LoadAndRun(path, rulesPath string) (*RunResult, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}

	effectiveRules := rulesPath
	if s.Rules != "" {
		effectiveRules = s.Rules
		if !filepath.IsAbs(effectiveRules) {
			effectiveRules = filepath.Join(filepath.Dir(path), effectiveRules)
		}
	}

	cfg, err := ruleset.Load(effectiveRules)
	if err != nil {
		return nil, err
	}

	result := Run(s, cfg)
	result.File = path
	return result, nil
}
