// Package ruleset loads classifier rule files. A rule file is YAML overlaid
// on the built-in defaults: absent fields keep their default values, so a
// minimal file can adjust a single threshold or list.
package ruleset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/hedgegate/internal/classify"
)

// Rules is the on-disk shape of a rule file.
type Rules struct {
	Active        *bool    `yaml:"active"`
	Threshold     *float64 `yaml:"threshold"`
	MarkerWeight  *float64 `yaml:"marker_weight"`
	PatternWindow *int     `yaml:"pattern_window"`
	MaxInputBytes *int     `yaml:"max_input_bytes"`
	Words         []string `yaml:"words"`
	Phrases       []string `yaml:"phrases"`
	Uncertainty   []string `yaml:"uncertainty"`
	Certainty     []string `yaml:"certainty"`
	Followups     []string `yaml:"followups"`
}

// DefaultPath returns ~/.hedgegate/rules.yaml, or "" if the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hedgegate", "rules.yaml")
}

// Default returns the built-in configuration: standard preset plus the
// default indicator lists.
func Default() *classify.Config {
	cfg := classify.Standard()
	cfg.WordIndicators = append([]string(nil), DefaultWords...)
	cfg.PhraseIndicators = append([]string(nil), DefaultPhrases...)
	cfg.UncertaintyMarkers = append([]string(nil), DefaultUncertainty...)
	if err := cfg.Validate(); err != nil {
		// Built-in defaults failing validation is a programming error.
		panic(fmt.Sprintf("ruleset: invalid built-in defaults: %v", err))
	}
	return cfg
}

// Load reads a rule file and returns a validated classifier config.
// Empty path falls back to ~/.hedgegate/rules.yaml. Missing file returns
// the built-in defaults. Invalid YAML or invalid values return an error;
// a bad file is never silently coerced to defaults.
func Load(path string) (*classify.Config, error) {
	cfg, _, err := LoadWithHash(path)
	return cfg, err
}

// LoadWithHash loads a rule file and returns the SHA-256 of its raw bytes
// for audit stamping. When no file exists (defaults used), the hash is the
// SHA-256 of empty input.
func LoadWithHash(path string) (*classify.Config, string, error) {
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return Default(), emptyHash(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), emptyHash(), nil
		}
		return nil, "", fmt.Errorf("ruleset: read %s: %w", path, err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, "", fmt.Errorf("ruleset: parse %s: %w", path, err)
	}

	cfg := Default()
	apply(cfg, &r)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("ruleset: %s: %w", path, err)
	}

	h := sha256.Sum256(data)
	return cfg, "sha256:" + hex.EncodeToString(h[:]), nil
}

// apply overlays file values on the default config. Pointer fields
// distinguish "absent" from zero so `threshold: 0` is honored.
func apply(cfg *classify.Config, r *Rules) {
	if r.Active != nil {
		cfg.Active = *r.Active
	}
	if r.Threshold != nil {
		cfg.Threshold = *r.Threshold
	}
	if r.MarkerWeight != nil {
		cfg.MarkerWeight = *r.MarkerWeight
	}
	if r.PatternWindow != nil {
		cfg.PatternWindow = *r.PatternWindow
	}
	if r.MaxInputBytes != nil {
		cfg.MaxInputBytes = *r.MaxInputBytes
	}
	if r.Words != nil {
		cfg.WordIndicators = r.Words
	}
	if r.Phrases != nil {
		cfg.PhraseIndicators = r.Phrases
	}
	if r.Uncertainty != nil {
		cfg.UncertaintyMarkers = r.Uncertainty
	}
	if r.Certainty != nil {
		cfg.CertaintyClaims = r.Certainty
	}
	if r.Followups != nil {
		cfg.UncertaintyFollowups = r.Followups
	}
}

// ToMap returns the effective config as a map for serialization in tool
// responses and diagnostics.
func ToMap(cfg *classify.Config) map[string]any {
	return map[string]any{
		"active":          cfg.Active,
		"threshold":       cfg.Threshold,
		"marker_weight":   cfg.MarkerWeight,
		"pattern_window":  cfg.PatternWindow,
		"max_input_bytes": cfg.MaxInputBytes,
		"words":           cfg.WordIndicators,
		"phrases":         cfg.PhraseIndicators,
		"uncertainty":     cfg.UncertaintyMarkers,
		"certainty":       cfg.CertaintyClaims,
		"followups":       cfg.UncertaintyFollowups,
	}
}

func emptyHash() string {
	h := sha256.Sum256(nil)
	return "sha256:" + hex.EncodeToString(h[:])
}
