package classify

import (
	"fmt"
	"strings"
)

// Default tuning constants. Both are exposed as Config fields rather than
// hardcoded because neither value has a principled derivation.
const (
	DefaultThreshold     = 0.1
	DefaultMarkerWeight  = 0.15
	DefaultPatternWindow = 15
)

// Config holds the rule sets and tuning parameters for one classifier.
// Build it once (directly, via a preset, or via ruleset.Load), call
// Validate, and treat it as read-only afterwards.
type Config struct {
	// Active is the master switch. When false, Classify accepts
	// everything before any other check runs.
	Active bool

	// Threshold is the cumulative uncertainty budget. The summed marker
	// score must strictly exceed it to reject.
	Threshold float64

	// MarkerWeight is the score contributed by each uncertainty marker hit.
	MarkerWeight float64

	// PatternWindow is the maximum character gap between a certainty claim
	// and an uncertainty followup for the contextual-pattern layer.
	PatternWindow int

	// MaxInputBytes caps input size before scanning. Zero means no cap.
	MaxInputBytes int

	// WordIndicators are single tokens whose presence alone rejects.
	WordIndicators []string

	// PhraseIndicators are multi-word literals whose presence alone rejects.
	PhraseIndicators []string

	// UncertaintyMarkers each add MarkerWeight toward Threshold.
	UncertaintyMarkers []string

	// CertaintyClaims and UncertaintyFollowups feed the contextual-pattern
	// layer: a claim followed closely by a followup rejects.
	CertaintyClaims      []string
	UncertaintyFollowups []string
}

// Validate checks tuning parameters and normalizes all rule entries to
// lowercase trimmed form. It must be called before Classify; invalid
// configuration is a construction-time error, never a classification-time
// fallback.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("classify: threshold must be >= 0, got %g", c.Threshold)
	}
	if c.MarkerWeight <= 0 {
		return fmt.Errorf("classify: marker weight must be > 0, got %g", c.MarkerWeight)
	}
	if c.PatternWindow < 0 {
		return fmt.Errorf("classify: pattern window must be >= 0, got %d", c.PatternWindow)
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("classify: max input bytes must be >= 0, got %d", c.MaxInputBytes)
	}

	sets := []struct {
		name    string
		entries *[]string
	}{
		{"word_indicators", &c.WordIndicators},
		{"phrase_indicators", &c.PhraseIndicators},
		{"uncertainty_markers", &c.UncertaintyMarkers},
		{"certainty_claims", &c.CertaintyClaims},
		{"uncertainty_followups", &c.UncertaintyFollowups},
	}
	for _, s := range sets {
		if *s.entries == nil {
			return fmt.Errorf("classify: %s must not be nil (use an empty list to disable the layer)", s.name)
		}
		*s.entries = normalize(*s.entries)
	}

	return nil
}

// normalize lowercases and trims entries, dropping empties and duplicates
// while preserving order.
func normalize(entries []string) []string {
	out := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

// Standard returns the default preset: balanced thresholds, empty rule sets
// except the contextual-pattern vocabulary. Most callers load rules via the
// ruleset package instead, which fills the indicator lists.
func Standard() *Config {
	return &Config{
		Active:               true,
		Threshold:            DefaultThreshold,
		MarkerWeight:         DefaultMarkerWeight,
		PatternWindow:        DefaultPatternWindow,
		WordIndicators:       []string{},
		PhraseIndicators:     []string{},
		UncertaintyMarkers:   []string{},
		CertaintyClaims:      defaultCertaintyClaims(),
		UncertaintyFollowups: defaultUncertaintyFollowups(),
	}
}

// Strict returns the tighter preset: any single uncertainty marker rejects
// and the contextual window is widened.
func Strict() *Config {
	cfg := Standard()
	cfg.Threshold = 0
	cfg.PatternWindow = 25
	return cfg
}

func defaultCertaintyClaims() []string {
	return []string{"certainly", "definitely", "absolutely", "without doubt", "clearly", "undoubtedly"}
}

func defaultUncertaintyFollowups() []string {
	return []string{"might", "maybe", "perhaps", "possibly", "could be", "may be"}
}
