// Package classify implements a layered heuristic text-risk classifier.
// Four layers run in fixed order, cheapest first, stopping at the first
// rejection: word indicators, phrase indicators, a cumulative uncertainty
// budget, and a positional certainty-then-hedging pattern. Each decision
// reports which layer fired so callers can tell a banned word from
// excessive hedging from self-contradictory framing.
package classify

import (
	"fmt"
	"sort"
	"strings"
)

// Signal identifies which rule layer caused a rejection.
type Signal string

const (
	SignalNone              Signal = "none"
	SignalWordIndicator     Signal = "word_indicator"
	SignalPhraseIndicator   Signal = "phrase_indicator"
	SignalUncertaintyBudget Signal = "uncertainty_budget"
	SignalContextualPattern Signal = "contextual_pattern"
)

// Result is the outcome of one classification. It is produced fresh per
// call and owned entirely by the caller.
type Result struct {
	Accepted     bool    `json:"accepted"`
	Signal       Signal  `json:"signal"`
	MatchedToken string  `json:"matched_token,omitempty"`
	Score        float64 `json:"score"`
}

// InputTooLargeError is returned when text exceeds Config.MaxInputBytes.
// It is the only runtime error Classify can produce; rejections are
// reported structurally via Result, never as errors.
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("classify: input is %d bytes, limit is %d", e.Size, e.Limit)
}

// Classify evaluates text against cfg. It is a pure function: no I/O, no
// shared state, safe for unbounded concurrent use. cfg must have passed
// Validate.
//
// Layer order (must not be changed):
//  1. Bypass — inactive config accepts everything
//  2. Size cap — the only error path
//  3. Word indicators — first substring match rejects
//  4. Phrase indicators — first substring match rejects
//  5. Uncertainty budget — all markers summed, strict > threshold rejects
//  6. Contextual pattern — certainty claim closely followed by a hedge
func Classify(text string, cfg *Config) (Result, error) {
	// Step 1: master bypass. Deliberately ahead of the size cap — an
	// inactive classifier must never fail.
	if !cfg.Active {
		return Result{Accepted: true, Signal: SignalNone}, nil
	}

	// Step 2: size cap.
	if cfg.MaxInputBytes > 0 && len(text) > cfg.MaxInputBytes {
		return Result{}, &InputTooLargeError{Size: len(text), Limit: cfg.MaxInputBytes}
	}

	lower := strings.ToLower(text)

	// Step 3: word indicators.
	for _, w := range cfg.WordIndicators {
		if strings.Contains(lower, w) {
			return Result{Signal: SignalWordIndicator, MatchedToken: w}, nil
		}
	}

	// Step 4: phrase indicators. Literal substrings, not tokenized.
	for _, p := range cfg.PhraseIndicators {
		if strings.Contains(lower, p) {
			return Result{Signal: SignalPhraseIndicator, MatchedToken: p}, nil
		}
	}

	// Step 5: uncertainty budget. No early exit inside the layer: every
	// marker is scanned so Score is a complete diagnostic.
	score := 0.0
	first := ""
	for _, m := range cfg.UncertaintyMarkers {
		if strings.Contains(lower, m) {
			score += cfg.MarkerWeight
			if first == "" {
				first = m
			}
		}
	}
	if score > cfg.Threshold {
		return Result{Signal: SignalUncertaintyBudget, MatchedToken: first, Score: score}, nil
	}

	// Step 6: contextual pattern.
	if claim, followup, ok := contextualPattern(lower, cfg); ok {
		return Result{
			Signal:       SignalContextualPattern,
			MatchedToken: claim + " ... " + followup,
			Score:        score,
		}, nil
	}

	return Result{Accepted: true, Signal: SignalNone, Score: score}, nil
}

// occurrence is one hit of a vocabulary token in the text.
type occurrence struct {
	pos   int // claim: byte offset past the token; followup: token start
	token string
}

// contextualPattern reports whether a certainty claim is followed by an
// uncertainty followup within cfg.PatternWindow bytes. It collects all
// occurrences of both vocabularies in linear passes and walks the two
// sorted lists once, instead of nested substring searches, so long inputs
// with many hits stay near O(n).
func contextualPattern(lower string, cfg *Config) (claim, followup string, ok bool) {
	claims := findAll(lower, cfg.CertaintyClaims, true)
	if len(claims) == 0 {
		return "", "", false
	}
	followups := findAll(lower, cfg.UncertaintyFollowups, false)
	if len(followups) == 0 {
		return "", "", false
	}

	// For each followup, the nearest preceding claim end decides the gap.
	i := 0
	for _, f := range followups {
		for i+1 < len(claims) && claims[i+1].pos <= f.pos {
			i++
		}
		if claims[i].pos <= f.pos && f.pos-claims[i].pos <= cfg.PatternWindow {
			return claims[i].token, f.token, true
		}
	}
	return "", "", false
}

// findAll returns every occurrence of every token, sorted by position.
// When end is true the recorded position is the offset past the match.
func findAll(lower string, tokens []string, end bool) []occurrence {
	var occs []occurrence
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		for off := 0; ; {
			idx := strings.Index(lower[off:], tok)
			if idx < 0 {
				break
			}
			pos := off + idx
			if end {
				occs = append(occs, occurrence{pos: pos + len(tok), token: tok})
			} else {
				occs = append(occs, occurrence{pos: pos, token: tok})
			}
			off = pos + len(tok)
		}
	}
	sort.Slice(occs, func(a, b int) bool { return occs[a].pos < occs[b].pos })
	return occs
}
