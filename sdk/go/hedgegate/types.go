package hedgegate

import (
	"fmt"

	"github.com/ppiankov/hedgegate/internal/classify"
)

// Signal identifies which rule layer caused a rejection.
type Signal string

const (
	SignalNone              Signal = Signal(classify.SignalNone)
	SignalWordIndicator     Signal = Signal(classify.SignalWordIndicator)
	SignalPhraseIndicator   Signal = Signal(classify.SignalPhraseIndicator)
	SignalUncertaintyBudget Signal = Signal(classify.SignalUncertaintyBudget)
	SignalContextualPattern Signal = Signal(classify.SignalContextualPattern)
)

// Result is the outcome of one classification.
type Result struct {
	Accepted     bool    `json:"accepted"`
	Signal       Signal  `json:"signal"`
	MatchedToken string  `json:"matched_token,omitempty"`
	Score        float64 `json:"score"`
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
	Signal       Signal
	MatchedToken string
	Score        float64
}

func (e *RejectedError) Error() string {
	if e.MatchedToken != "" {
		return fmt.Sprintf("hedgegate: text rejected (%s): matched %q", e.Signal, e.MatchedToken)
	}
	return fmt.Sprintf("hedgegate: text rejected (%s)", e.Signal)
}

func toResult(r classify.Result) Result {
	return Result{
		Accepted:     r.Accepted,
		Signal:       Signal(r.Signal),
		MatchedToken: r.MatchedToken,
		Score:        r.Score,
	}
}
