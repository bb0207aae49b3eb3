// Package hedgegate provides in-process text classification for Go
// applications. It evaluates text through four heuristic layers — banned
// words, banned phrases, a cumulative hedging budget, and a contradictory
// certainty pattern — and reports which layer decided.
//
// Usage:
//
//	hg, err := hedgegate.New(hedgegate.WithRules("rules.yaml"))
//	result, err := hg.Classify("it could be true")
//	if !result.Accepted {
//	    // result.Signal says which rule layer fired
//	}
//
// The SDK links directly against internal packages for zero-subprocess
// overhead. External users import github.com/ppiankov/hedgegate/sdk/go/hedgegate.
package hedgegate
