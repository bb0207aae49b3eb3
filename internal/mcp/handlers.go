package mcp

import (
	"context"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ppiankov/hedgegate/internal/classify"
	"github.com/ppiankov/hedgegate/internal/ruleset"
)

// --- Input/Output types ---

// ClassifyInput defines parameters for the hedgegate_classify tool.
type ClassifyInput struct {
	Text string `json:"text" jsonschema:"text to classify"`
}

// ClassifyOutput contains one classification decision.
type ClassifyOutput struct {
	Accepted     bool    `json:"accepted"`
	Signal       string  `json:"signal"`
	MatchedToken string  `json:"matched_token,omitempty"`
	Score        float64 `json:"score"`
}

// BatchInput defines parameters for the hedgegate_batch tool.
type BatchInput struct {
	Texts []string `json:"texts" jsonschema:"texts to classify independently"`
}

// BatchOutput contains one decision per input text, in input order.
type BatchOutput struct {
	Results  []ClassifyOutput `json:"results"`
	Rejected int              `json:"rejected"`
}

// RulesInput defines parameters for the hedgegate_rules tool.
type RulesInput struct{}

// RulesOutput contains the active rule set and its hash.
type RulesOutput struct {
	Rules map[string]any `json:"rules"`
	Hash  string         `json:"hash"`
}

// --- Handlers ---

func (s *Server) handleClassify(ctx context.Context, req *mcpsdk.CallToolRequest, input ClassifyInput) (*mcpsdk.CallToolResult, ClassifyOutput, error) {
	cfg, hash := s.snapshot()

	result, err := classify.Classify(input.Text, cfg)
	if err != nil {
		var tooLarge *classify.InputTooLargeError
		if errors.As(err, &tooLarge) {
			return nil, ClassifyOutput{}, fmt.Errorf("input too large: %d bytes over a %d byte limit", tooLarge.Size, tooLarge.Limit)
		}
		return nil, ClassifyOutput{}, err
	}

	s.recordAudit(input.Text, result, hash)

	return nil, toOutput(result), nil
}

func (s *Server) handleBatch(ctx context.Context, req *mcpsdk.CallToolRequest, input BatchInput) (*mcpsdk.CallToolResult, BatchOutput, error) {
	if len(input.Texts) == 0 {
		return nil, BatchOutput{}, fmt.Errorf("texts must not be empty")
	}

	cfg, hash := s.snapshot()

	out := BatchOutput{Results: make([]ClassifyOutput, 0, len(input.Texts))}
	for i, text := range input.Texts {
		result, err := classify.Classify(text, cfg)
		if err != nil {
			return nil, BatchOutput{}, fmt.Errorf("text %d: %w", i, err)
		}
		s.recordAudit(text, result, hash)
		if !result.Accepted {
			out.Rejected++
		}
		out.Results = append(out.Results, toOutput(result))
	}

	return nil, out, nil
}

func (s *Server) handleRules(ctx context.Context, req *mcpsdk.CallToolRequest, input RulesInput) (*mcpsdk.CallToolResult, RulesOutput, error) {
	cfg, hash := s.snapshot()
	return nil, RulesOutput{Rules: ruleset.ToMap(cfg), Hash: hash}, nil
}

func toOutput(r classify.Result) ClassifyOutput {
	return ClassifyOutput{
		Accepted:     r.Accepted,
		Signal:       string(r.Signal),
		MatchedToken: r.MatchedToken,
		Score:        r.Score,
	}
}
