package classify

import (
	"strings"
	"testing"
)

func TestStandardPresetValidates(t *testing.T) {
	cfg := Standard()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Threshold != DefaultThreshold {
		t.Errorf("expected threshold %g, got %g", DefaultThreshold, cfg.Threshold)
	}
	if cfg.PatternWindow != DefaultPatternWindow {
		t.Errorf("expected window %d, got %d", DefaultPatternWindow, cfg.PatternWindow)
	}
}

func TestStrictPresetRejectsSingleMarker(t *testing.T) {
	cfg := Strict()
	cfg.UncertaintyMarkers = []string{"perhaps"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	r, _ := Classify("perhaps so", cfg)
	if r.Accepted {
		t.Error("expected strict preset to reject a single marker")
	}
	if r.Signal != SignalUncertaintyBudget {
		t.Errorf("expected uncertainty_budget, got %s", r.Signal)
	}
}

func TestNegativeThresholdRejected(t *testing.T) {
	cfg := Standard()
	cfg.Threshold = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestNonPositiveMarkerWeightRejected(t *testing.T) {
	cfg := Standard()
	cfg.MarkerWeight = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero marker weight")
	}
}

func TestNegativeWindowRejected(t *testing.T) {
	cfg := Standard()
	cfg.PatternWindow = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative pattern window")
	}
}

func TestNilIndicatorSetRejected(t *testing.T) {
	cfg := Standard()
	cfg.WordIndicators = nil
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for nil indicator set")
	}
	if !strings.Contains(err.Error(), "word_indicators") {
		t.Errorf("expected error to name the set, got %v", err)
	}
}

func TestEmptyIndicatorSetAllowed(t *testing.T) {
	cfg := Standard()
	cfg.WordIndicators = []string{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected empty set to disable the layer, got %v", err)
	}
}

func TestValidateNormalizesEntries(t *testing.T) {
	cfg := Standard()
	cfg.WordIndicators = []string{"  Rumor ", "GOSSIP", "rumor", ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []string{"rumor", "gossip"}
	if len(cfg.WordIndicators) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.WordIndicators)
	}
	for i := range want {
		if cfg.WordIndicators[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], cfg.WordIndicators[i])
		}
	}
}
