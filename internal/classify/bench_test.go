package classify

import (
	"strings"
	"testing"
)

func benchConfig(b *testing.B) *Config {
	b.Helper()
	cfg := Standard()
	cfg.WordIndicators = []string{"rumor", "gossip", "hearsay", "scandal"}
	cfg.PhraseIndicators = []string{"i heard that", "they say", "word is"}
	cfg.UncertaintyMarkers = []string{"might", "maybe", "perhaps", "possibly", "could be", "may be"}
	if err := cfg.Validate(); err != nil {
		b.Fatal(err)
	}
	return cfg
}

func BenchmarkClassify_Clean(b *testing.B) {
	cfg := benchConfig(b)
	text := strings.Repeat("a plain confident statement with nothing to flag. ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(text, cfg)
	}
}

func BenchmarkClassify_WordHit(b *testing.B) {
	cfg := benchConfig(b)
	text := "the rumor is spreading"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(text, cfg)
	}
}

func BenchmarkClassify_ContextualScan(b *testing.B) {
	cfg := benchConfig(b)
	cfg.Threshold = 100 // force the scan to run on every call
	text := strings.Repeat("certainly settled, although it might shift later on. ", 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(text, cfg)
	}
}
