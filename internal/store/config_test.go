package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nse-news-analyzer/internal/analysis"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := writeConfig(t, "mode: MOCK\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Analysis.SentimentThreshold != 0.1 {
		t.Errorf("Expected default sentiment threshold 0.1, got %f", cfg.Analysis.SentimentThreshold)
	}
	if cfg.Analysis.Weights.Sentiment != 0.4 {
		t.Errorf("Expected default sentiment weight 0.4, got %f", cfg.Analysis.Weights.Sentiment)
	}
	if cfg.Analysis.FuzzyAlgorithm != analysis.FuzzyJaccardWindowV1 {
		t.Errorf("Expected default fuzzy algorithm, got %s", cfg.Analysis.FuzzyAlgorithm)
	}
	if cfg.Collector.DaysLookback != 7 {
		t.Errorf("Expected default lookback 7, got %d", cfg.Collector.DaysLookback)
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("Expected default output dir, got %s", cfg.Output.Dir)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `mode: LIVE
analysis:
  relevance_threshold: 0.5
  workers: 2
collector:
  days_lookback: 3
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Mode != "LIVE" {
		t.Errorf("Expected LIVE mode, got %s", cfg.Mode)
	}
	if cfg.Analysis.RelevanceThreshold != 0.5 {
		t.Errorf("Expected relevance threshold 0.5, got %f", cfg.Analysis.RelevanceThreshold)
	}
	if cfg.Analysis.Workers != 2 {
		t.Errorf("Expected 2 workers, got %d", cfg.Analysis.Workers)
	}
	if cfg.Collector.DaysLookback != 3 {
		t.Errorf("Expected lookback 3, got %d", cfg.Collector.DaysLookback)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad mode", "mode: TURBO\n", "invalid mode"},
		{"bad threshold", "mode: MOCK\nanalysis:\n  sentiment_threshold: 1.5\n", "sentiment_threshold"},
		{"bad fuzzy algorithm", "mode: MOCK\nanalysis:\n  fuzzy_algorithm: levenshtein/v1\n", "fuzzy_algorithm"},
		{"negative window slack", "mode: MOCK\nanalysis:\n  fuzzy_window_slack: -3\n", "fuzzy_window_slack"},
		{"negative lookback", "mode: MOCK\ncollector:\n  days_lookback: -1\n", "days_lookback"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigAcceptsPinnedFuzzyAlgorithm(t *testing.T) {
	path := writeConfig(t, "mode: MOCK\nanalysis:\n  fuzzy_algorithm: "+analysis.FuzzyJaccardWindowV1+"\n")

	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("Expected pinned algorithm accepted, got %v", err)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Mode != "MOCK" {
		t.Errorf("Expected MOCK mode, got %s", cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}
