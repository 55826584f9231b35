package analysis

import (
	"math"
	"testing"
)

func TestScoreWeightedComposite(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	matches := []MatchResult{{CompanySymbol: "TCS", Confidence: 0.9, MatchKind: MatchExactName}}
	score := a.Score(-0.5, 0.4, matches, "Moneycontrol")

	// 0.4*0.5 + 0.3*0.4 + 0.2*(0.9/3) + 0.1*0.8
	if math.Abs(score-0.46) > 1e-9 {
		t.Errorf("Expected score 0.46, got %f", score)
	}
	if a.Impact(score) != ImpactMedium {
		t.Errorf("Expected Medium impact, got %s", a.Impact(score))
	}
}

func TestScoreUsesPolarityMagnitude(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	up := a.Score(0.6, 0.2, nil, "Mint")
	down := a.Score(-0.6, 0.2, nil, "Mint")

	if up != down {
		t.Errorf("Expected sign-independent score, got %f vs %f", up, down)
	}
}

func TestScoreNoMatches(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	score := a.Score(0, 0, nil, "some unknown blog")

	// Only the neutral source credibility contributes.
	if math.Abs(score-0.05) > 1e-9 {
		t.Errorf("Expected score 0.05, got %f", score)
	}
	if a.Impact(score) != ImpactLow {
		t.Errorf("Expected Low impact, got %s", a.Impact(score))
	}
}

func TestCompanyFactorSaturates(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	var matches []MatchResult
	for i := 0; i < 5; i++ {
		matches = append(matches, MatchResult{CompanySymbol: string(rune('A' + i)), Confidence: 1.0})
	}
	score := a.Score(1.0, 1.0, matches, "nowhere")

	// 0.4 + 0.3 + 0.2*1 + 0.1*0.5 with the company factor capped at 1.
	if math.Abs(score-0.95) > 1e-9 {
		t.Errorf("Expected score 0.95, got %f", score)
	}
}

func TestScoreCustomWeightsStayBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = ScoringWeights{Sentiment: 1, Keyword: 1, Company: 1, Source: 1}
	a := NewAggregator(cfg)

	matches := []MatchResult{{CompanySymbol: "TCS", Confidence: 0.9}}
	score := a.Score(1.0, 1.0, matches, "nowhere")

	// (1 + 1 + 0.3 + 0.5) / 4
	if math.Abs(score-0.7) > 1e-9 {
		t.Errorf("Expected score 0.7, got %f", score)
	}
	if score < 0 || score > 1 {
		t.Errorf("Score %f out of [0, 1]", score)
	}
}

func TestSourceCredibility(t *testing.T) {
	cases := []struct {
		source string
		want   float64
	}{
		{"Economic Times", 0.9},
		{"The Economic Times", 0.9},
		{"ECONOMIC TIMES", 0.9},
		{"Business Standard", 0.85},
		{"Mint", 0.85},
		{"LiveMint", 0.85},
		{"Moneycontrol", 0.8},
		{"Some Random Blog", 0.5},
		{"", 0.5},
	}
	for _, c := range cases {
		if got := SourceCredibility(c.source); got != c.want {
			t.Errorf("SourceCredibility(%q): expected %f, got %f", c.source, c.want, got)
		}
	}
}

func TestImpactThresholds(t *testing.T) {
	a := NewAggregator(DefaultConfig())

	cases := []struct {
		score float64
		want  Impact
	}{
		{1.0, ImpactHigh},
		{0.7, ImpactHigh},
		{0.699, ImpactMedium},
		{0.4, ImpactMedium},
		{0.399, ImpactLow},
		{0.0, ImpactLow},
	}
	for _, c := range cases {
		if got := a.Impact(c.score); got != c.want {
			t.Errorf("Impact(%f): expected %s, got %s", c.score, c.want, got)
		}
	}
}
