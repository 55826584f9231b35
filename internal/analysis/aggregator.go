package analysis

import (
	"math"
	"strings"
)

// Impact thresholds on the composite score.
const (
	highImpactThreshold   = 0.7
	mediumImpactThreshold = 0.4
)

const defaultSourceCredibility = 0.5

// sourceCredibility holds the static credibility weight per known outlet,
// keyed by the lowercased source name. Unknown outlets fall back to the
// neutral default rather than being penalized.
var sourceCredibility = map[string]float64{
	"economic times":     0.9,
	"the economic times": 0.9,
	"business standard":  0.85,
	"mint":               0.85,
	"livemint":           0.85,
	"moneycontrol":       0.8,
}

// Aggregator folds the per-article signals into one investment score and
// an impact category.
type Aggregator struct {
	cfg Config
}

func NewAggregator(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg.withDefaults()}
}

// Score combines sentiment strength, keyword density, company match
// weight, and source credibility into a single value in [0, 1]. Sentiment
// contributes by magnitude only; its sign is carried separately as the
// label.
func (a *Aggregator) Score(polarity, keywordScore float64, matches []MatchResult, sourceName string) float64 {
	w := a.cfg.Weights
	total := w.Sentiment + w.Keyword + w.Company + w.Source

	score := w.Sentiment*math.Abs(polarity) +
		w.Keyword*keywordScore +
		w.Company*a.companyFactor(matches) +
		w.Source*SourceCredibility(sourceName)
	score /= total

	return clamp01(score)
}

// companyFactor grows with both the number of matched companies and
// their mean confidence, saturating at 1 once the product clears the
// normalizing constant. No matches contribute nothing.
func (a *Aggregator) companyFactor(matches []MatchResult) float64 {
	if len(matches) == 0 {
		return 0
	}
	var sum float64
	for _, m := range matches {
		sum += m.Confidence
	}
	mean := sum / float64(len(matches))
	return math.Min(1, float64(len(matches))*mean/a.cfg.NormalizingConstant)
}

// SourceCredibility reports the static credibility weight for a source
// name, matching case-insensitively.
func SourceCredibility(sourceName string) float64 {
	if c, ok := sourceCredibility[strings.ToLower(strings.TrimSpace(sourceName))]; ok {
		return c
	}
	return defaultSourceCredibility
}

// Impact buckets a composite score into High, Medium, or Low.
func (a *Aggregator) Impact(score float64) Impact {
	switch {
	case score >= highImpactThreshold:
		return ImpactHigh
	case score >= mediumImpactThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}
