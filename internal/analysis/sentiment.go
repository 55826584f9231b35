package analysis

// sentimentAmplification rescales raw net sentiment density into a usable
// polarity. Even strongly worded financial text rarely has more than a
// fifth of its tokens carrying sentiment, so the raw ratio is amplified
// before clamping to [-1, 1].
const sentimentAmplification = 5.0

// SentimentScorer produces a polarity value and an investment-keyword
// density from a normalized token stream. Both outputs are bounded and a
// scorer never fails: degenerate input gets neutral defaults.
type SentimentScorer struct {
	cfg              Config
	bullish          map[string]float64
	bearish          map[string]float64
	positiveKeywords map[string]bool
	negativeKeywords map[string]bool
	neutralKeywords  map[string]bool
}

// NewSentimentScorer creates a scorer with the built-in lexicons.
func NewSentimentScorer(cfg Config) *SentimentScorer {
	return &SentimentScorer{
		cfg:              cfg.withDefaults(),
		bullish:          loadBullishWords(),
		bearish:          loadBearishWords(),
		positiveKeywords: loadPositiveKeywords(),
		negativeKeywords: loadNegativeKeywords(),
		neutralKeywords:  loadNeutralKeywords(),
	}
}

// Score computes sentiment polarity in [-1, 1] and keyword density in
// [0, 1] for the given tokens. An empty token sequence yields (0, 0).
func (s *SentimentScorer) Score(tokens []string) (polarity, keywordScore float64) {
	if len(tokens) == 0 {
		return 0, 0
	}

	var posWeight, negWeight float64
	keywordHits := 0
	for _, t := range tokens {
		if w, ok := s.bullish[t]; ok {
			posWeight += w
		}
		if w, ok := s.bearish[t]; ok {
			negWeight += w
		}
		if s.positiveKeywords[t] || s.negativeKeywords[t] {
			keywordHits++
		}
	}

	net := (posWeight - negWeight) / float64(len(tokens))
	polarity = clampRange(net*sentimentAmplification, -1, 1)

	keywordScore = clamp01(float64(keywordHits) / float64(len(tokens)))
	return polarity, keywordScore
}

// Label buckets a polarity value using the configured threshold.
func (s *SentimentScorer) Label(polarity float64) SentimentLabel {
	switch {
	case polarity > s.cfg.SentimentThreshold:
		return SentimentPositive
	case polarity < -s.cfg.SentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// KeywordHits counts per-keyword occurrences of the investment vocabulary
// (positive, negative, and neutral sets) in the tokens. Used for the
// batch-level top-keywords summary.
func (s *SentimentScorer) KeywordHits(tokens []string) map[string]int {
	var hits map[string]int
	for _, t := range tokens {
		if s.positiveKeywords[t] || s.negativeKeywords[t] || s.neutralKeywords[t] {
			if hits == nil {
				hits = make(map[string]int)
			}
			hits[t]++
		}
	}
	return hits
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
