package analysis

import (
	"fmt"
	"time"
)

// Article is one piece of news text entering the pipeline. Produced by a
// collector; the pipeline treats it as read-only.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	SourceName  string    `json:"source_name"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url,omitempty"`
}

// MatchKind identifies which matching rule produced a MatchResult.
type MatchKind string

const (
	MatchExactSymbol MatchKind = "exact-symbol"
	MatchExactName   MatchKind = "exact-name"
	MatchAlias       MatchKind = "alias"
	MatchFuzzy       MatchKind = "fuzzy"
)

// MatchResult links one article to one company. An article yields at most
// one MatchResult per company; repeated mentions keep the strongest rule.
type MatchResult struct {
	CompanySymbol string    `json:"company_symbol"`
	Confidence    float64   `json:"confidence"`
	MatchKind     MatchKind `json:"match_kind"`
	EvidenceSpan  string    `json:"evidence_span"`
}

// SentimentLabel buckets polarity around the configured threshold.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// Impact is the discretized investment-score bucket.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// AnalysisResult is the complete outcome for a single article. It is
// immutable once produced; re-running the pipeline on the same input
// produces a structurally identical value.
type AnalysisResult struct {
	ArticleID         string         `json:"article_id"`
	SentimentPolarity float64        `json:"sentiment_polarity"`
	SentimentLabel    SentimentLabel `json:"sentiment_label"`
	KeywordScore      float64        `json:"keyword_score"`
	Matches           []MatchResult  `json:"matches"`
	InvestmentScore   float64        `json:"investment_score"`
	ImpactCategory    Impact         `json:"impact_category"`
}

// ImpactDisplay renders the impact bucket with its sentiment context tag,
// e.g. "High (Positive)". The tag is presentation only; it never feeds
// back into the numeric score.
func (r *AnalysisResult) ImpactDisplay() string {
	return fmt.Sprintf("%s (%s)", r.ImpactCategory, r.SentimentLabel)
}

// RejectedArticle records an input that failed boundary validation.
type RejectedArticle struct {
	ArticleID string `json:"article_id"`
	Reason    string `json:"reason"`
}

// MalformedInputError is returned when an article is missing a required
// field. It rejects a single article, never the batch.
type MalformedInputError struct {
	ArticleID string
	Reason    string
}

func (e *MalformedInputError) Error() string {
	if e.ArticleID == "" {
		return fmt.Sprintf("malformed article: %s", e.Reason)
	}
	return fmt.Sprintf("malformed article %s: %s", e.ArticleID, e.Reason)
}

// BatchResult bundles one pipeline run over a finite article batch.
type BatchResult struct {
	AnalyzedAt    time.Time         `json:"analyzed_at"`
	TotalInput    int               `json:"total_input"`
	Results       []AnalysisResult  `json:"results"`
	Rejected      []RejectedArticle `json:"rejected,omitempty"`
	KeywordCounts map[string]int    `json:"keyword_counts,omitempty"`
	Config        Config            `json:"config"`
}

// ScoringWeights controls the relative contribution of each factor to the
// investment score. Weights are normalized by their sum at aggregation
// time, so any positive combination keeps the score inside [0, 1].
type ScoringWeights struct {
	Sentiment float64 `yaml:"sentiment" json:"sentiment"`
	Keyword   float64 `yaml:"keyword" json:"keyword"`
	Company   float64 `yaml:"company" json:"company"`
	Source    float64 `yaml:"source" json:"source"`
}

// FuzzyJaccardWindowV1 names the fuzzy-overlap algorithm in use, so stored
// results remain interpretable if the algorithm is ever revised.
const FuzzyJaccardWindowV1 = "jaccard-window/v1"

// Config carries every tunable of the engine. A Config value is immutable
// once handed to a constructor.
type Config struct {
	SentimentThreshold    float64        `yaml:"sentiment_threshold" json:"sentiment_threshold"`
	RelevanceThreshold    float64        `yaml:"relevance_threshold" json:"relevance_threshold"`
	MaxArticlesPerCompany int            `yaml:"max_articles_per_company" json:"max_articles_per_company"`
	NormalizingConstant   float64        `yaml:"normalizing_constant" json:"normalizing_constant"`
	Workers               int            `yaml:"workers" json:"workers"`
	Weights               ScoringWeights `yaml:"weights" json:"weights"`
	ExtraStopWords        []string       `yaml:"extra_stop_words" json:"extra_stop_words,omitempty"`
	FuzzyWindowSlack      int            `yaml:"fuzzy_window_slack" json:"fuzzy_window_slack"`
	FuzzyAlgorithm        string         `yaml:"fuzzy_algorithm" json:"fuzzy_algorithm"`
}

// DefaultConfig returns the stock engine configuration.
func DefaultConfig() Config {
	return Config{
		SentimentThreshold:    0.1,
		RelevanceThreshold:    0.3,
		MaxArticlesPerCompany: 10,
		NormalizingConstant:   3.0,
		Workers:               4,
		Weights: ScoringWeights{
			Sentiment: 0.4,
			Keyword:   0.3,
			Company:   0.2,
			Source:    0.1,
		},
		FuzzyWindowSlack: 2,
		FuzzyAlgorithm:   FuzzyJaccardWindowV1,
	}
}

// withDefaults fills zero-valued fields so a partially populated Config
// behaves like DefaultConfig for the fields it left out.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SentimentThreshold == 0 {
		c.SentimentThreshold = def.SentimentThreshold
	}
	if c.RelevanceThreshold == 0 {
		c.RelevanceThreshold = def.RelevanceThreshold
	}
	if c.MaxArticlesPerCompany == 0 {
		c.MaxArticlesPerCompany = def.MaxArticlesPerCompany
	}
	if c.NormalizingConstant == 0 {
		c.NormalizingConstant = def.NormalizingConstant
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.Weights == (ScoringWeights{}) {
		c.Weights = def.Weights
	}
	if c.FuzzyWindowSlack <= 0 {
		c.FuzzyWindowSlack = def.FuzzyWindowSlack
	}
	if c.FuzzyAlgorithm == "" {
		c.FuzzyAlgorithm = def.FuzzyAlgorithm
	}
	return c
}
