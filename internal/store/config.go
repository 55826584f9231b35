package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nse-news-analyzer/internal/analysis"
)

type Config struct {
	Mode     string `yaml:"mode"`
	Registry struct {
		Path string `yaml:"path"`
		URL  string `yaml:"url"`
	} `yaml:"registry"`
	Analysis struct {
		SentimentThreshold    float64 `yaml:"sentiment_threshold"`
		RelevanceThreshold    float64 `yaml:"relevance_threshold"`
		MaxArticlesPerCompany int     `yaml:"max_articles_per_company"`
		NormalizingConstant   float64 `yaml:"normalizing_constant"`
		Workers               int     `yaml:"workers"`
		Weights               struct {
			Sentiment float64 `yaml:"sentiment"`
			Keyword   float64 `yaml:"keyword"`
			Company   float64 `yaml:"company"`
			Source    float64 `yaml:"source"`
		} `yaml:"weights"`
		ExtraStopWords   []string `yaml:"extra_stop_words"`
		FuzzyWindowSlack int      `yaml:"fuzzy_window_slack"`
		FuzzyAlgorithm   string   `yaml:"fuzzy_algorithm"`
	} `yaml:"analysis"`
	Collector struct {
		DaysLookback         int    `yaml:"days_lookback"`
		MinArticleLength     int    `yaml:"min_article_length"`
		MaxArticlesPerSource int    `yaml:"max_articles_per_source"`
		RequestTimeoutSec    int    `yaml:"request_timeout_seconds"`
		RequestsPerMinute    int    `yaml:"requests_per_minute"`
		CacheDir             string `yaml:"cache_dir"`
		CacheTTLMinutes      int    `yaml:"cache_ttl_minutes"`
		EnrichContent        bool   `yaml:"enrich_content"`
	} `yaml:"collector"`
	Output struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"output"`
}

func (c *Config) Validate() error {
	if c.Mode != "MOCK" && c.Mode != "LIVE" {
		return fmt.Errorf("invalid mode '%s': must be 'MOCK' or 'LIVE'", c.Mode)
	}
	a := &c.Analysis
	if a.SentimentThreshold < 0 || a.SentimentThreshold > 1 {
		return fmt.Errorf("analysis.sentiment_threshold must be between 0-1, got %.2f", a.SentimentThreshold)
	}
	if a.RelevanceThreshold < 0 || a.RelevanceThreshold >= 1 {
		return fmt.Errorf("analysis.relevance_threshold must be in [0,1), got %.2f", a.RelevanceThreshold)
	}
	if a.NormalizingConstant <= 0 {
		return fmt.Errorf("analysis.normalizing_constant must be positive, got %.2f", a.NormalizingConstant)
	}
	sum := a.Weights.Sentiment + a.Weights.Keyword + a.Weights.Company + a.Weights.Source
	if sum <= 0 {
		return fmt.Errorf("analysis.weights must have a positive sum, got %.2f", sum)
	}
	if a.FuzzyWindowSlack < 0 {
		return fmt.Errorf("analysis.fuzzy_window_slack cannot be negative, got %d", a.FuzzyWindowSlack)
	}
	if a.FuzzyAlgorithm != "" && a.FuzzyAlgorithm != analysis.FuzzyJaccardWindowV1 {
		return fmt.Errorf("analysis.fuzzy_algorithm '%s' is not supported, this build implements %s", a.FuzzyAlgorithm, analysis.FuzzyJaccardWindowV1)
	}
	if c.Collector.DaysLookback < 0 {
		return fmt.Errorf("collector.days_lookback cannot be negative, got %d", c.Collector.DaysLookback)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// DefaultConfig returns a runnable configuration with the stock defaults,
// used when no config file is present.
func DefaultConfig() *Config {
	var c Config
	c.Mode = "MOCK"
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.Mode == "" {
		c.Mode = "MOCK"
	}
	if c.Registry.Path == "" {
		c.Registry.Path = "data/EQUITY_L.csv"
	}

	a := &c.Analysis
	if a.SentimentThreshold == 0 {
		a.SentimentThreshold = 0.1
	}
	if a.RelevanceThreshold == 0 {
		a.RelevanceThreshold = 0.3
	}
	if a.MaxArticlesPerCompany == 0 {
		a.MaxArticlesPerCompany = 10
	}
	if a.NormalizingConstant == 0 {
		a.NormalizingConstant = 3.0
	}
	if a.Workers == 0 {
		a.Workers = 4
	}
	if a.Weights.Sentiment == 0 && a.Weights.Keyword == 0 && a.Weights.Company == 0 && a.Weights.Source == 0 {
		a.Weights.Sentiment = 0.4
		a.Weights.Keyword = 0.3
		a.Weights.Company = 0.2
		a.Weights.Source = 0.1
	}
	if a.FuzzyWindowSlack == 0 {
		a.FuzzyWindowSlack = 2
	}
	if a.FuzzyAlgorithm == "" {
		a.FuzzyAlgorithm = analysis.FuzzyJaccardWindowV1
	}

	col := &c.Collector
	if col.DaysLookback == 0 {
		col.DaysLookback = 7
	}
	if col.MinArticleLength == 0 {
		col.MinArticleLength = 100
	}
	if col.MaxArticlesPerSource == 0 {
		col.MaxArticlesPerSource = 25
	}
	if col.RequestTimeoutSec == 0 {
		col.RequestTimeoutSec = 30
	}
	if col.RequestsPerMinute == 0 {
		col.RequestsPerMinute = 30
	}
	if col.CacheDir == "" {
		col.CacheDir = "cache/feeds"
	}
	if col.CacheTTLMinutes == 0 {
		col.CacheTTLMinutes = 30
	}

	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Output.RetentionDays == 0 {
		c.Output.RetentionDays = 30
	}
}
