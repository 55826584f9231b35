package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"nse-news-analyzer/internal/analysis"
	"nse-news-analyzer/internal/analysis/analysisobs"
	"nse-news-analyzer/internal/interfaces"
	"nse-news-analyzer/internal/logger"
	"nse-news-analyzer/internal/news"
	"nse-news-analyzer/internal/registry"
	"nse-news-analyzer/internal/report"
	"nse-news-analyzer/internal/store"
	"nse-news-analyzer/internal/trace"

	"github.com/joho/godotenv"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "config.yaml", "path to config file")
	mode := flag.String("mode", "full", "analysis mode: full or companies")
	companyList := flag.String("companies", "", "comma-separated symbols for -mode companies")
	jsonPath := flag.String("json", "", "write results JSON to this path instead of the output dir")
	live := flag.Bool("live", false, "collect from live RSS feeds regardless of config mode")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := store.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = store.DefaultConfig()
	}
	if *live {
		cfg.Mode = "LIVE"
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracing: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	defer func() { _ = trace.Shutdown(ctx) }()

	// Override relevance threshold from environment if set
	if env := os.Getenv("NEWS_RELEVANCE_THRESHOLD"); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil {
			cfg.Analysis.RelevanceThreshold = v
		}
	}

	_ = report.CompressOlder(cfg.Output.Dir, cfg.Output.RetentionDays)

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║        NSE News Analysis - Company Matching & Scoring        ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()

	reg := loadRegistry(ctx, cfg)
	if reg.Len() == 0 {
		logger.Warn(ctx, "Company registry is empty, no articles will match")
	}

	var targets []string
	if *mode == "companies" {
		targets = parseSymbols(*companyList, reg)
		if len(targets) == 0 {
			fmt.Fprintln(os.Stderr, "Error: -mode companies requires at least one known symbol via -companies")
			os.Exit(1)
		}
		fmt.Printf("🔍 Targeted analysis for: %s\n\n", strings.Join(targets, ", "))
	}

	var collector interfaces.ArticleCollector
	if cfg.Mode == "LIVE" {
		fmt.Println("📡 Collecting LIVE news from RSS feeds")
		fmt.Println("⏳ This may take a few moments...")
		collector = news.NewService(cfg)
	} else {
		fmt.Println("📰 Using MOCK news articles for testing")
		collector = news.NewMockCollector()
	}

	articles, err := collector.Collect(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "News collection failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🗞️  Collected %d articles\n\n", len(articles))

	analyzer := analysisobs.Wrap(analysis.NewAnalyzer(analysisConfig(cfg), reg))

	batch, err := analyzer.AnalyzeBatch(ctx, articles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if len(targets) > 0 {
		batch = filterByCompanies(batch, targets)
	}

	res := &report.Result{
		GeneratedAt:   time.Now(),
		Mode:          cfg.Mode,
		TargetSymbols: targets,
		Articles:      articles,
		Batch:         batch,
		Summary:       analysis.BuildSummary(batch, reg),
	}

	report.WriteText(os.Stdout, res)

	if *jsonPath != "" {
		saveResultsJSON(res, *jsonPath)
	} else {
		path, err := report.Save(res, cfg.Output.Dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save results: %v\n", err)
		} else {
			fmt.Printf("💾 Results saved to %s\n", path)
		}
	}
}

// loadRegistry loads the NSE listing from disk, downloading it first when
// running live without a local copy. Mock runs fall back to the built-in
// sample universe so they work offline.
func loadRegistry(ctx context.Context, cfg *store.Config) *registry.Registry {
	reg, stats, err := registry.LoadCSV(cfg.Registry.Path)
	if err == nil {
		fmt.Printf("📋 Loaded %d NSE companies (%d rows, %d skipped)\n", stats.Loaded, stats.Rows, stats.Skipped)
		return reg
	}
	if !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load company listing: %v\n", err)
		os.Exit(1)
	}

	if cfg.Mode != "LIVE" {
		fmt.Println("📋 No listing file found, using built-in sample companies")
		return registry.Sample()
	}

	url := cfg.Registry.URL
	if url == "" {
		url = registry.DefaultEquityListURL
	}
	fmt.Println("⏳ Downloading NSE equity listing...")
	timeout := time.Duration(cfg.Collector.RequestTimeoutSec) * time.Second
	fetcher := registry.NewFetcher(timeout)
	if err := fetcher.Download(ctx, url, cfg.Registry.Path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to download company listing: %v\n", err)
		os.Exit(1)
	}

	reg, stats, err = registry.LoadCSV(cfg.Registry.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load company listing: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📋 Loaded %d NSE companies (%d rows, %d skipped)\n", stats.Loaded, stats.Rows, stats.Skipped)
	return reg
}

// parseSymbols validates a comma-separated symbol list against the
// registry. Unknown symbols are reported and dropped.
func parseSymbols(list string, reg *registry.Registry) []string {
	var symbols []string
	for _, raw := range strings.Split(list, ",") {
		sym := strings.ToUpper(strings.TrimSpace(raw))
		if sym == "" {
			continue
		}
		if _, ok := reg.Lookup(sym); !ok {
			fmt.Printf("⚠️  Symbol %s not found in NSE listing, skipping\n", sym)
			continue
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// filterByCompanies keeps only results that matched one of the target
// symbols. Batch-wide keyword counts are left as collected.
func filterByCompanies(batch analysis.BatchResult, targets []string) analysis.BatchResult {
	want := make(map[string]bool, len(targets))
	for _, sym := range targets {
		want[sym] = true
	}

	kept := make([]analysis.AnalysisResult, 0, len(batch.Results))
	for _, res := range batch.Results {
		for _, m := range res.Matches {
			if want[m.CompanySymbol] {
				kept = append(kept, res)
				break
			}
		}
	}
	batch.Results = kept
	return batch
}

func analysisConfig(cfg *store.Config) analysis.Config {
	a := cfg.Analysis
	return analysis.Config{
		SentimentThreshold:    a.SentimentThreshold,
		RelevanceThreshold:    a.RelevanceThreshold,
		MaxArticlesPerCompany: a.MaxArticlesPerCompany,
		NormalizingConstant:   a.NormalizingConstant,
		Workers:               a.Workers,
		Weights: analysis.ScoringWeights{
			Sentiment: a.Weights.Sentiment,
			Keyword:   a.Weights.Keyword,
			Company:   a.Weights.Company,
			Source:    a.Weights.Source,
		},
		ExtraStopWords:   a.ExtraStopWords,
		FuzzyWindowSlack: a.FuzzyWindowSlack,
		FuzzyAlgorithm:   a.FuzzyAlgorithm,
	}
}

func saveResultsJSON(res *report.Result, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create JSON file: %v\n", err)
		return
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write JSON: %v\n", err)
		return
	}

	fmt.Printf("💾 Results saved to %s\n", filename)
}
