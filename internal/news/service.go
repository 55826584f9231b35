package news

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nse-news-analyzer/internal/analysis"
	"nse-news-analyzer/internal/logger"
	"nse-news-analyzer/internal/store"
)

// rateLimiterBurst is the number of requests allowed to go out back to
// back before the per-minute pacing kicks in.
const rateLimiterBurst = 5

// Service collects articles from the configured live feeds. It handles
// rate limiting, caching, optional content enrichment, recency and
// length filtering, and duplicate removal.
type Service struct {
	cfg      *store.Config
	sources  []Source
	cache    *FeedCache
	fetcher  *feedFetcher
	enricher *Enricher
}

// NewService creates a live collector from configuration.
func NewService(cfg *store.Config) *Service {
	col := cfg.Collector

	refill := 2 * time.Second
	if col.RequestsPerMinute > 0 {
		refill = time.Minute / time.Duration(col.RequestsPerMinute)
	}
	limiter := NewRateLimiter(rateLimiterBurst, refill)
	cache := NewFeedCache(col.CacheDir, time.Duration(col.CacheTTLMinutes)*time.Minute)

	s := &Service{
		cfg:     cfg,
		sources: DefaultSources(),
		cache:   cache,
		fetcher: newFeedFetcher(cache, limiter),
	}
	if col.EnrichContent {
		timeout := time.Duration(col.RequestTimeoutSec) * time.Second
		s.enricher = NewEnricher(timeout, limiter, col.MinArticleLength)
	}
	return s
}

// Collect fetches from every configured source. Individual source
// failures are logged and skipped; the call fails only when every source
// fails or the context ends.
func (s *Service) Collect(ctx context.Context) ([]analysis.Article, error) {
	timer := logger.StartOperation(ctx, "news.Collect", "sources", len(s.sources))
	ctx = timer.GetContext()
	logger.Info(ctx, "Collecting news", "sources", len(s.sources))

	// Sweep stale cache entries before fetching
	_ = s.cache.CleanupExpired()

	var all []analysis.Article
	failed := 0
	for _, src := range s.sources {
		articles, err := s.fetcher.fetch(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				timer.EndWithError(ctx.Err())
				return nil, ctx.Err()
			}
			logger.ErrorWithErr(ctx, "Source collection failed", err, "source", src.Name)
			failed++
			continue
		}
		all = append(all, s.capPerSource(articles)...)
	}
	if failed == len(s.sources) && len(s.sources) > 0 {
		err := fmt.Errorf("all %d news sources failed", failed)
		timer.EndWithError(err)
		return nil, err
	}

	all = s.prepare(ctx, all)
	timer.End("articles", len(all))
	logger.Info(ctx, "News collection completed", "articles", len(all))
	return all, nil
}

// CollectSource fetches and prepares articles from one source by name.
func (s *Service) CollectSource(ctx context.Context, sourceName string) ([]analysis.Article, error) {
	src, ok := FindSource(s.sources, sourceName)
	if !ok {
		return nil, fmt.Errorf("unknown news source %q", sourceName)
	}

	articles, err := s.fetcher.fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return s.prepare(ctx, s.capPerSource(articles)), nil
}

func (s *Service) capPerSource(articles []analysis.Article) []analysis.Article {
	max := s.cfg.Collector.MaxArticlesPerSource
	if max > 0 && len(articles) > max {
		return articles[:max]
	}
	return articles
}

// prepare runs the post-fetch pipeline: enrichment, recency and length
// filters, dedup, and a newest-first sort.
func (s *Service) prepare(ctx context.Context, articles []analysis.Article) []analysis.Article {
	if s.enricher != nil {
		articles = s.enricher.Enrich(ctx, articles)
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Collector.DaysLookback)
	minLength := s.cfg.Collector.MinArticleLength

	kept := make([]analysis.Article, 0, len(articles))
	for _, a := range articles {
		if !recentSince(a, cutoff) {
			continue
		}
		if len(a.Title)+len(a.Body) < minLength {
			continue
		}
		kept = append(kept, a)
	}

	kept = Deduplicate(kept)

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].PublishedAt.Equal(kept[j].PublishedAt) {
			return kept[i].ID < kept[j].ID
		}
		return kept[i].PublishedAt.After(kept[j].PublishedAt)
	})
	return kept
}
