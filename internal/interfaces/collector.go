package interfaces

import (
	"context"

	"nse-news-analyzer/internal/analysis"
)

// ArticleCollector defines the interface for gathering candidate news
// articles before analysis
type ArticleCollector interface {
	// Collect fetches articles from every configured source
	Collect(ctx context.Context) ([]analysis.Article, error)

	// CollectSource fetches articles from a single source by name
	CollectSource(ctx context.Context, sourceName string) ([]analysis.Article, error)
}
