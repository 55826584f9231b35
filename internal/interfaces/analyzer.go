package interfaces

import (
	"context"

	"nse-news-analyzer/internal/analysis"
)

// NewsAnalyzer defines the interface for scoring news articles against
// the company registry
type NewsAnalyzer interface {
	// AnalyzeArticle scores a single article
	AnalyzeArticle(ctx context.Context, article analysis.Article) (analysis.AnalysisResult, error)

	// AnalyzeBatch scores a batch of articles and aggregates keyword counts
	AnalyzeBatch(ctx context.Context, articles []analysis.Article) (analysis.BatchResult, error)
}
