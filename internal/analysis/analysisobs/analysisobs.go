package analysisobs

import (
	"context"
	"time"

	"nse-news-analyzer/internal/analysis"
	"nse-news-analyzer/internal/interfaces"
	"nse-news-analyzer/internal/logger"
	"nse-news-analyzer/internal/trace"
)

// observableAnalyzer wraps a NewsAnalyzer with logging and tracing
type observableAnalyzer struct {
	inner interfaces.NewsAnalyzer
}

// Wrap wraps a NewsAnalyzer with observability middleware
func Wrap(analyzer interfaces.NewsAnalyzer) interfaces.NewsAnalyzer {
	return &observableAnalyzer{inner: analyzer}
}

// AnalyzeArticle wraps the AnalyzeArticle method with logging and tracing
func (o *observableAnalyzer) AnalyzeArticle(ctx context.Context, article analysis.Article) (analysis.AnalysisResult, error) {
	ctx, span := trace.StartSpan(ctx, "analysis.AnalyzeArticle")
	defer span.End()

	logger.Debug(ctx, "Analyzing article",
		"article_id", article.ID,
		"source", article.SourceName)
	start := time.Now()

	result, err := o.inner.AnalyzeArticle(ctx, article)

	duration := time.Since(start)
	if err != nil {
		logger.ErrorWithErr(ctx, "Article analysis failed", err,
			"article_id", article.ID,
			"duration_ms", duration.Milliseconds())
		span.RecordError(err)
		return result, err
	}

	if logger.IsDebugEnabled() {
		for _, m := range result.Matches {
			logger.Match(ctx, result.ArticleID, m.CompanySymbol, string(m.MatchKind), m.Confidence)
		}
	}
	logger.Scored(ctx, result.ArticleID, result.InvestmentScore,
		string(result.ImpactCategory), string(result.SentimentLabel),
		"match_count", len(result.Matches),
		"duration_ms", duration.Milliseconds())

	return result, nil
}

// AnalyzeBatch wraps the AnalyzeBatch method with logging and tracing
func (o *observableAnalyzer) AnalyzeBatch(ctx context.Context, articles []analysis.Article) (analysis.BatchResult, error) {
	ctx, span := trace.StartSpan(ctx, "analysis.AnalyzeBatch")
	defer span.End()

	logger.Info(ctx, "Starting batch analysis", "article_count", len(articles))
	start := time.Now()

	batch, err := o.inner.AnalyzeBatch(ctx, articles)

	duration := time.Since(start)
	if err != nil {
		logger.ErrorWithErr(ctx, "Batch analysis failed", err,
			"article_count", len(articles),
			"duration_ms", duration.Milliseconds())
		span.RecordError(err)
		return batch, err
	}

	for _, rej := range batch.Rejected {
		logger.Rejected(ctx, rej.ArticleID, rej.Reason)
	}
	logger.Info(ctx, "Batch analysis completed",
		"total_input", batch.TotalInput,
		"analyzed", len(batch.Results),
		"rejected", len(batch.Rejected),
		"duration_ms", duration.Milliseconds())

	return batch, nil
}
