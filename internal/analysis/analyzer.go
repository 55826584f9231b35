package analysis

import (
	"context"
	"strings"
	"sync"
	"time"

	"nse-news-analyzer/internal/registry"
)

// Analyzer runs the full scoring pipeline: normalize, match, score,
// aggregate. One Analyzer is safe for concurrent use; all shared state is
// built in NewAnalyzer and read-only afterwards.
type Analyzer struct {
	cfg     Config
	reg     *registry.Registry
	norm    *Normalizer
	matcher *Matcher
	scorer  *SentimentScorer
	agg     *Aggregator
}

func NewAnalyzer(cfg Config, reg *registry.Registry) *Analyzer {
	cfg = cfg.withDefaults()
	norm := NewNormalizer(cfg.ExtraStopWords)
	return &Analyzer{
		cfg:     cfg,
		reg:     reg,
		norm:    norm,
		matcher: NewMatcher(cfg, reg, norm),
		scorer:  NewSentimentScorer(cfg),
		agg:     NewAggregator(cfg),
	}
}

func (a *Analyzer) Config() Config { return a.cfg }

// AnalyzeArticle scores a single article. Articles without an ID are
// rejected with a MalformedInputError; every other input produces a
// result, falling back to a neutral zero result when the text carries no
// tokens at all.
func (a *Analyzer) AnalyzeArticle(ctx context.Context, article Article) (AnalysisResult, error) {
	res, _, err := a.analyze(ctx, article)
	return res, err
}

func (a *Analyzer) analyze(ctx context.Context, article Article) (AnalysisResult, map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisResult{}, nil, err
	}
	if strings.TrimSpace(article.ID) == "" {
		return AnalysisResult{}, nil, &MalformedInputError{Reason: "missing article id"}
	}

	text := analysisText(article)
	tokens := a.norm.Normalize(text)

	res := AnalysisResult{
		ArticleID:      article.ID,
		SentimentLabel: SentimentNeutral,
		ImpactCategory: ImpactLow,
	}
	if len(tokens) == 0 {
		return res, nil, nil
	}

	res.Matches = a.matcher.Match(tokens, text)
	res.SentimentPolarity, res.KeywordScore = a.scorer.Score(tokens)
	res.SentimentLabel = a.scorer.Label(res.SentimentPolarity)
	res.InvestmentScore = a.agg.Score(res.SentimentPolarity, res.KeywordScore, res.Matches, article.SourceName)
	res.ImpactCategory = a.agg.Impact(res.InvestmentScore)

	return res, a.scorer.KeywordHits(tokens), nil
}

// analysisText joins title and body into the text the pipeline works on.
func analysisText(article Article) string {
	title := strings.TrimSpace(article.Title)
	body := strings.TrimSpace(article.Body)
	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + ". " + body
	}
}

// AnalyzeBatch scores a slice of articles on a small worker pool.
// Results keep the input order, each article is scored independently, and
// malformed articles land in Rejected without affecting the rest, so the
// output is identical no matter how the batch is split or parallelized.
// Cancelling the context stops submission; articles already picked up
// still finish and are included.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, articles []Article) (BatchResult, error) {
	batch := BatchResult{
		AnalyzedAt:    time.Now(),
		TotalInput:    len(articles),
		KeywordCounts: make(map[string]int),
		Config:        a.cfg,
	}

	type slot struct {
		res      AnalysisResult
		hits     map[string]int
		rejected *RejectedArticle
		done     bool
	}
	slots := make([]slot, len(articles))

	workers := a.cfg.Workers
	if workers > len(articles) {
		workers = len(articles)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, hits, err := a.analyze(context.WithoutCancel(ctx), articles[i])
				if err != nil {
					slots[i].rejected = &RejectedArticle{
						ArticleID: articles[i].ID,
						Reason:    err.Error(),
					}
				} else {
					slots[i].res = res
					slots[i].hits = hits
				}
				slots[i].done = true
			}
		}()
	}

	var submitErr error
submit:
	for i := range articles {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break submit
		}
		select {
		case <-ctx.Done():
			submitErr = ctx.Err()
			break submit
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i := range slots {
		if !slots[i].done {
			continue
		}
		if slots[i].rejected != nil {
			batch.Rejected = append(batch.Rejected, *slots[i].rejected)
			continue
		}
		batch.Results = append(batch.Results, slots[i].res)
		for word, n := range slots[i].hits {
			batch.KeywordCounts[word] += n
		}
	}

	return batch, submitErr
}
