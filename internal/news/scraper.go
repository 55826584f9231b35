package news

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"nse-news-analyzer/internal/analysis"
	"nse-news-analyzer/internal/logger"
)

// contentSelectors are the page regions article bodies live in across the
// configured outlets.
const contentSelectors = "article, div.article-body, div.content-body, div.story-content, div.artText"

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Enricher fetches full article pages for items whose feed summary is too
// short to analyze.
type Enricher struct {
	timeout   time.Duration
	limiter   *RateLimiter
	minLength int
}

// NewEnricher creates an enricher. Articles with at least minLength body
// characters are left untouched.
func NewEnricher(timeout time.Duration, limiter *RateLimiter, minLength int) *Enricher {
	return &Enricher{
		timeout:   timeout,
		limiter:   limiter,
		minLength: minLength,
	}
}

// Enrich fills in short article bodies by scraping their pages. Articles
// that cannot be fetched keep their feed summary.
func (e *Enricher) Enrich(ctx context.Context, articles []analysis.Article) []analysis.Article {
	enriched := make([]analysis.Article, len(articles))
	copy(enriched, articles)

	for i := range enriched {
		if len(enriched[i].Body) >= e.minLength || enriched[i].URL == "" {
			continue
		}
		if err := e.limiter.Wait(ctx); err != nil {
			break
		}
		if content := e.fetchArticleContent(ctx, enriched[i].URL); content != "" {
			enriched[i].Body = content
		}
	}

	return enriched
}

// fetchArticleContent pulls the paragraph text out of an article page.
func (e *Enricher) fetchArticleContent(ctx context.Context, articleURL string) string {
	domain := hostOf(articleURL)
	if domain == "" {
		return ""
	}

	c := colly.NewCollector(
		colly.AllowedDomains(domain),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(e.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", browserUserAgent)
	})

	var content string
	c.OnHTML(contentSelectors, func(el *colly.HTMLElement) {
		if content != "" {
			return
		}
		paragraphs := []string{}
		el.ForEach("p", func(_ int, p *colly.HTMLElement) {
			text := strings.TrimSpace(p.Text)
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		content = strings.Join(paragraphs, "\n\n")
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.Debug(ctx, "Article fetch failed", "url", articleURL, "error", err.Error())
	})

	if err := c.Visit(articleURL); err != nil {
		logger.Debug(ctx, "Article visit failed", "url", articleURL, "error", err.Error())
		return ""
	}
	c.Wait()

	return content
}

// hostOf extracts the hostname from a URL
func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
