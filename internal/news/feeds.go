package news

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"nse-news-analyzer/internal/analysis"
	"nse-news-analyzer/internal/logger"
)

// feedFetcher pulls one source's RSS feed and converts its items into
// articles. Fetches are rate limited and cached per feed URL.
type feedFetcher struct {
	parser  *gofeed.Parser
	cache   *FeedCache
	limiter *RateLimiter
}

func newFeedFetcher(cache *FeedCache, limiter *RateLimiter) *feedFetcher {
	return &feedFetcher{
		parser:  gofeed.NewParser(),
		cache:   cache,
		limiter: limiter,
	}
}

// fetch returns the current articles for a source, from cache when fresh.
func (f *feedFetcher) fetch(ctx context.Context, src Source) ([]analysis.Article, error) {
	data, err := f.cache.GetOrFetch(src.RSSURL, func() ([]byte, error) {
		articles, err := f.fetchLive(ctx, src)
		if err != nil {
			return nil, err
		}
		return json.Marshal(articles)
	})
	if err != nil {
		return nil, err
	}

	var articles []analysis.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("decode cached feed %s: %w", src.Name, err)
	}
	return articles, nil
}

func (f *feedFetcher) fetchLive(ctx context.Context, src Source) ([]analysis.Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug(ctx, "Fetching feed", "source", src.Name, "url", src.RSSURL)

	feed, err := f.parser.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.Name, err)
	}

	articles := make([]analysis.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		article := analysis.Article{
			ID:         articleID(src.Name, item),
			Title:      title,
			Body:       itemBody(item),
			SourceName: src.Name,
			URL:        item.Link,
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			article.PublishedAt = *item.UpdatedParsed
		}

		articles = append(articles, article)
	}

	logger.Debug(ctx, "Feed fetched", "source", src.Name, "items", len(articles))
	return articles, nil
}

// itemBody picks the richest text a feed item offers, stripped of markup.
func itemBody(item *gofeed.Item) string {
	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}
	return stripMarkup(body)
}

// articleID derives a stable identifier for a feed item: the item GUID
// when the feed provides one, then the link, then a title hash.
func articleID(sourceName string, item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return item.Link
	}
	hash := md5.Sum([]byte(sourceName + "|" + item.Title))
	return fmt.Sprintf("%s-%x", strings.ToLower(strings.ReplaceAll(sourceName, " ", "-")), hash[:6])
}

// stripMarkup removes HTML tags feeds embed in summaries.
func stripMarkup(s string) string {
	if s == "" || !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

// recentSince reports whether an article falls inside the lookback
// window. Articles without a timestamp are kept.
func recentSince(article analysis.Article, cutoff time.Time) bool {
	if article.PublishedAt.IsZero() {
		return true
	}
	return !article.PublishedAt.Before(cutoff)
}
