package news

import (
	"strings"
	"unicode"

	"nse-news-analyzer/internal/analysis"
)

// duplicateTitleThreshold is the token-set overlap above which two titles
// count as the same story.
const duplicateTitleThreshold = 0.7

// Deduplicate drops articles whose title overlaps an earlier one beyond
// the threshold. The first occurrence wins, so feed order decides which
// copy survives.
func Deduplicate(articles []analysis.Article) []analysis.Article {
	if len(articles) < 2 {
		return articles
	}

	kept := make([]analysis.Article, 0, len(articles))
	keptTokens := make([]map[string]bool, 0, len(articles))

	for _, article := range articles {
		tokens := titleTokens(article.Title)
		dup := false
		for _, prev := range keptTokens {
			if titleJaccard(tokens, prev) > duplicateTitleThreshold {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		kept = append(kept, article)
		keptTokens = append(keptTokens, tokens)
	}
	return kept
}

// titleTokens lower-cases a title and splits it into a word set.
func titleTokens(title string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// titleJaccard computes intersection over union of two token sets. Two
// empty sets overlap fully: identical blank titles are duplicates.
func titleJaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for t := range a {
		if b[t] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
