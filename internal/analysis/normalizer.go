package analysis

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// defaultStopWords are dropped from the normalized token stream. The set
// is deliberately function-words only; domain words stay in so keyword
// density and fuzzy matching see them.
var defaultStopWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "nor": true, "not": true, "no": true,
	"if": true, "then": true, "than": true, "that": true, "this": true,
	"these": true, "those": true, "there": true, "here": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "am": true,
	"has": true, "have": true, "had": true, "having": true,
	"do": true, "does": true, "did": true, "doing": true,
	"will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "must": true,
	"to": true, "of": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "with": true, "from": true, "as": true, "into": true,
	"onto": true, "over": true, "under": true, "about": true, "after": true,
	"before": true, "between": true, "during": true, "through": true,
	"up": true, "down": true, "out": true, "off": true, "above": true,
	"below": true, "again": true, "further": true, "once": true,
	"when": true, "where": true, "why": true, "how": true,
	"all": true, "any": true, "both": true, "each": true, "few": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "own": true, "same": true, "so": true, "too": true,
	"very": true, "also": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"we": true, "our": true, "us": true, "you": true, "your": true,
	"he": true, "she": true, "his": true, "her": true, "him": true,
	"i": true, "me": true, "my": true, "who": true, "whom": true, "which": true, "what": true,
}

// Normalizer turns raw article text into the token stream shared by the
// matcher and the scorer. It is deterministic and total: any input,
// including empty text and broken HTML, yields a (possibly empty) token
// sequence, never an error.
type Normalizer struct {
	stopWords map[string]bool
}

// NewNormalizer builds a normalizer with the default stop-word set plus
// any extra words from configuration.
func NewNormalizer(extraStopWords []string) *Normalizer {
	if len(extraStopWords) == 0 {
		return &Normalizer{stopWords: defaultStopWords}
	}
	stop := make(map[string]bool, len(defaultStopWords)+len(extraStopWords))
	for w := range defaultStopWords {
		stop[w] = true
	}
	for _, w := range extraStopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			stop[w] = true
		}
	}
	return &Normalizer{stopWords: stop}
}

// Normalize lower-cases, strips HTML remnants and punctuation, collapses
// whitespace, drops stop words, and preserves token order.
func (n *Normalizer) Normalize(text string) []string {
	if text == "" {
		return nil
	}
	raw := tokenize(stripHTML(text))
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if n.stopWords[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// Canonical returns the full cleaned token stream joined by single
// spaces, stop words included. Contiguous phrase checks run against this
// form: dropping stop words there would break adjacency for names like
// "Bank of Baroda".
func (n *Normalizer) Canonical(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(tokenize(stripHTML(text)), " ")
}

// stripHTML removes markup and decodes entities when the text looks like
// it carries any; plain text passes through untouched.
func stripHTML(text string) string {
	if !strings.ContainsAny(text, "<&") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return text
	}
	return doc.Text()
}

// tokenize splits on any non-alphanumeric rune, lower-casing as it goes.
func tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/6)
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens
}
