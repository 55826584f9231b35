package analysis

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// vocabulary mixes company tokens, lexicon words, stop words, and noise so
// generated articles hit every pipeline branch.
var vocabulary = []interface{}{
	"tcs", "tata", "consultancy", "services", "limited",
	"reliance", "industries", "hdfc", "bank",
	"profit", "loss", "surge", "crash", "fraud", "growth",
	"acquisition", "lawsuit", "dividend", "quarterly", "results",
	"the", "of", "and", "announces", "rally", "falls",
	"cricket", "weather", "market", "shares",
}

func wordsGen() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(vocabulary...))
}

// Property: every numeric output of the pipeline stays inside its
// documented bounds, whatever the input text.
func TestProperty_ScoresStayBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	analyzer := NewAnalyzer(DefaultConfig(), testRegistry())

	properties.Property("scores stay within bounds", prop.ForAll(
		func(words []string) bool {
			article := Article{ID: "p1", Title: strings.Join(words, " ")}
			res, err := analyzer.AnalyzeArticle(context.Background(), article)
			if err != nil {
				return false
			}
			if res.InvestmentScore < 0 || res.InvestmentScore > 1 {
				return false
			}
			if res.SentimentPolarity < -1 || res.SentimentPolarity > 1 {
				return false
			}
			if res.KeywordScore < 0 || res.KeywordScore > 1 {
				return false
			}
			for _, m := range res.Matches {
				if m.Confidence <= 0 || m.Confidence > 1 {
					return false
				}
			}
			return true
		},
		wordsGen(),
	))

	properties.TestingRun(t)
}

// Property: analyzing the same article twice yields structurally
// identical results.
func TestProperty_AnalysisIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	analyzer := NewAnalyzer(DefaultConfig(), testRegistry())

	properties.Property("repeat analysis is identical", prop.ForAll(
		func(words []string) bool {
			article := Article{ID: "p1", Title: strings.Join(words, " "), SourceName: "Mint"}
			first, err1 := analyzer.AnalyzeArticle(context.Background(), article)
			second, err2 := analyzer.AnalyzeArticle(context.Background(), article)
			if err1 != nil || err2 != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		wordsGen(),
	))

	properties.TestingRun(t)
}

// Property: batch analysis produces exactly the per-article results, in
// input order, regardless of worker count.
func TestProperty_BatchMatchesSingleAnalysis(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	analyzer := NewAnalyzer(DefaultConfig(), testRegistry())

	serialCfg := DefaultConfig()
	serialCfg.Workers = 1
	serial := NewAnalyzer(serialCfg, testRegistry())

	properties.Property("batch equals sequential", prop.ForAll(
		func(texts [][]string) bool {
			articles := make([]Article, len(texts))
			for i, words := range texts {
				articles[i] = Article{ID: "p" + string(rune('a'+i)), Title: strings.Join(words, " ")}
			}

			batch, err := analyzer.AnalyzeBatch(context.Background(), articles)
			if err != nil {
				return false
			}
			sequential, err := serial.AnalyzeBatch(context.Background(), articles)
			if err != nil {
				return false
			}
			if !reflect.DeepEqual(batch.Results, sequential.Results) {
				return false
			}

			if len(batch.Results) != len(articles) {
				return false
			}
			for i, res := range batch.Results {
				solo, err := analyzer.AnalyzeArticle(context.Background(), articles[i])
				if err != nil || !reflect.DeepEqual(res, solo) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(5, wordsGen()),
	))

	properties.TestingRun(t)
}

// Property: the candidate pre-filter never changes match outcomes
// compared to evaluating every company.
func TestProperty_PrefilterNeutral(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	norm := NewNormalizer(nil)
	matcher := NewMatcher(DefaultConfig(), testRegistry(), norm)

	properties.Property("pre-filter preserves outcomes", prop.ForAll(
		func(words []string) bool {
			text := strings.Join(words, " ")
			tokens := norm.Normalize(text)
			return reflect.DeepEqual(matcher.Match(tokens, text), matcher.matchAll(tokens, text))
		},
		wordsGen(),
	))

	properties.TestingRun(t)
}

// Property: match confidences always come from the rule that produced
// them: fixed values for the exact rules, the scaled open interval for
// fuzzy ones, and results arrive sorted.
func TestProperty_MatchConfidencesWellFormed(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	norm := NewNormalizer(nil)
	matcher := NewMatcher(DefaultConfig(), testRegistry(), norm)

	properties.Property("confidence matches rule", prop.ForAll(
		func(words []string) bool {
			text := strings.Join(words, " ")
			results := matcher.Match(norm.Normalize(text), text)

			seen := make(map[string]bool)
			for i, res := range results {
				if seen[res.CompanySymbol] {
					return false
				}
				seen[res.CompanySymbol] = true
				if i > 0 && results[i-1].Confidence < res.Confidence {
					return false
				}
				switch res.MatchKind {
				case MatchExactSymbol:
					if res.Confidence != 1.0 {
						return false
					}
				case MatchExactName:
					if res.Confidence != 0.95 {
						return false
					}
				case MatchAlias:
					if res.Confidence != 0.85 {
						return false
					}
				case MatchFuzzy:
					if res.Confidence <= 0.3 || res.Confidence > 0.8 {
						return false
					}
				default:
					return false
				}
			}
			return true
		},
		wordsGen(),
	))

	properties.TestingRun(t)
}

// Property: raising the fuzzy acceptance threshold can only remove fuzzy
// matches, never add them, and leaves the exact rules untouched.
func TestProperty_FuzzyThresholdMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	norm := NewNormalizer(nil)

	thresholds := []float64{0.2, 0.35, 0.5, 0.65}
	matchers := make([]*Matcher, len(thresholds))
	for i, th := range thresholds {
		cfg := DefaultConfig()
		cfg.RelevanceThreshold = th
		matchers[i] = NewMatcher(cfg, testRegistry(), norm)
	}

	properties.Property("fuzzy matches shrink as the threshold rises", prop.ForAll(
		func(words []string) bool {
			text := strings.Join(words, " ")
			tokens := norm.Normalize(text)

			var prevFuzzy map[string]bool
			var prevExact []MatchResult
			for i, m := range matchers {
				fuzzy := make(map[string]bool)
				var exact []MatchResult
				for _, res := range m.Match(tokens, text) {
					if res.MatchKind == MatchFuzzy {
						fuzzy[res.CompanySymbol] = true
					} else {
						exact = append(exact, res)
					}
				}
				if i > 0 {
					for sym := range fuzzy {
						if !prevFuzzy[sym] {
							return false
						}
					}
					if !reflect.DeepEqual(exact, prevExact) {
						return false
					}
				}
				prevFuzzy, prevExact = fuzzy, exact
			}
			return true
		},
		wordsGen(),
	))

	properties.TestingRun(t)
}
