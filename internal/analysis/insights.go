package analysis

import (
	"sort"

	"nse-news-analyzer/internal/registry"
)

const (
	maxTopCompanies = 10
	maxTopKeywords  = 10
)

// CompanyInsight aggregates every scored article that matched one
// company.
type CompanyInsight struct {
	Symbol             string   `json:"symbol"`
	CompanyName        string   `json:"company_name"`
	ArticleCount       int      `json:"article_count"`
	MeanConfidence     float64  `json:"mean_confidence"`
	AvgInvestmentScore float64  `json:"avg_investment_score"`
	TopArticles        []string `json:"top_articles"`
}

// KeywordCount is one lexicon word with its total hit count across the
// batch.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// HighImpactArticle is the slim view of a high scoring article used in
// summaries.
type HighImpactArticle struct {
	ArticleID       string  `json:"article_id"`
	InvestmentScore float64 `json:"investment_score"`
	Impact          string  `json:"impact"`
}

// Summary condenses a batch into the headline numbers a report needs.
type Summary struct {
	TotalArticles         int                    `json:"total_articles"`
	Analyzed              int                    `json:"analyzed"`
	Rejected              int                    `json:"rejected"`
	SentimentDistribution map[SentimentLabel]int `json:"sentiment_distribution"`
	ImpactDistribution    map[Impact]int         `json:"impact_distribution"`
	AvgInvestmentScore    float64                `json:"avg_investment_score"`
	AvgSentimentPolarity  float64                `json:"avg_sentiment_polarity"`
	HighImpact            []HighImpactArticle    `json:"high_impact"`
	TopCompanies          []CompanyInsight       `json:"top_companies"`
	TopKeywords           []KeywordCount         `json:"top_keywords"`
}

// BuildSummary rolls a batch up into distributions, averages, company
// rankings, and keyword rankings. Articles that matched no company count
// toward the distributions but not toward any company ranking.
func BuildSummary(batch BatchResult, reg *registry.Registry) Summary {
	s := Summary{
		TotalArticles:         batch.TotalInput,
		Analyzed:              len(batch.Results),
		Rejected:              len(batch.Rejected),
		SentimentDistribution: make(map[SentimentLabel]int),
		ImpactDistribution:    make(map[Impact]int),
	}

	type companyAgg struct {
		count    int
		confSum  float64
		scoreSum float64
		articles []scoredID
	}
	byCompany := make(map[string]*companyAgg)

	var scoreSum, polaritySum float64
	for _, res := range batch.Results {
		s.SentimentDistribution[res.SentimentLabel]++
		s.ImpactDistribution[res.ImpactCategory]++
		scoreSum += res.InvestmentScore
		polaritySum += res.SentimentPolarity

		if res.ImpactCategory == ImpactHigh {
			s.HighImpact = append(s.HighImpact, HighImpactArticle{
				ArticleID:       res.ArticleID,
				InvestmentScore: res.InvestmentScore,
				Impact:          res.ImpactDisplay(),
			})
		}

		for _, m := range res.Matches {
			agg := byCompany[m.CompanySymbol]
			if agg == nil {
				agg = &companyAgg{}
				byCompany[m.CompanySymbol] = agg
			}
			agg.count++
			agg.confSum += m.Confidence
			agg.scoreSum += res.InvestmentScore
			agg.articles = append(agg.articles, scoredID{res.ArticleID, res.InvestmentScore})
		}
	}

	if len(batch.Results) > 0 {
		n := float64(len(batch.Results))
		s.AvgInvestmentScore = scoreSum / n
		s.AvgSentimentPolarity = polaritySum / n
	}

	sort.Slice(s.HighImpact, func(i, j int) bool {
		if s.HighImpact[i].InvestmentScore == s.HighImpact[j].InvestmentScore {
			return s.HighImpact[i].ArticleID < s.HighImpact[j].ArticleID
		}
		return s.HighImpact[i].InvestmentScore > s.HighImpact[j].InvestmentScore
	})

	maxArticles := batch.Config.withDefaults().MaxArticlesPerCompany
	for symbol, agg := range byCompany {
		insight := CompanyInsight{
			Symbol:             symbol,
			ArticleCount:       agg.count,
			MeanConfidence:     agg.confSum / float64(agg.count),
			AvgInvestmentScore: agg.scoreSum / float64(agg.count),
			TopArticles:        topArticleIDs(agg.articles, maxArticles),
		}
		if rec, ok := reg.Lookup(symbol); ok {
			insight.CompanyName = rec.CanonicalName
		}
		s.TopCompanies = append(s.TopCompanies, insight)
	}
	sort.Slice(s.TopCompanies, func(i, j int) bool {
		a, b := s.TopCompanies[i], s.TopCompanies[j]
		if a.ArticleCount != b.ArticleCount {
			return a.ArticleCount > b.ArticleCount
		}
		if a.MeanConfidence != b.MeanConfidence {
			return a.MeanConfidence > b.MeanConfidence
		}
		return a.Symbol < b.Symbol
	})
	if len(s.TopCompanies) > maxTopCompanies {
		s.TopCompanies = s.TopCompanies[:maxTopCompanies]
	}

	for word, count := range batch.KeywordCounts {
		s.TopKeywords = append(s.TopKeywords, KeywordCount{Word: word, Count: count})
	}
	sort.Slice(s.TopKeywords, func(i, j int) bool {
		if s.TopKeywords[i].Count != s.TopKeywords[j].Count {
			return s.TopKeywords[i].Count > s.TopKeywords[j].Count
		}
		return s.TopKeywords[i].Word < s.TopKeywords[j].Word
	})
	if len(s.TopKeywords) > maxTopKeywords {
		s.TopKeywords = s.TopKeywords[:maxTopKeywords]
	}

	return s
}

type scoredID struct {
	id    string
	score float64
}

// topArticleIDs keeps the highest scoring article IDs, at most max of
// them.
func topArticleIDs(articles []scoredID, max int) []string {
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].score == articles[j].score {
			return articles[i].id < articles[j].id
		}
		return articles[i].score > articles[j].score
	})
	if max > 0 && len(articles) > max {
		articles = articles[:max]
	}
	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.id
	}
	return ids
}
