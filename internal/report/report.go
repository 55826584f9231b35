package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"nse-news-analyzer/internal/analysis"
)

// Result bundles everything one pipeline run produced. It is the unit of
// persistence and rendering.
type Result struct {
	GeneratedAt   time.Time            `json:"generated_at"`
	Mode          string               `json:"mode"`
	TargetSymbols []string             `json:"target_symbols,omitempty"`
	Articles      []analysis.Article   `json:"articles"`
	Batch         analysis.BatchResult `json:"batch"`
	Summary       analysis.Summary     `json:"summary"`
}

const sectionRule = "═══════════════════════════════════════════════════════════════"
const subRule = "─────────────────────────────────────────────────────────────"

// WriteText renders the run as a human readable report.
func WriteText(w io.Writer, res *Result) {
	s := &res.Summary

	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, "                      ANALYSIS SUMMARY")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintf(w, "Generated:          %s\n", formatIST(res.GeneratedAt))
	fmt.Fprintf(w, "Mode:               %s\n", res.Mode)
	if len(res.TargetSymbols) > 0 {
		fmt.Fprintf(w, "Target Companies:   %s\n", strings.Join(res.TargetSymbols, ", "))
	}
	fmt.Fprintf(w, "Total Articles:     %d\n", s.TotalArticles)
	fmt.Fprintf(w, "Analyzed:           %d\n", s.Analyzed)
	if s.Rejected > 0 {
		fmt.Fprintf(w, "Rejected:           %d\n", s.Rejected)
	}
	fmt.Fprintf(w, "Avg Investment:     %.3f\n", s.AvgInvestmentScore)
	fmt.Fprintf(w, "Avg Sentiment:      %+.3f\n", s.AvgSentimentPolarity)
	fmt.Fprintln(w)

	writeDistributions(w, s)
	writeTopCompanies(w, s)
	writeHighImpact(w, res)
	writeTopKeywords(w, s)
}

func writeDistributions(w io.Writer, s *analysis.Summary) {
	fmt.Fprintln(w, "📊 Sentiment Distribution:")
	for _, label := range []analysis.SentimentLabel{
		analysis.SentimentPositive, analysis.SentimentNegative, analysis.SentimentNeutral,
	} {
		fmt.Fprintf(w, "  %-10s %d\n", string(label)+":", s.SentimentDistribution[label])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "📈 Impact Distribution:")
	for _, impact := range []analysis.Impact{
		analysis.ImpactHigh, analysis.ImpactMedium, analysis.ImpactLow,
	} {
		fmt.Fprintf(w, "  %-10s %d\n", string(impact)+":", s.ImpactDistribution[impact])
	}
	fmt.Fprintln(w)
}

func writeTopCompanies(w io.Writer, s *analysis.Summary) {
	if len(s.TopCompanies) == 0 {
		fmt.Fprintln(w, "⚠️  No company mentions detected in this batch")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, "                    TOP COMPANIES IN THE NEWS")
	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w)

	for i, c := range s.TopCompanies {
		writeCompanyInsight(w, i+1, &c)
		fmt.Fprintln(w)
	}
}

func writeCompanyInsight(w io.Writer, rank int, c *analysis.CompanyInsight) {
	emoji := scoreEmoji(c.AvgInvestmentScore)
	if c.CompanyName != "" {
		fmt.Fprintf(w, "%s Rank #%d: %s (%s)\n", emoji, rank, c.Symbol, c.CompanyName)
	} else {
		fmt.Fprintf(w, "%s Rank #%d: %s\n", emoji, rank, c.Symbol)
	}
	fmt.Fprintln(w, subRule)
	fmt.Fprintf(w, "  📰 Articles:         %d\n", c.ArticleCount)
	fmt.Fprintf(w, "  🎯 Mean Confidence:  %.2f\n", c.MeanConfidence)
	fmt.Fprintf(w, "  💰 Avg Investment:   %.3f\n", c.AvgInvestmentScore)
	if len(c.TopArticles) > 0 {
		fmt.Fprintf(w, "  📝 Top Articles:     %s\n", strings.Join(c.TopArticles, ", "))
	}
}

func writeHighImpact(w io.Writer, res *Result) {
	s := &res.Summary
	if len(s.HighImpact) == 0 {
		return
	}

	fmt.Fprintln(w, sectionRule)
	fmt.Fprintln(w, "                    HIGH IMPACT ARTICLES")
	fmt.Fprintln(w, sectionRule)
	for i, a := range s.HighImpact {
		fmt.Fprintf(w, "  %d. %s  score %.3f  %s\n", i+1, a.ArticleID, a.InvestmentScore, a.Impact)
		if title := articleTitle(res, a.ArticleID); title != "" {
			fmt.Fprintf(w, "     %s\n", truncate(title, 80))
		}
	}
	fmt.Fprintln(w)
}

func writeTopKeywords(w io.Writer, s *analysis.Summary) {
	if len(s.TopKeywords) == 0 {
		return
	}

	fmt.Fprintln(w, "🔑 Top Keywords:")
	for _, kw := range s.TopKeywords {
		fmt.Fprintf(w, "  %-15s %d\n", kw.Word, kw.Count)
	}
	fmt.Fprintln(w)
}

func scoreEmoji(score float64) string {
	switch {
	case score >= 0.7:
		return "🔥"
	case score >= 0.4:
		return "✅"
	default:
		return "📊"
	}
}

func articleTitle(res *Result, articleID string) string {
	for _, a := range res.Articles {
		if a.ID == articleID {
			return a.Title
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatIST(t time.Time) string {
	return t.In(istZone).Format("2006-01-02 15:04:05 MST")
}
