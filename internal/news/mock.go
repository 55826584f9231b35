package news

import (
	"context"
	"time"

	"nse-news-analyzer/internal/analysis"
)

// MockCollector serves a fixed set of articles for development and demo
// runs, standing in for the live feeds.
type MockCollector struct {
	now time.Time
}

// NewMockCollector creates a collector over the built-in fixture set.
func NewMockCollector() *MockCollector {
	return &MockCollector{now: time.Now()}
}

// Collect returns the fixture articles, deduplicated the same way the
// live collector deduplicates feed output.
func (m *MockCollector) Collect(ctx context.Context) ([]analysis.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Deduplicate(m.fixtures()), nil
}

// CollectSource returns the fixture articles attributed to one source.
func (m *MockCollector) CollectSource(ctx context.Context, sourceName string) ([]analysis.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []analysis.Article
	for _, a := range m.fixtures() {
		if a.SourceName == sourceName {
			out = append(out, a)
		}
	}
	return Deduplicate(out), nil
}

func (m *MockCollector) fixtures() []analysis.Article {
	at := func(hoursAgo int) time.Time { return m.now.Add(-time.Duration(hoursAgo) * time.Hour) }

	return []analysis.Article{
		{
			ID:          "mock-1",
			Title:       "TCS wins multi year deal worth 2 billion dollars",
			Body:        "Tata Consultancy Services Limited has signed a multi year contract with a European insurer. The order strengthens the order book and analysts expect the deal to boost revenue growth over the next several quarters.",
			SourceName:  "Economic Times",
			PublishedAt: at(2),
			URL:         "https://economictimes.indiatimes.com/mock/tcs-deal",
		},
		{
			ID:          "mock-2",
			Title:       "Reliance Industries Limited reports record quarterly profit",
			Body:        "Reliance Industries Limited posted a record quarterly profit as refining margins improved. Revenue surged across retail and telecom segments, and the board announced continued investment in new energy projects.",
			SourceName:  "Moneycontrol",
			PublishedAt: at(4),
			URL:         "https://www.moneycontrol.com/mock/reliance-results",
		},
		{
			ID:          "mock-3",
			Title:       "HDFC Bank profit rises 18 percent on strong loan growth",
			Body:        "HDFC Bank Limited reported an 18 percent rise in net profit for the quarter, driven by strong loan growth and stable asset quality. The lender declared an interim dividend for shareholders.",
			SourceName:  "Business Standard",
			PublishedAt: at(6),
			URL:         "https://www.business-standard.com/mock/hdfc-bank-results",
		},
		{
			ID:          "mock-4",
			Title:       "Infosys shares fall after weak earnings guidance",
			Body:        "Infosys Limited shares dropped after the company issued weak revenue guidance for the coming year. Management cited client caution on discretionary spending, and brokerages moved to downgrade the stock.",
			SourceName:  "LiveMint",
			PublishedAt: at(8),
			URL:         "https://www.livemint.com/mock/infosys-guidance",
		},
		{
			ID:          "mock-5",
			Title:       "TCS wins multi-year deal worth $2 billion",
			Body:        "Duplicate wire copy of the deal story carried by a second outlet with the same headline tokens.",
			SourceName:  "Moneycontrol",
			PublishedAt: at(3),
			URL:         "https://www.moneycontrol.com/mock/tcs-deal-copy",
		},
		{
			ID:          "mock-6",
			Title:       "State Bank of India announces dividend and bonus issue",
			Body:        "State Bank of India announced a dividend along with a bonus issue after quarterly earnings beat street estimates. The board also approved an expansion of the bank's digital lending platform.",
			SourceName:  "Business Standard",
			PublishedAt: at(12),
			URL:         "https://www.business-standard.com/mock/sbi-dividend",
		},
		{
			ID:          "mock-7",
			Title:       "Markets end flat as investors await policy decision",
			Body:        "Benchmark indices closed flat in a quiet session as investors awaited the central bank policy decision. Volumes stayed below average and sector moves were muted through the day.",
			SourceName:  "LiveMint",
			PublishedAt: at(20),
			URL:         "https://www.livemint.com/mock/markets-flat",
		},
		{
			ID:          "mock-8",
			Title:       "Yes Bank faces penalty over compliance lapses",
			Body:        "The regulator imposed a penalty on Yes Bank Limited over compliance lapses found during an inspection. The bank said the fine has no material impact on operations, though the probe into older lapses continues.",
			SourceName:  "Economic Times",
			PublishedAt: at(26),
			URL:         "https://economictimes.indiatimes.com/mock/yes-bank-penalty",
		},
		{
			ID:          "mock-9",
			Title:       "Tata Motors launches new electric vehicle platform",
			Body:        "Tata Motors Limited launched a new electric vehicle platform and outlined an expansion plan for its EV lineup. The company expects the launch to drive volume growth in the passenger vehicle segment.",
			SourceName:  "Moneycontrol",
			PublishedAt: at(30),
			URL:         "https://www.moneycontrol.com/mock/tata-motors-ev",
		},
	}
}
