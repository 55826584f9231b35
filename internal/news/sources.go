package news

import "strings"

// Source is one configured financial news outlet. Name must match the
// credibility table used at scoring time.
type Source struct {
	Name    string
	RSSURL  string
	BaseURL string
}

// DefaultSources lists the Indian financial news feeds the collector
// reads from.
func DefaultSources() []Source {
	return []Source{
		{
			Name:    "Economic Times",
			RSSURL:  "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms",
			BaseURL: "https://economictimes.indiatimes.com",
		},
		{
			Name:    "Business Standard",
			RSSURL:  "https://www.business-standard.com/rss/markets-106.rss",
			BaseURL: "https://www.business-standard.com",
		},
		{
			Name:    "LiveMint",
			RSSURL:  "https://www.livemint.com/rss/markets",
			BaseURL: "https://www.livemint.com",
		},
		{
			Name:    "Moneycontrol",
			RSSURL:  "https://www.moneycontrol.com/rss/marketreports.xml",
			BaseURL: "https://www.moneycontrol.com",
		},
	}
}

// FindSource resolves a configured source by name, case-insensitively.
func FindSource(sources []Source, name string) (Source, bool) {
	for _, s := range sources {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Source{}, false
}
