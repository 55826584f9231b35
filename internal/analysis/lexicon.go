package analysis

// Curated lexicons for the scorer. Two independent vocabularies are in
// play: a weighted sentiment lexicon that drives polarity, and the
// investment-keyword lexicon that drives density. Inflected forms are
// listed explicitly; the normalizer does no stemming.

// loadBullishWords returns positive sentiment words with their weights.
func loadBullishWords() map[string]float64 {
	return map[string]float64{
		"surge": 0.8, "surges": 0.8, "surged": 0.8,
		"soar": 0.8, "soars": 0.8, "soared": 0.8,
		"rally": 0.7, "rallies": 0.7, "rallied": 0.7,
		"jump": 0.7, "jumps": 0.7, "jumped": 0.7,
		"upgrade": 0.7, "upgraded": 0.7, "upgrades": 0.7,
		"gain": 0.6, "gains": 0.6, "gained": 0.6,
		"profit": 0.6, "profits": 0.6, "profitable": 0.6,
		"growth": 0.6, "grow": 0.6, "grows": 0.6, "growing": 0.6,
		"beat": 0.6, "beats": 0.6,
		"strong": 0.6, "stronger": 0.6, "strongest": 0.6,
		"boost": 0.6, "boosts": 0.6, "boosted": 0.6,
		"recovery": 0.6, "recover": 0.6, "recovers": 0.6,
		"outperform": 0.6, "outperforms": 0.6,
		"rise": 0.5, "rises": 0.5, "rose": 0.5, "risen": 0.5,
		"record": 0.5, "bullish": 0.8,
		"positive": 0.5, "buy": 0.5,
		"wins": 0.5, "win": 0.5, "won": 0.5, "bags": 0.5,
		"expand": 0.4, "expands": 0.4, "expanded": 0.4,
		"high": 0.4, "higher": 0.4,
		"improve": 0.4, "improves": 0.4, "improved": 0.4,
	}
}

// loadBearishWords returns negative sentiment words with their weights.
func loadBearishWords() map[string]float64 {
	return map[string]float64{
		"crash": 0.9, "crashes": 0.9, "crashed": 0.9,
		"plunge": 0.8, "plunges": 0.8, "plunged": 0.8,
		"bankruptcy": 0.9, "bankrupt": 0.9,
		"fraud": 0.9, "scam": 0.9,
		"bearish": 0.8, "recession": 0.8,
		"default": 0.8, "defaults": 0.8, "defaulted": 0.8,
		"loss": 0.7, "losses": 0.7,
		"downgrade": 0.7, "downgraded": 0.7, "downgrades": 0.7,
		"slump": 0.7, "slumps": 0.7, "slumped": 0.7,
		"tumble": 0.7, "tumbles": 0.7, "tumbled": 0.7,
		"fall": 0.6, "falls": 0.6, "fell": 0.6, "fallen": 0.6,
		"drop": 0.6, "drops": 0.6, "dropped": 0.6,
		"decline": 0.6, "declines": 0.6, "declined": 0.6,
		"weak": 0.6, "weaker": 0.6, "weakest": 0.6,
		"miss": 0.6, "misses": 0.6, "missed": 0.6,
		"probe": 0.6, "lawsuit": 0.6, "penalty": 0.6, "fine": 0.5, "fined": 0.6,
		"layoff": 0.6, "layoffs": 0.6,
		"strike": 0.5, "strikes": 0.5,
		"negative": 0.5, "sell": 0.5,
		"debt": 0.4, "low": 0.4, "lower": 0.4,
		"concern": 0.4, "concerns": 0.4, "worried": 0.4, "worries": 0.4,
	}
}

// loadPositiveKeywords returns the positive half of the investment
// vocabulary used for keyword density.
func loadPositiveKeywords() map[string]bool {
	return map[string]bool{
		"project": true, "projects": true,
		"expansion": true, "investment": true, "investments": true,
		"acquisition": true, "acquisitions": true, "acquire": true, "acquires": true,
		"merger": true, "mergers": true,
		"contract": true, "contracts": true,
		"order": true, "orders": true,
		"partnership": true, "partnerships": true,
		"launch": true, "launches": true, "launched": true,
		"growth": true,
		"profit": true, "profits": true,
		"revenue": true, "revenues": true,
		"earnings": true,
		"dividend": true, "dividends": true,
		"bonus": true, "buyback": true,
	}
}

// loadNegativeKeywords returns the negative half of the investment
// vocabulary. Density is direction-agnostic: these count the same as the
// positive set.
func loadNegativeKeywords() map[string]bool {
	return map[string]bool{
		"loss": true, "losses": true,
		"decline": true, "fall": true, "drop": true,
		"downgrade": true, "bankruptcy": true,
		"debt": true, "lawsuit": true,
		"fine": true, "penalty": true, "penalties": true,
		"closure": true, "layoff": true, "layoffs": true,
		"strike": true, "default": true, "fraud": true,
	}
}

// loadNeutralKeywords returns corporate-event vocabulary tracked for
// reporting only; it feeds neither polarity nor density.
func loadNeutralKeywords() map[string]bool {
	return map[string]bool{
		"announcement": true, "announcements": true,
		"statement": true, "results": true,
		"quarterly": true, "annual": true,
		"board": true, "meeting": true, "agm": true,
	}
}
