package analysis

import (
	"sort"
	"strings"

	"nse-news-analyzer/internal/registry"
)

// Confidence constants for the matching rules. Rule order doubles as the
// tie-break: a company is evaluated against the rules top-down and the
// first hit wins, which also guarantees at most one MatchResult per
// company per article.
const (
	confExactSymbol = 1.0
	confExactName   = 0.95
	confAlias       = 0.85
	fuzzyConfFloor  = 0.3
	fuzzyConfCeil   = 0.8
)

// Matcher resolves which registry companies an article text refers to.
// Construction precomputes per-company token forms plus a token inverted
// index; both are read-only afterwards, so one Matcher serves any number
// of goroutines.
type Matcher struct {
	cfg       Config
	norm      *Normalizer
	companies []companyEntry
	index     map[string][]int
	// companies that produced no indexable token are evaluated for every
	// article, keeping the pre-filter outcome-neutral
	alwaysCheck []int
}

type companyEntry struct {
	symbol      string
	symbolToken string
	nameCanon   string
	nameTokens  []string
	nameSet     map[string]bool
	aliasCanon  []string
}

// NewMatcher builds a matcher over the given registry. The normalizer
// must be the same one used to produce article tokens, so both sides of a
// comparison tokenize identically.
func NewMatcher(cfg Config, reg *registry.Registry, norm *Normalizer) *Matcher {
	cfg = cfg.withDefaults()
	m := &Matcher{
		cfg:   cfg,
		norm:  norm,
		index: make(map[string][]int),
	}

	for _, rec := range reg.Records() {
		entry := companyEntry{
			symbol:    rec.Symbol,
			nameCanon: norm.Canonical(rec.CanonicalName),
		}

		// The symbol rule compares whole tokens, so the symbol must
		// itself survive tokenization as a single token. Symbols like
		// BAJAJ-AUTO split in two and are reached via name or alias.
		if symTokens := norm.Normalize(rec.Symbol); len(symTokens) == 1 {
			entry.symbolToken = symTokens[0]
		}

		// Fuzzy matching works on the distinctive part of the name:
		// corporate suffixes would let "limited" alone carry a match.
		entry.nameTokens = norm.Normalize(registry.CleanCompanyName(rec.CanonicalName))
		if len(entry.nameTokens) == 0 {
			entry.nameTokens = norm.Normalize(rec.CanonicalName)
		}
		entry.nameSet = make(map[string]bool, len(entry.nameTokens))
		for _, t := range entry.nameTokens {
			entry.nameSet[t] = true
		}

		for _, alias := range rec.Aliases {
			if canon := norm.Canonical(alias); canon != "" {
				entry.aliasCanon = append(entry.aliasCanon, canon)
			}
		}

		idx := len(m.companies)
		m.companies = append(m.companies, entry)

		keys, coverable := m.indexKeys(entry)
		if !coverable || len(keys) == 0 {
			m.alwaysCheck = append(m.alwaysCheck, idx)
			continue
		}
		for key := range keys {
			m.index[key] = append(m.index[key], idx)
		}
	}

	return m
}

// indexKeys collects every token that can possibly trigger a match for
// the entry: the symbol token, the tokens of the canonical name, and the
// tokens of each alias. An article sharing none of these tokens cannot
// match the company under any rule. coverable is false when some name or
// alias could match contiguously without contributing a single index
// token (a surface made only of stop words); such entries skip the index
// and are checked for every article.
func (m *Matcher) indexKeys(entry companyEntry) (map[string]bool, bool) {
	keys := make(map[string]bool)
	if entry.symbolToken != "" {
		keys[entry.symbolToken] = true
	}

	if entry.nameCanon != "" {
		nameKeys := m.norm.Normalize(entry.nameCanon)
		if len(nameKeys) == 0 {
			return nil, false
		}
		for _, t := range nameKeys {
			keys[t] = true
		}
	}
	for _, alias := range entry.aliasCanon {
		aliasKeys := m.norm.Normalize(alias)
		if len(aliasKeys) == 0 {
			return nil, false
		}
		for _, t := range aliasKeys {
			keys[t] = true
		}
	}
	return keys, true
}

// Match scans one article against the full registry. tokens must be the
// normalizer output for rawText; rawText is consulted for contiguous
// name/alias checks. Results come back ordered by descending confidence
// (symbol ascending on ties) with unique symbols. A matcher over an empty
// registry returns nil for every input.
func (m *Matcher) Match(tokens []string, rawText string) []MatchResult {
	if len(m.companies) == 0 {
		return nil
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}
	canon := " " + m.norm.Canonical(rawText) + " "

	var results []MatchResult
	for _, ci := range m.candidates(tokenSet) {
		if res, ok := m.evaluate(&m.companies[ci], tokens, tokenSet, canon); ok {
			results = append(results, res)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Confidence == results[j].Confidence {
			return results[i].CompanySymbol < results[j].CompanySymbol
		}
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// candidates returns the registry positions worth evaluating for an
// article, via the inverted index. The pre-filter only ever skips
// companies that share no token with the article, so match outcomes are
// identical to a full scan.
func (m *Matcher) candidates(tokenSet map[string]bool) []int {
	seen := make(map[int]bool)
	var out []int
	for t := range tokenSet {
		for _, ci := range m.index[t] {
			if !seen[ci] {
				seen[ci] = true
				out = append(out, ci)
			}
		}
	}
	out = append(out, m.alwaysCheck...)
	sort.Ints(out)
	return out
}

// evaluate runs the rule ladder for one company.
func (m *Matcher) evaluate(c *companyEntry, tokens []string, tokenSet map[string]bool, canon string) (MatchResult, bool) {
	if c.symbolToken != "" && tokenSet[c.symbolToken] {
		return MatchResult{
			CompanySymbol: c.symbol,
			Confidence:    confExactSymbol,
			MatchKind:     MatchExactSymbol,
			EvidenceSpan:  c.symbolToken,
		}, true
	}

	if c.nameCanon != "" && strings.Contains(canon, " "+c.nameCanon+" ") {
		return MatchResult{
			CompanySymbol: c.symbol,
			Confidence:    confExactName,
			MatchKind:     MatchExactName,
			EvidenceSpan:  c.nameCanon,
		}, true
	}

	for _, alias := range c.aliasCanon {
		if strings.Contains(canon, " "+alias+" ") {
			return MatchResult{
				CompanySymbol: c.symbol,
				Confidence:    confAlias,
				MatchKind:     MatchAlias,
				EvidenceSpan:  alias,
			}, true
		}
	}

	return m.fuzzyMatch(c, tokens)
}

// fuzzyMatch slides a window over the article tokens and scores the
// token-set Jaccard overlap against the company name tokens. The best
// ratio must exceed the relevance threshold; confidence is the ratio
// scaled into [fuzzyConfFloor, fuzzyConfCeil].
func (m *Matcher) fuzzyMatch(c *companyEntry, tokens []string) (MatchResult, bool) {
	if len(c.nameTokens) == 0 || len(tokens) == 0 {
		return MatchResult{}, false
	}

	window := len(c.nameTokens) + m.cfg.FuzzyWindowSlack
	if window > len(tokens) {
		window = len(tokens)
	}

	var (
		bestRatio float64
		bestStart = -1
	)
	counts := make(map[string]int, window)
	distinct, inter := 0, 0

	add := func(t string) {
		counts[t]++
		if counts[t] == 1 {
			distinct++
			if c.nameSet[t] {
				inter++
			}
		}
	}
	remove := func(t string) {
		counts[t]--
		if counts[t] == 0 {
			distinct--
			if c.nameSet[t] {
				inter--
			}
		}
	}

	for i := 0; i < window; i++ {
		add(tokens[i])
	}
	for start := 0; ; start++ {
		// union = |window set| + |name set| - |intersection|
		union := distinct + len(c.nameSet) - inter
		if union > 0 {
			if ratio := float64(inter) / float64(union); ratio > bestRatio {
				bestRatio = ratio
				bestStart = start
			}
		}
		if start+window >= len(tokens) {
			break
		}
		remove(tokens[start])
		add(tokens[start+window])
	}

	if bestStart < 0 || bestRatio <= m.cfg.RelevanceThreshold {
		return MatchResult{}, false
	}

	confidence := fuzzyConfFloor + bestRatio*(fuzzyConfCeil-fuzzyConfFloor)
	return MatchResult{
		CompanySymbol: c.symbol,
		Confidence:    confidence,
		MatchKind:     MatchFuzzy,
		EvidenceSpan:  m.windowEvidence(c, tokens, bestStart, window),
	}, true
}

// windowEvidence reports which name tokens the winning window shared, in
// name order, as the span that triggered the fuzzy match.
func (m *Matcher) windowEvidence(c *companyEntry, tokens []string, start, window int) string {
	inWindow := make(map[string]bool, window)
	for i := start; i < start+window && i < len(tokens); i++ {
		inWindow[tokens[i]] = true
	}
	var shared []string
	for _, t := range c.nameTokens {
		if inWindow[t] {
			shared = append(shared, t)
		}
	}
	return strings.Join(shared, " ")
}
