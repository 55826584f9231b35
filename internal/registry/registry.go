package registry

import "strings"

// CompanyRecord is a single listed company as known to the matcher.
// Records are immutable once the registry is built.
type CompanyRecord struct {
	Symbol          string   `json:"symbol"`
	CanonicalName   string   `json:"canonical_name"`
	Aliases         []string `json:"aliases,omitempty"`
	IdentifyingCode string   `json:"identifying_code,omitempty"` // ISIN for NSE listings
}

// Registry holds the full company universe for one analysis run.
// A reload produces a brand-new Registry value; existing ones are never
// mutated, which makes concurrent reads safe without locking.
type Registry struct {
	records  []CompanyRecord
	bySymbol map[string]int
}

// New builds a registry from an ordered record collection. Records with a
// duplicate symbol keep the first occurrence; later duplicates are dropped
// so symbol lookups stay unambiguous.
func New(records []CompanyRecord) *Registry {
	r := &Registry{
		records:  make([]CompanyRecord, 0, len(records)),
		bySymbol: make(map[string]int, len(records)),
	}
	for _, rec := range records {
		key := strings.ToUpper(strings.TrimSpace(rec.Symbol))
		if key == "" {
			continue
		}
		if _, exists := r.bySymbol[key]; exists {
			continue
		}
		rec.Symbol = key
		r.bySymbol[key] = len(r.records)
		r.records = append(r.records, rec)
	}
	return r
}

// Len returns the number of companies in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.records)
}

// Records returns the registry contents in load order. Callers must treat
// the returned slice as read-only.
func (r *Registry) Records() []CompanyRecord {
	if r == nil {
		return nil
	}
	return r.records
}

// Lookup finds a company by its ticker symbol (case-insensitive).
func (r *Registry) Lookup(symbol string) (CompanyRecord, bool) {
	if r == nil {
		return CompanyRecord{}, false
	}
	idx, ok := r.bySymbol[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return CompanyRecord{}, false
	}
	return r.records[idx], true
}
