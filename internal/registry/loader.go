package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names in the NSE EQUITY_L.csv listing file. The file ships with
// stray spaces inside header cells, so headers are trimmed before lookup.
const (
	colSymbol = "SYMBOL"
	colName   = "NAME OF COMPANY"
	colSeries = "SERIES"
	colISIN   = "ISIN NUMBER"
)

// Only regular equity series enter the matching universe.
var allowedSeries = map[string]bool{"EQ": true, "BE": true}

// Corporate suffix words removed when deriving alias variants from the
// listed company name.
var nameSuffixes = map[string]bool{
	"limited": true, "ltd": true, "ltd.": true,
	"corporation": true, "corp": true,
	"company": true, "co": true, "co.": true,
	"inc": true, "incorporated": true,
	"&": true, "and": true,
}

// LoadStats reports what happened during a registry load.
type LoadStats struct {
	Rows    int // data rows seen
	Loaded  int // records accepted
	Skipped int // rows missing symbol or name
}

// LoadCSV reads an NSE equity listing file and builds a registry from it.
func LoadCSV(path string) (*Registry, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open registry file: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV parses EQUITY_L-format CSV data. Rows missing a symbol or a
// company name are skipped and counted, never fatal. Rows outside the
// allowed series (EQ/BE) are ignored outright.
func ParseCSV(r io.Reader) (*Registry, LoadStats, error) {
	var stats LoadStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("read registry header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	symIdx, ok := cols[colSymbol]
	if !ok {
		return nil, stats, fmt.Errorf("registry file has no %s column", colSymbol)
	}
	nameIdx, ok := cols[colName]
	if !ok {
		return nil, stats, fmt.Errorf("registry file has no %q column", colName)
	}
	seriesIdx, hasSeries := cols[colSeries]
	isinIdx, hasISIN := cols[colISIN]

	var records []CompanyRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read registry row: %w", err)
		}
		stats.Rows++

		field := func(idx int) string {
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		if hasSeries {
			if series := strings.ToUpper(field(seriesIdx)); series != "" && !allowedSeries[series] {
				continue
			}
		}

		symbol := strings.ToUpper(field(symIdx))
		name := field(nameIdx)
		if symbol == "" || name == "" {
			stats.Skipped++
			continue
		}

		rec := CompanyRecord{
			Symbol:        symbol,
			CanonicalName: name,
			Aliases:       AliasVariants(symbol, name),
		}
		if hasISIN {
			rec.IdentifyingCode = field(isinIdx)
		}
		records = append(records, rec)
	}

	reg := New(records)
	stats.Loaded = reg.Len()
	return reg, stats, nil
}

// CleanCompanyName lower-cases a listed name and drops corporate suffix
// words, leaving the distinctive part used for alias generation.
func CleanCompanyName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if nameSuffixes[strings.Trim(w, ".,")] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// AliasVariants derives the known alternate spellings for a company:
// the suffix-cleaned name, its acronym (three letters or more), and the
// leading two words of longer names. The symbol and canonical name are
// matched by their own rules and are not repeated here.
func AliasVariants(symbol, name string) []string {
	seen := map[string]bool{
		strings.ToLower(symbol): true,
		strings.ToLower(name):   true,
	}
	var aliases []string
	add := func(alias string) {
		alias = strings.TrimSpace(alias)
		if alias == "" || seen[alias] {
			return
		}
		seen[alias] = true
		aliases = append(aliases, alias)
	}

	clean := CleanCompanyName(name)
	add(clean)

	words := strings.Fields(clean)
	if len(words) >= 2 {
		var b strings.Builder
		for _, w := range words {
			b.WriteByte(w[0])
		}
		if acronym := b.String(); len(acronym) >= 3 {
			add(acronym)
		}
	}
	if len(words) >= 3 {
		add(words[0] + " " + words[1])
	}
	return aliases
}
