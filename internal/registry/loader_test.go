package registry

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `SYMBOL,NAME OF COMPANY, SERIES, DATE OF LISTING, PAID UP VALUE, MARKET LOT, ISIN NUMBER, FACE VALUE
TCS,Tata Consultancy Services Limited,EQ,25-AUG-2004,1,1,INE467B01029,1
RELIANCE,Reliance Industries Limited,EQ,29-NOV-1995,10,1,INE002A01018,10
SMALLCO,Some SME Listing Limited,SM,01-JAN-2020,10,1,INE000000001,10
,Missing Symbol Limited,EQ,01-JAN-2020,10,1,INE000000002,10
NONAME,,EQ,01-JAN-2020,10,1,INE000000003,10
BEONLY,Trade For Trade Limited,BE,01-JAN-2020,10,1,INE000000004,10
`

func TestParseCSV(t *testing.T) {
	reg, stats, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Rows != 6 {
		t.Errorf("Expected 6 data rows, got %d", stats.Rows)
	}
	if stats.Loaded != 3 {
		t.Errorf("Expected 3 loaded records, got %d", stats.Loaded)
	}
	if stats.Skipped != 2 {
		t.Errorf("Expected 2 skipped rows, got %d", stats.Skipped)
	}

	rec, ok := reg.Lookup("TCS")
	if !ok {
		t.Fatal("Expected TCS in registry")
	}
	if rec.CanonicalName != "Tata Consultancy Services Limited" {
		t.Errorf("Expected full listed name, got %q", rec.CanonicalName)
	}
	if rec.IdentifyingCode != "INE467B01029" {
		t.Errorf("Expected ISIN captured, got %q", rec.IdentifyingCode)
	}

	// SM series stays out, BE series stays in.
	if _, ok := reg.Lookup("SMALLCO"); ok {
		t.Error("Expected SM series row to be excluded")
	}
	if _, ok := reg.Lookup("BEONLY"); !ok {
		t.Error("Expected BE series row to be included")
	}
}

func TestParseCSVPopulatesAliases(t *testing.T) {
	reg, _, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rec, _ := reg.Lookup("TCS")
	want := []string{"tata consultancy services", "tata consultancy"}
	if !reflect.DeepEqual(rec.Aliases, want) {
		t.Errorf("Expected aliases %v, got %v", want, rec.Aliases)
	}
}

func TestParseCSVMissingColumns(t *testing.T) {
	if _, _, err := ParseCSV(strings.NewReader("FOO,BAR\n1,2\n")); err == nil {
		t.Error("Expected error for missing SYMBOL column")
	}
	if _, _, err := ParseCSV(strings.NewReader("SYMBOL,BAR\nTCS,2\n")); err == nil {
		t.Error("Expected error for missing name column")
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	reg, stats, err := ParseCSV(strings.NewReader("SYMBOL,NAME OF COMPANY\n"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reg.Len() != 0 || stats.Rows != 0 {
		t.Errorf("Expected empty registry, got %d records over %d rows", reg.Len(), stats.Rows)
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equity.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, stats, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reg.Len() != 3 || stats.Loaded != 3 {
		t.Errorf("Expected 3 records, got %d (stats %+v)", reg.Len(), stats)
	}

	if _, _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCleanCompanyName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tata Consultancy Services Limited", "tata consultancy services"},
		{"Larsen & Toubro Ltd.", "larsen toubro"},
		{"The Tata Power Company Limited", "the tata power"},
		{"Infosys Limited", "infosys"},
		{"Plain Name", "plain name"},
	}
	for _, c := range cases {
		if got := CleanCompanyName(c.in); got != c.want {
			t.Errorf("CleanCompanyName(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestAliasVariants(t *testing.T) {
	got := AliasVariants("TCS", "Tata Consultancy Services Limited")
	want := []string{"tata consultancy services", "tata consultancy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// The acronym duplicates the symbol here and is dropped.
	for _, alias := range got {
		if alias == "tcs" {
			t.Error("Expected symbol-equal acronym to be dropped")
		}
	}
}

func TestAliasVariantsKeepsDistinctAcronym(t *testing.T) {
	got := AliasVariants("SBIN", "State Bank of India")

	// The cleaned name equals the listed name and is dropped; the
	// acronym and leading pair remain.
	want := []string{"sboi", "state bank"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAliasVariantsShortNames(t *testing.T) {
	if got := AliasVariants("WIPRO", "Wipro Limited"); len(got) != 0 {
		t.Errorf("Expected no variants for single-word clean name, got %v", got)
	}
}
