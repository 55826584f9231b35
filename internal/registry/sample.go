package registry

// sampleListings is a small cut of the NSE equity list, enough to run the
// pipeline without the full EQUITY_L.csv on disk.
var sampleListings = []struct {
	symbol, name, isin string
}{
	{"RELIANCE", "Reliance Industries Limited", "INE002A01018"},
	{"TCS", "Tata Consultancy Services Limited", "INE467B01029"},
	{"HDFCBANK", "HDFC Bank Limited", "INE040A01034"},
	{"INFY", "Infosys Limited", "INE009A01021"},
	{"ICICIBANK", "ICICI Bank Limited", "INE090A01021"},
	{"SBIN", "State Bank of India", "INE062A01020"},
	{"BHARTIARTL", "Bharti Airtel Limited", "INE397D01024"},
	{"ITC", "ITC Limited", "INE154A01025"},
	{"LT", "Larsen & Toubro Limited", "INE018A01030"},
	{"WIPRO", "Wipro Limited", "INE075A01022"},
	{"TATAMOTORS", "Tata Motors Limited", "INE155A01022"},
	{"YESBANK", "Yes Bank Limited", "INE528G01035"},
}

// Sample returns a built-in registry of well known NSE companies, used
// when no listing file is available.
func Sample() *Registry {
	records := make([]CompanyRecord, 0, len(sampleListings))
	for _, l := range sampleListings {
		records = append(records, CompanyRecord{
			Symbol:          l.symbol,
			CanonicalName:   l.name,
			Aliases:         AliasVariants(l.symbol, l.name),
			IdentifyingCode: l.isin,
		})
	}
	return New(records)
}
