package resolver

// symbolTable maps well-known company names to their canonical tickers.
// US large caps use the plain symbol; Indian-exchange names carry the
// NSE suffix. Values are what the resolver hands out, so the literal-value
// check in the resolution chain matches suffixed input too.
var symbolTable = map[string]string{
	// US large caps
	"APPLE":      "AAPL",
	"MICROSOFT":  "MSFT",
	"GOOGLE":     "GOOGL",
	"ALPHABET":   "GOOGL",
	"AMAZON":     "AMZN",
	"NVIDIA":     "NVDA",
	"META":       "META",
	"FACEBOOK":   "META",
	"TESLA":      "TSLA",
	"NETFLIX":    "NFLX",
	"INTEL":      "INTC",
	"AMD":        "AMD",
	"IBM":        "IBM",
	"ORACLE":     "ORCL",
	"SALESFORCE": "CRM",
	"JPMORGAN":   "JPM",
	"VISA":       "V",
	"WALMART":    "WMT",
	"DISNEY":     "DIS",
	"BOEING":     "BA",

	// Indian large caps (NSE)
	"RELIANCE":           "RELIANCE.NS",
	"TCS":                "TCS.NS",
	"INFOSYS":            "INFY.NS",
	"HDFC BANK":          "HDFCBANK.NS",
	"ICICI BANK":         "ICICIBANK.NS",
	"SBI":                "SBIN.NS",
	"STATE BANK":         "SBIN.NS",
	"WIPRO":              "WIPRO.NS",
	"ITC":                "ITC.NS",
	"TATA MOTORS":        "TATAMOTORS.NS",
	"TATA STEEL":         "TATASTEEL.NS",
	"BHARTI AIRTEL":      "BHARTIARTL.NS",
	"HINDUSTAN UNILEVER": "HINDUNILVR.NS",
	"BAJAJ FINANCE":      "BAJFINANCE.NS",
	"ADANI ENTERPRISES":  "ADANIENT.NS",
	"MARUTI":             "MARUTI.NS",
	"ASIAN PAINTS":       "ASIANPAINT.NS",
	"AXIS BANK":          "AXISBANK.NS",
	"KOTAK BANK":         "KOTAKBANK.NS",
	"LARSEN":             "LT.NS",
}

// knownTickers is the value set of symbolTable, for the literal-ticker check.
var knownTickers = func() map[string]bool {
	set := make(map[string]bool, len(symbolTable))
	for _, ticker := range symbolTable {
		set[ticker] = true
	}
	return set
}()
