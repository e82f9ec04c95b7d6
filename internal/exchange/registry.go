// Package exchange maps user-friendly exchange codes to Yahoo Finance
// symbol suffixes and resolves raw ticker input into a queryable symbol.
package exchange

import (
	"fmt"
	"sort"
	"strings"
)

// Info describes one supported stock exchange.
type Info struct {
	Code           string // user-facing code, e.g. "TLV"
	Name           string // full name, e.g. "Tel Aviv Stock Exchange"
	Suffix         string // Yahoo Finance suffix, e.g. ".TA"; empty for US
	Country        string
	Currency       string // ISO currency code
	CurrencySymbol string // display symbol
}

// Ticker is a resolved ticker: the base symbol for news searches and the
// suffixed symbol for the market-data provider.
type Ticker struct {
	Base     string // e.g. "TEVA"
	Symbol   string // e.g. "TEVA.TA"
	Exchange *Info  // nil for bare US tickers
}

// CurrencySymbol returns the display currency symbol, defaulting to USD.
func (t Ticker) CurrencySymbol() string {
	if t.Exchange != nil && t.Exchange.CurrencySymbol != "" {
		return t.Exchange.CurrencySymbol
	}
	return "$"
}

// CurrencyCode returns the ISO currency code, defaulting to USD.
func (t Ticker) CurrencyCode() string {
	if t.Exchange != nil && t.Exchange.Currency != "" {
		return t.Exchange.Currency
	}
	return "USD"
}

var registry = map[string]Info{
	// Americas
	"NYSE":   {"NYSE", "New York Stock Exchange", "", "United States", "USD", "$"},
	"NASDAQ": {"NASDAQ", "NASDAQ", "", "United States", "USD", "$"},
	"AMEX":   {"AMEX", "NYSE American", "", "United States", "USD", "$"},
	"TSX":    {"TSX", "Toronto Stock Exchange", ".TO", "Canada", "CAD", "CA$"},
	"TSXV":   {"TSXV", "TSX Venture Exchange", ".V", "Canada", "CAD", "CA$"},
	"BCBA":   {"BCBA", "Buenos Aires Stock Exchange", ".BA", "Argentina", "ARS", "AR$"},
	"BVSP":   {"BVSP", "B3 - Brasil Bolsa Balcao", ".SA", "Brazil", "BRL", "R$"},
	"BMV":    {"BMV", "Bolsa Mexicana de Valores", ".MX", "Mexico", "MXN", "MX$"},

	// Europe
	"LSE":   {"LSE", "London Stock Exchange", ".L", "United Kingdom", "GBp", "£"},
	"IOB":   {"IOB", "London Intl Order Book", ".IL", "United Kingdom", "USD", "$"},
	"EPA":   {"EPA", "Euronext Paris", ".PA", "France", "EUR", "€"},
	"FRA":   {"FRA", "Frankfurt Stock Exchange", ".F", "Germany", "EUR", "€"},
	"XETRA": {"XETRA", "XETRA", ".DE", "Germany", "EUR", "€"},
	"MUN":   {"MUN", "Munich Stock Exchange", ".MU", "Germany", "EUR", "€"},
	"STU":   {"STU", "Stuttgart Stock Exchange", ".SG", "Germany", "EUR", "€"},
	"HAM":   {"HAM", "Hamburg Stock Exchange", ".HM", "Germany", "EUR", "€"},
	"BER":   {"BER", "Berlin Stock Exchange", ".BE", "Germany", "EUR", "€"},
	"DUS":   {"DUS", "Dusseldorf Stock Exchange", ".DU", "Germany", "EUR", "€"},
	"AMS":   {"AMS", "Euronext Amsterdam", ".AS", "Netherlands", "EUR", "€"},
	"BIT":   {"BIT", "Borsa Italiana", ".MI", "Italy", "EUR", "€"},
	"BME":   {"BME", "Bolsa de Madrid", ".MC", "Spain", "EUR", "€"},
	"SWX":   {"SWX", "SIX Swiss Exchange", ".SW", "Switzerland", "CHF", "CHF"},
	"VTX":   {"VTX", "SIX Swiss (Virt-X)", ".VX", "Switzerland", "CHF", "CHF"},
	"STO":   {"STO", "Stockholm Stock Exchange", ".ST", "Sweden", "SEK", "kr"},
	"CPH":   {"CPH", "Copenhagen Stock Exchange", ".CO", "Denmark", "DKK", "kr"},
	"OSL":   {"OSL", "Oslo Stock Exchange", ".OL", "Norway", "NOK", "kr"},
	"HEL":   {"HEL", "Helsinki Stock Exchange", ".HE", "Finland", "EUR", "€"},
	"VIE":   {"VIE", "Vienna Stock Exchange", ".VI", "Austria", "EUR", "€"},
	"EBR":   {"EBR", "Euronext Brussels", ".BR", "Belgium", "EUR", "€"},
	"ELI":   {"ELI", "Euronext Lisbon", ".LS", "Portugal", "EUR", "€"},
	"ATH":   {"ATH", "Athens Stock Exchange", ".AT", "Greece", "EUR", "€"},
	"IST":   {"IST", "Borsa Istanbul", ".IS", "Turkey", "TRY", "₺"},
	"WSE":   {"WSE", "Warsaw Stock Exchange", ".WA", "Poland", "PLN", "zł"},
	"PSE":   {"PSE", "Prague Stock Exchange", ".PR", "Czech Republic", "CZK", "Kč"},
	"BUD":   {"BUD", "Budapest Stock Exchange", ".BD", "Hungary", "HUF", "Ft"},
	"MCX":   {"MCX", "Moscow Exchange", ".ME", "Russia", "RUB", "₽"},

	// Asia-Pacific
	"TSE":    {"TSE", "Tokyo Stock Exchange", ".T", "Japan", "JPY", "¥"},
	"HKEX":   {"HKEX", "Hong Kong Stock Exchange", ".HK", "Hong Kong", "HKD", "HK$"},
	"SSE":    {"SSE", "Shanghai Stock Exchange", ".SS", "China", "CNY", "¥"},
	"SZSE":   {"SZSE", "Shenzhen Stock Exchange", ".SZ", "China", "CNY", "¥"},
	"KRX":    {"KRX", "Korea Exchange", ".KS", "South Korea", "KRW", "₩"},
	"KOSDAQ": {"KOSDAQ", "KOSDAQ", ".KQ", "South Korea", "KRW", "₩"},
	"ASX":    {"ASX", "Australian Securities Exchange", ".AX", "Australia", "AUD", "A$"},
	"NZX":    {"NZX", "New Zealand Exchange", ".NZ", "New Zealand", "NZD", "NZ$"},
	"SGX":    {"SGX", "Singapore Exchange", ".SI", "Singapore", "SGD", "S$"},
	"KLSE":   {"KLSE", "Bursa Malaysia", ".KL", "Malaysia", "MYR", "RM"},
	"IDX":    {"IDX", "Indonesia Stock Exchange", ".JK", "Indonesia", "IDR", "Rp"},
	"SET":    {"SET", "Stock Exchange of Thailand", ".BK", "Thailand", "THB", "฿"},
	"TWSE":   {"TWSE", "Taiwan Stock Exchange", ".TW", "Taiwan", "TWD", "NT$"},
	"TPEX":   {"TPEX", "Taipei Exchange", ".TWO", "Taiwan", "TWD", "NT$"},
	"PSEI":   {"PSEI", "Philippine Stock Exchange", ".PS", "Philippines", "PHP", "₱"},

	// Middle East & South Asia
	"TLV":     {"TLV", "Tel Aviv Stock Exchange", ".TA", "Israel", "ILS", "₪"},
	"BSE":     {"BSE", "Bombay Stock Exchange", ".BO", "India", "INR", "₹"},
	"NSE":     {"NSE", "National Stock Exchange of India", ".NS", "India", "INR", "₹"},
	"TADAWUL": {"TADAWUL", "Saudi Stock Exchange", ".SR", "Saudi Arabia", "SAR", "SAR"},
	"QSE":     {"QSE", "Qatar Stock Exchange", ".QA", "Qatar", "QAR", "QR"},

	// Africa
	"JSE": {"JSE", "Johannesburg Stock Exchange", ".JO", "South Africa", "ZAR", "R"},
}

// suffixIndex maps Yahoo suffixes back to exchange info for detection.
var suffixIndex = func() map[string]Info {
	idx := make(map[string]Info, len(registry))
	for _, info := range registry {
		if info.Suffix != "" {
			idx[info.Suffix] = info
		}
	}
	return idx
}()

// Lookup returns the exchange info for a code.
func Lookup(code string) (Info, bool) {
	info, ok := registry[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}

// Resolve turns raw ticker input into a Ticker. It accepts a suffixed
// symbol (TEVA.TA), an explicit exchange code override, a legacy
// prefixed form (NYSE:TEVA), or a bare US ticker.
func Resolve(raw, exchangeCode string) (Ticker, error) {
	symbol := strings.TrimSpace(raw)

	// Legacy exchange prefix, e.g. NYSE:MSFT.
	if i := strings.LastIndex(symbol, ":"); i >= 0 {
		symbol = strings.TrimSpace(symbol[i+1:])
	}
	symbol = strings.ToUpper(symbol)
	if symbol == "" {
		return Ticker{}, fmt.Errorf("ticker symbol is empty")
	}

	// An explicit exchange flag takes priority over a detected suffix.
	if exchangeCode != "" {
		info, ok := Lookup(exchangeCode)
		if !ok {
			return Ticker{}, fmt.Errorf("unknown exchange %q, run the exchanges command for the supported list", exchangeCode)
		}
		base := stripKnownSuffix(symbol)
		return Ticker{Base: base, Symbol: base + info.Suffix, Exchange: &info}, nil
	}

	// Detect an already-suffixed symbol like TEVA.TA.
	if i := strings.LastIndex(symbol, "."); i > 0 {
		if info, ok := suffixIndex[symbol[i:]]; ok {
			return Ticker{Base: symbol[:i], Symbol: symbol, Exchange: &info}, nil
		}
	}

	// Bare ticker, assume US market.
	return Ticker{Base: symbol, Symbol: symbol}, nil
}

func stripKnownSuffix(symbol string) string {
	if i := strings.LastIndex(symbol, "."); i > 0 {
		if _, ok := suffixIndex[symbol[i:]]; ok {
			return symbol[:i]
		}
	}
	return symbol
}

var regions = []struct {
	Name  string
	Codes []string
}{
	{"Americas", []string{"NYSE", "NASDAQ", "AMEX", "TSX", "TSXV", "BCBA", "BVSP", "BMV"}},
	{"Europe", []string{
		"LSE", "IOB", "EPA", "FRA", "XETRA", "MUN", "STU", "HAM", "BER", "DUS",
		"AMS", "BIT", "BME", "SWX", "VTX", "STO", "CPH", "OSL", "HEL",
		"VIE", "EBR", "ELI", "ATH", "IST", "WSE", "PSE", "BUD", "MCX",
	}},
	{"Asia-Pacific", []string{
		"TSE", "HKEX", "SSE", "SZSE", "KRX", "KOSDAQ", "ASX", "NZX", "SGX",
		"KLSE", "IDX", "SET", "TWSE", "TPEX", "PSEI",
	}},
	{"Middle East & South Asia", []string{"TLV", "BSE", "NSE", "TADAWUL", "QSE"}},
	{"Africa", []string{"JSE"}},
}

// ListTable renders the supported exchanges grouped by region.
func ListTable() string {
	var b strings.Builder
	b.WriteString("Supported Stock Exchanges\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(&b, "  %-10s %-32s %-8s %-16s %s\n", "Code", "Exchange", "Suffix", "Country", "Currency")
	b.WriteString(strings.Repeat("-", 80) + "\n")

	for _, region := range regions {
		fmt.Fprintf(&b, "\n  %s:\n", region.Name)
		for _, code := range region.Codes {
			info := registry[code]
			suffix := info.Suffix
			if suffix == "" {
				suffix = "(none)"
			}
			fmt.Fprintf(&b, "  %-10s %-32s %-8s %-16s %s %s\n",
				info.Code, info.Name, suffix, info.Country, info.CurrencySymbol, info.Currency)
		}
	}
	return b.String()
}

// Codes returns all registered exchange codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
