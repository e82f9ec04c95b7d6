package exchange

import (
	"strings"
	"testing"
)

func TestResolveBareTicker(t *testing.T) {
	ticker, err := Resolve("msft", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ticker.Base != "MSFT" || ticker.Symbol != "MSFT" {
		t.Fatalf("bare ticker: got %+v", ticker)
	}
	if ticker.Exchange != nil {
		t.Fatalf("bare ticker should have no exchange, got %+v", ticker.Exchange)
	}
	if ticker.CurrencySymbol() != "$" || ticker.CurrencyCode() != "USD" {
		t.Fatalf("bare ticker defaults: got %s/%s", ticker.CurrencySymbol(), ticker.CurrencyCode())
	}
}

func TestResolveSuffixedSymbol(t *testing.T) {
	ticker, err := Resolve("TEVA.TA", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ticker.Base != "TEVA" || ticker.Symbol != "TEVA.TA" {
		t.Fatalf("suffixed ticker: got %+v", ticker)
	}
	if ticker.Exchange == nil || ticker.Exchange.Code != "TLV" {
		t.Fatalf("expected TLV exchange, got %+v", ticker.Exchange)
	}
	if ticker.CurrencyCode() != "ILS" {
		t.Fatalf("expected ILS, got %s", ticker.CurrencyCode())
	}
}

func TestResolveExchangeOverride(t *testing.T) {
	ticker, err := Resolve("TEVA", "tlv")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ticker.Symbol != "TEVA.TA" {
		t.Fatalf("override should append suffix: got %q", ticker.Symbol)
	}

	// Override also strips an existing known suffix before reattaching.
	ticker, err = Resolve("TEVA.TA", "LSE")
	if err != nil {
		t.Fatalf("Resolve with re-suffix: %v", err)
	}
	if ticker.Symbol != "TEVA.L" {
		t.Fatalf("re-suffix: expected TEVA.L, got %q", ticker.Symbol)
	}
}

func TestResolveLegacyPrefix(t *testing.T) {
	ticker, err := Resolve("NYSE:TEVA", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ticker.Base != "TEVA" || ticker.Symbol != "TEVA" {
		t.Fatalf("prefixed ticker: got %+v", ticker)
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := Resolve("  ", ""); err == nil {
		t.Fatalf("expected error for empty symbol")
	}
	_, err := Resolve("TEVA", "NOPE")
	if err == nil || !strings.Contains(err.Error(), "unknown exchange") {
		t.Fatalf("expected unknown exchange error, got %v", err)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	info, ok := Lookup(" lse ")
	if !ok || info.Suffix != ".L" {
		t.Fatalf("Lookup lse: got %+v, ok=%v", info, ok)
	}
	if _, ok := Lookup("XXX"); ok {
		t.Fatalf("Lookup of unknown code should fail")
	}
}

func TestListTableCoversAllCodes(t *testing.T) {
	table := ListTable()
	for _, code := range Codes() {
		if !strings.Contains(table, code) {
			t.Fatalf("table missing exchange %s", code)
		}
	}
}
