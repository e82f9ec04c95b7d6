package technical

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avakin/stocksage/internal/models"
)

// barsFromCloses builds a daily bar history with a half-point range around
// each close and constant volume.
func barsFromCloses(closes ...float64) []models.Bar {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   decimal.NewFromFloat(c),
			High:   decimal.NewFromFloat(c + 0.5),
			Low:    decimal.NewFromFloat(c - 0.5),
			Close:  decimal.NewFromFloat(c),
			Volume: 1000,
		}
	}
	return bars
}

func risingCloses(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func fallingCloses(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n - i + 10)
	}
	return out
}

func mustSignal(t *testing.T, result models.CategoryResult, name string) models.Signal {
	t.Helper()
	sig, ok := result.Signals.Get(name)
	if !ok {
		t.Fatalf("signal %q not produced", name)
	}
	return sig
}

func TestComputeProducesAllIndicators(t *testing.T) {
	result := NewAnalyzer(barsFromCloses(risingCloses(60)...)).Compute()

	wantMetrics := []string{
		"SMA_20", "SMA_50", "SMA_200", "EMA_12", "EMA_26",
		"RSI_14", "MACD_Line", "MACD_Signal", "MACD_Histogram",
		"BB_Upper", "BB_Middle", "BB_Lower",
		"Stoch_K", "Stoch_D", "ATR_14", "ATR_Pct",
		"OBV", "ADX", "CCI_20", "Williams_R",
	}
	for _, name := range wantMetrics {
		if _, ok := result.Metrics.Get(name); !ok {
			t.Fatalf("metric %q not produced", name)
		}
	}

	if result.Signals.Len() != 10 {
		t.Fatalf("expected 10 signals, got %d", result.Signals.Len())
	}
}

func TestUptrendSignals(t *testing.T) {
	result := NewAnalyzer(barsFromCloses(risingCloses(60)...)).Compute()

	if sig := mustSignal(t, result, "MA_Cross"); sig.Direction != models.Bullish {
		t.Fatalf("MA_Cross in uptrend: expected Bullish, got %v (%s)", sig.Direction, sig.Reason)
	}
	if sig := mustSignal(t, result, "Price_vs_SMA200"); sig.Direction != models.Bullish {
		t.Fatalf("Price_vs_SMA200 in uptrend: expected Bullish, got %v", sig.Direction)
	}
	if sig := mustSignal(t, result, "MACD"); sig.Direction != models.Bullish {
		t.Fatalf("MACD in uptrend: expected Bullish, got %v", sig.Direction)
	}
	if sig := mustSignal(t, result, "OBV"); sig.Direction != models.Bullish {
		t.Fatalf("OBV in uptrend: expected Bullish, got %v", sig.Direction)
	}
	// A relentless rise pins RSI at 100, which reads overbought.
	if sig := mustSignal(t, result, "RSI"); sig.Direction != models.Bearish {
		t.Fatalf("RSI at 100: expected Bearish, got %v (%s)", sig.Direction, sig.Reason)
	}
}

func TestDowntrendSignals(t *testing.T) {
	result := NewAnalyzer(barsFromCloses(fallingCloses(60)...)).Compute()

	if sig := mustSignal(t, result, "MA_Cross"); sig.Direction != models.Bearish {
		t.Fatalf("MA_Cross in downtrend: expected Bearish, got %v", sig.Direction)
	}
	if sig := mustSignal(t, result, "Price_vs_SMA200"); sig.Direction != models.Bearish {
		t.Fatalf("Price_vs_SMA200 in downtrend: expected Bearish, got %v", sig.Direction)
	}
	if sig := mustSignal(t, result, "OBV"); sig.Direction != models.Bearish {
		t.Fatalf("OBV in downtrend: expected Bearish, got %v", sig.Direction)
	}
	// Pure losses pin RSI at 0, which reads oversold.
	if sig := mustSignal(t, result, "RSI"); sig.Direction != models.Bullish {
		t.Fatalf("RSI at 0: expected Bullish, got %v (%s)", sig.Direction, sig.Reason)
	}
	if sig := mustSignal(t, result, "Stochastic"); sig.Direction != models.Bullish {
		t.Fatalf("stochastic at range low: expected Bullish, got %v (%s)", sig.Direction, sig.Reason)
	}
}

func TestShortHistoryADXSentinel(t *testing.T) {
	// 14 bars is one short of the 15 ADX needs.
	result := NewAnalyzer(barsFromCloses(risingCloses(14)...)).Compute()

	val, ok := result.Metrics.Get("ADX")
	if !ok {
		t.Fatalf("ADX metric missing")
	}
	if val.Num != 0 {
		t.Fatalf("short-history ADX: expected 0 sentinel, got %v", val.Num)
	}
	sig := mustSignal(t, result, "ADX")
	if sig.Direction != models.Neutral || !strings.Contains(sig.Reason, "insufficient data") {
		t.Fatalf("short-history ADX signal: got %v (%s)", sig.Direction, sig.Reason)
	}
}

func TestADXWithEnoughHistory(t *testing.T) {
	series := models.NewSeries(barsFromCloses(risingCloses(40)...))
	val, ok := adxValue(series.High, series.Low, series.Close, 14)
	if !ok {
		t.Fatalf("40 bars should be enough history for ADX")
	}
	// Every bar moves up, so the directional index should read a strong trend.
	if val < 25 {
		t.Fatalf("monotonic uptrend: expected ADX above 25, got %v", val)
	}
}

func TestFlatSeriesFallbacks(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	// Flat bars with zero range everywhere.
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   decimal.NewFromFloat(c),
			High:   decimal.NewFromFloat(c),
			Low:    decimal.NewFromFloat(c),
			Close:  decimal.NewFromFloat(c),
			Volume: 1000,
		}
	}
	result := NewAnalyzer(bars).Compute()

	if v, _ := result.Metrics.Get("RSI_14"); v.Num != 100 {
		t.Fatalf("zero-loss RSI: expected 100, got %v", v.Num)
	}
	if v, _ := result.Metrics.Get("Stoch_K"); v.Num != 50 {
		t.Fatalf("flat-range stochastic: expected 50, got %v", v.Num)
	}
	if v, _ := result.Metrics.Get("Williams_R"); v.Num != -50 {
		t.Fatalf("flat-range Williams %%R: expected -50, got %v", v.Num)
	}
	if v, _ := result.Metrics.Get("CCI_20"); v.Num != 0 {
		t.Fatalf("zero-deviation CCI: expected 0, got %v", v.Num)
	}
}

func TestRSIShortHistory(t *testing.T) {
	if got := rsiValue([]float64{100}, 14); got != 100 {
		t.Fatalf("single bar: expected RSI 100, got %v", got)
	}
	// Two bars with one loss: gain 0, loss 5 -> RSI 0.
	if got := rsiValue([]float64{100, 95}, 14); got != 0 {
		t.Fatalf("single loss: expected RSI 0, got %v", got)
	}
}

func TestATRSingleBar(t *testing.T) {
	got := atrValue([]float64{12}, []float64{9}, []float64{10}, 14)
	if got != 3 {
		t.Fatalf("single bar ATR: expected high-low 3, got %v", got)
	}
}

func TestAggregateOverallUsesMargin(t *testing.T) {
	// Construct a set directly: 7 bullish vs 3 bearish and 2 neutral clears
	// the technical margin of 2.
	var s models.SignalSet
	for i := 0; i < 7; i++ {
		s.Add("b"+string(rune('a'+i)), models.Bullish, "")
	}
	for i := 0; i < 3; i++ {
		s.Add("s"+string(rune('a'+i)), models.Bearish, "")
	}
	s.Add("n1", models.Neutral, "")
	s.Add("n2", models.Neutral, "")

	got := models.Aggregate(&s, AggregationMargin)
	if got.Direction != models.Bullish {
		t.Fatalf("7B/3S/2N with margin 2: expected Bullish, got %v", got.Direction)
	}
}
