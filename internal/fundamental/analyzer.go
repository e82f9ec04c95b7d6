// Package fundamental scores a company's fundamental snapshot into named
// valuation, earnings, growth, dividend and range signals.
package fundamental

import (
	"fmt"
	"math"
	"strings"

	"github.com/avakin/stocksage/internal/models"
)

// AggregationMargin for fundamentals: with five signals a lead of two
// already constitutes a clear majority.
const AggregationMargin = 1

// Analyzer scores one fundamental snapshot.
type Analyzer struct {
	snap        Snapshot
	currencySym string
	metrics     models.MetricSet
	signals     models.SignalSet
}

// NewAnalyzer builds an analyzer for the snapshot; currencySym is used when
// formatting monetary metrics.
func NewAnalyzer(snap Snapshot, currencySym string) *Analyzer {
	if currencySym == "" {
		currencySym = "$"
	}
	return &Analyzer{snap: snap, currencySym: currencySym}
}

// Compute scores every fundamental dimension and aggregates the verdict.
func (a *Analyzer) Compute() models.CategoryResult {
	a.valuation()
	a.earnings()
	a.growth()
	a.dividends()
	a.weekRange()

	return models.CategoryResult{
		Metrics: a.metrics,
		Signals: a.signals,
		Overall: models.Aggregate(&a.signals, AggregationMargin),
	}
}

func (a *Analyzer) valuation() {
	pe := a.snap.TrailingPE
	fwd := a.snap.ForwardPE
	pb := a.snap.PriceToBook

	a.metrics.Put("Market Cap", humanNumber(float64(a.snap.MarketCap), a.currencySym))
	a.metrics.Put("P/E (TTM)", optionalNumber(pe))
	a.metrics.Put("Forward P/E", optionalNumber(fwd))
	a.metrics.Put("P/B", optionalNumber(pb))
	a.metrics.Put("Book Value", optionalNumber(a.snap.BookValue))

	score := 0
	var reasons []string
	switch {
	case pe > 0 && pe < 20:
		score++
		reasons = append(reasons, fmt.Sprintf("P/E %.1f below 20", pe))
	case pe > 35:
		score--
		reasons = append(reasons, fmt.Sprintf("P/E %.1f above 35", pe))
	}
	if pb > 0 && pb < 3 {
		score++
		reasons = append(reasons, fmt.Sprintf("P/B %.2f below 3", pb))
	}
	if pe > 0 && fwd > 0 && fwd < pe {
		score++
		reasons = append(reasons, fmt.Sprintf("forward P/E %.1f below trailing", fwd))
	}

	switch {
	case score > 0:
		a.signals.Add("Valuation", models.Bullish, strings.Join(reasons, "; "))
	case score < 0:
		a.signals.Add("Valuation", models.Bearish, strings.Join(reasons, "; "))
	default:
		a.signals.Add("Valuation", models.Neutral, "fair valuation")
	}
}

func (a *Analyzer) earnings() {
	eps := a.snap.EPSTrailing
	fwd := a.snap.EPSForward

	a.metrics.Put("EPS (TTM)", optionalNumber(eps))
	a.metrics.Put("EPS (Forward)", optionalNumber(fwd))

	switch {
	case eps < 0:
		a.signals.Add("Earnings", models.Bearish, fmt.Sprintf("negative trailing EPS %.2f", eps))
	case eps > 0 && fwd > eps:
		a.signals.Add("Earnings", models.Bullish,
			fmt.Sprintf("profitable, EPS %.2f with %.2f expected", eps, fwd))
	case eps > 0:
		a.signals.Add("Earnings", models.Neutral, fmt.Sprintf("profitable, EPS %.2f", eps))
	default:
		a.signals.Add("Earnings", models.Neutral, "no earnings data")
	}
}

func (a *Analyzer) growth() {
	eps := a.snap.EPSTrailing
	fwd := a.snap.EPSForward

	if eps == 0 || fwd == 0 {
		a.metrics.Put("EPS Growth (Fwd)", models.Unavailable())
		a.signals.Add("Growth", models.Neutral, "no growth data")
		return
	}

	growth := (fwd - eps) / math.Abs(eps) * 100
	a.metrics.Put("EPS Growth (Fwd)", models.Percent(growth))

	switch {
	case growth > 10:
		a.signals.Add("Growth", models.Bullish, fmt.Sprintf("forward EPS growth %.1f%%", growth))
	case growth < 0:
		a.signals.Add("Growth", models.Bearish, fmt.Sprintf("earnings expected to decline %.1f%%", growth))
	default:
		a.signals.Add("Growth", models.Neutral, "moderate growth")
	}
}

func (a *Analyzer) dividends() {
	yield := a.snap.DividendYield

	a.metrics.Put("Dividend Rate", optionalNumber(a.snap.DividendRate))
	if yield > 0 {
		a.metrics.Put("Dividend Yield", models.Percent(yield*100))
	} else {
		a.metrics.Put("Dividend Yield", models.Unavailable())
	}

	switch {
	case yield > 0.02:
		a.signals.Add("Dividends", models.Bullish, fmt.Sprintf("yield %.2f%%", yield*100))
	case yield > 0:
		a.signals.Add("Dividends", models.Neutral, fmt.Sprintf("yield %.2f%%", yield*100))
	default:
		a.signals.Add("Dividends", models.Neutral, "no dividend")
	}
}

func (a *Analyzer) weekRange() {
	low, high, price := a.snap.FiftyTwoWeekLow, a.snap.FiftyTwoWeekHigh, a.snap.Price

	a.metrics.Put("52W Low", optionalNumber(low))
	a.metrics.Put("52W High", optionalNumber(high))

	if high <= low || price <= 0 {
		a.metrics.Put("52W Position", models.Unavailable())
		a.signals.Add("52W Range", models.Neutral, "no range data")
		return
	}

	pos := (price - low) / (high - low) * 100
	a.metrics.Put("52W Position", models.Percent(pos))

	switch {
	case pos < 25:
		a.signals.Add("52W Range", models.Bullish,
			fmt.Sprintf("price in the bottom %.0f%% of the 52-week range", pos))
	case pos > 95:
		a.signals.Add("52W Range", models.Bearish, "price at the 52-week high")
	default:
		a.signals.Add("52W Range", models.Neutral,
			fmt.Sprintf("price at %.0f%% of the 52-week range", pos))
	}
}

// optionalNumber renders a provider field, treating the zero value as N/A.
func optionalNumber(v float64) models.MetricValue {
	if v == 0 {
		return models.Unavailable()
	}
	return models.Number(v)
}

// humanNumber formats a monetary amount with a K/M/B/T magnitude suffix.
func humanNumber(v float64, sym string) models.MetricValue {
	if v == 0 {
		return models.Unavailable()
	}
	sign := ""
	abs := v
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	switch {
	case abs >= 1e12:
		return models.Text(fmt.Sprintf("%s%s%.2fT", sign, sym, abs/1e12))
	case abs >= 1e9:
		return models.Text(fmt.Sprintf("%s%s%.2fB", sign, sym, abs/1e9))
	case abs >= 1e6:
		return models.Text(fmt.Sprintf("%s%s%.2fM", sign, sym, abs/1e6))
	case abs >= 1e3:
		return models.Text(fmt.Sprintf("%s%s%.2fK", sign, sym, abs/1e3))
	default:
		return models.Text(fmt.Sprintf("%s%s%.0f", sign, sym, abs))
	}
}
