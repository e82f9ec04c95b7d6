// Package technical computes price/volume indicators over a bar history and
// classifies each into a bullish, bearish or neutral signal.
package technical

import (
	"github.com/avakin/stocksage/internal/models"
)

// AggregationMargin is the majority margin for the technical category.
// With ten-plus indicators the set is noisy, so one side must lead by more
// than two calls before the category as a whole takes a direction.
const AggregationMargin = 2

// Analyzer computes all technical indicators for one bar history.
// Each invocation is a pure single-shot computation: no state survives
// between calls and the input series is never mutated.
type Analyzer struct {
	series  models.Series
	metrics models.MetricSet
	signals models.SignalSet
}

// NewAnalyzer builds an analyzer over the given bars. The caller must
// provide at least one bar, ordered ascending by date.
func NewAnalyzer(bars []models.Bar) *Analyzer {
	return &Analyzer{series: models.NewSeries(bars)}
}

// Compute runs every indicator and returns the category result with the
// aggregated overall verdict.
func (a *Analyzer) Compute() models.CategoryResult {
	a.movingAverages()
	a.rsi()
	a.macd()
	a.bollingerBands()
	a.stochastic()
	a.atr()
	a.obv()
	a.adx()
	a.cci()
	a.williamsR()

	return models.CategoryResult{
		Metrics: a.metrics,
		Signals: a.signals,
		Overall: models.Aggregate(&a.signals, AggregationMargin),
	}
}
