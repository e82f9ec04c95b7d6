package technical

import (
	"fmt"
	"math"

	"github.com/avakin/stocksage/internal/mathutil"
	"github.com/avakin/stocksage/internal/models"
)

// bollingerBands computes the 20-period bands at two population standard
// deviations around the middle SMA.
func (a *Analyzer) bollingerBands() {
	const period = 20
	mid := mathutil.SMA(a.series.Close, period)
	band := 2 * mathutil.StdDev(a.series.Close, period)
	upper := mid + band
	lower := mid - band
	last := a.series.LastClose()

	a.metrics.Put("BB_Upper", models.Number(upper))
	a.metrics.Put("BB_Middle", models.Number(mid))
	a.metrics.Put("BB_Lower", models.Number(lower))

	switch {
	case last >= upper:
		a.signals.Add("Bollinger", models.Bearish,
			fmt.Sprintf("price %.2f at or above upper band %.2f", last, upper))
	case last <= lower:
		a.signals.Add("Bollinger", models.Bullish,
			fmt.Sprintf("price %.2f at or below lower band %.2f", last, lower))
	default:
		a.signals.Add("Bollinger", models.Neutral,
			fmt.Sprintf("price within bands (%.2f to %.2f)", lower, upper))
	}
}

// atr computes the 14-period average true range, also reported as a percent
// of the last close. ATR is a volatility context metric and emits no signal.
func (a *Analyzer) atr() {
	const period = 14
	val := atrValue(a.series.High, a.series.Low, a.series.Close, period)
	a.metrics.Put("ATR_14", models.Number(val))

	if last := a.series.LastClose(); last != 0 {
		a.metrics.Put("ATR_Pct", models.Percent(val/last*100))
	} else {
		a.metrics.Put("ATR_Pct", models.Unavailable())
	}
}

func atrValue(high, low, close []float64, period int) float64 {
	n := len(close)
	if n < 2 {
		if n == 1 {
			return high[0] - low[0]
		}
		return 0
	}
	trs := make([]float64, n-1)
	for i := 1; i < n; i++ {
		trs[i-1] = trueRange(high[i], low[i], close[i-1])
	}
	return mathutil.SMA(trs, period)
}

// trueRange is the Wilder true range: the largest of the bar's own range
// and the two gap ranges against the previous close.
func trueRange(high, low, prevClose float64) float64 {
	return math.Max(high-low, math.Max(math.Abs(high-prevClose), math.Abs(low-prevClose)))
}
