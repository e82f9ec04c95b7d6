package technical

import (
	"fmt"

	"github.com/avakin/stocksage/internal/mathutil"
	"github.com/avakin/stocksage/internal/models"
)

// movingAverages computes the SMA/EMA family and the two trend signals:
// the 50/200 cross and price relative to the 200-day average.
func (a *Analyzer) movingAverages() {
	close := a.series.Close
	sma20 := mathutil.SMA(close, 20)
	sma50 := mathutil.SMA(close, 50)
	sma200 := mathutil.SMA(close, 200)
	ema12 := mathutil.EMA(close, 12)
	ema26 := mathutil.EMA(close, 26)
	last := a.series.LastClose()

	a.metrics.Put("SMA_20", models.Number(sma20))
	a.metrics.Put("SMA_50", models.Number(sma50))
	a.metrics.Put("SMA_200", models.Number(sma200))
	a.metrics.Put("EMA_12", models.Number(ema12))
	a.metrics.Put("EMA_26", models.Number(ema26))

	if sma50 > sma200 {
		a.signals.Add("MA_Cross", models.Bullish, "golden cross (SMA50 above SMA200)")
	} else {
		a.signals.Add("MA_Cross", models.Bearish, "death cross (SMA50 below SMA200)")
	}

	if last > sma200 {
		a.signals.Add("Price_vs_SMA200", models.Bullish,
			fmt.Sprintf("price %.2f above SMA200 %.2f", last, sma200))
	} else {
		a.signals.Add("Price_vs_SMA200", models.Bearish,
			fmt.Sprintf("price %.2f below SMA200 %.2f", last, sma200))
	}
}

// macd computes the MACD line as the difference of the full EMA12 and EMA26
// sequences, the signal line as the EMA9 of that derived sequence, and the
// histogram as their gap.
func (a *Analyzer) macd() {
	close := a.series.Close
	ema12 := mathutil.EMASeries(close, 12)
	ema26 := mathutil.EMASeries(close, 26)

	line := make([]float64, len(close))
	for i := range close {
		line[i] = ema12[i] - ema26[i]
	}
	signal := mathutil.EMASeries(line, 9)

	lastLine := line[len(line)-1]
	lastSignal := signal[len(signal)-1]

	a.metrics.Put("MACD_Line", models.NumberN(lastLine, 4))
	a.metrics.Put("MACD_Signal", models.NumberN(lastSignal, 4))
	a.metrics.Put("MACD_Histogram", models.NumberN(lastLine-lastSignal, 4))

	if lastLine > lastSignal {
		a.signals.Add("MACD", models.Bullish, "MACD line above signal line")
	} else {
		a.signals.Add("MACD", models.Bearish, "MACD line below signal line")
	}
}

// adx computes the Wilder-smoothed average directional index. Unlike every
// other indicator, ADX requires a full period+1 bars of history and reports
// a 0/insufficient-data sentinel below that. The asymmetry matches the
// behavior of the reference calculation and is kept on purpose.
func (a *Analyzer) adx() {
	const period = 14
	val, ok := adxValue(a.series.High, a.series.Low, a.series.Close, period)
	a.metrics.Put("ADX", models.Number(val))

	switch {
	case !ok:
		a.signals.Add("ADX", models.Neutral,
			fmt.Sprintf("insufficient data for ADX (need %d bars)", period+1))
	case val > 25:
		a.signals.Add("ADX", models.Neutral, fmt.Sprintf("ADX %.2f, strong trend", val))
	default:
		a.signals.Add("ADX", models.Neutral, fmt.Sprintf("ADX %.2f, weak or no trend", val))
	}
}

// adxValue returns the ADX over the given period and whether enough history
// was available. It needs period+1 bars to form period directional moves.
func adxValue(high, low, close []float64, period int) (float64, bool) {
	n := len(close)
	if n < period+1 {
		return 0, false
	}

	m := n - 1
	tr := make([]float64, m)
	plusDM := make([]float64, m)
	minusDM := make([]float64, m)
	for i := 1; i < n; i++ {
		tr[i-1] = trueRange(high[i], low[i], close[i-1])

		up := high[i] - high[i-1]
		down := low[i-1] - low[i]
		if up > down && up > 0 {
			plusDM[i-1] = up
		}
		if down > up && down > 0 {
			minusDM[i-1] = down
		}
	}

	// Wilder smoothing: seed with the sum of the first period values, then
	// smoothed = smoothed - smoothed/period + current.
	smTR := sum(tr[:period])
	smPlus := sum(plusDM[:period])
	smMinus := sum(minusDM[:period])

	dx := make([]float64, 0, m-period+1)
	dx = append(dx, dxValue(smPlus, smMinus, smTR))
	for i := period; i < m; i++ {
		smTR = smTR - smTR/float64(period) + tr[i]
		smPlus = smPlus - smPlus/float64(period) + plusDM[i]
		smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		dx = append(dx, dxValue(smPlus, smMinus, smTR))
	}

	return mathutil.SMA(dx, period), true
}

func dxValue(smPlus, smMinus, smTR float64) float64 {
	if smTR == 0 {
		return 0
	}
	pdi := 100 * smPlus / smTR
	mdi := 100 * smMinus / smTR
	if pdi+mdi == 0 {
		return 0
	}
	diff := pdi - mdi
	if diff < 0 {
		diff = -diff
	}
	return diff / (pdi + mdi) * 100
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
