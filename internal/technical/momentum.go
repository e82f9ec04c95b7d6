package technical

import (
	"fmt"

	"github.com/avakin/stocksage/internal/mathutil"
	"github.com/avakin/stocksage/internal/models"
)

// rsi computes the 14-period relative strength index from average gains and
// losses over the trailing changes. A zero average loss pins RSI at 100.
func (a *Analyzer) rsi() {
	val := rsiValue(a.series.Close, 14)
	a.metrics.Put("RSI_14", models.Number(val))

	switch {
	case val > 70:
		a.signals.Add("RSI", models.Bearish, fmt.Sprintf("RSI %.2f, overbought", val))
	case val < 30:
		a.signals.Add("RSI", models.Bullish, fmt.Sprintf("RSI %.2f, oversold", val))
	default:
		a.signals.Add("RSI", models.Neutral, fmt.Sprintf("RSI %.2f, neutral zone", val))
	}
}

func rsiValue(close []float64, period int) float64 {
	if len(close) < 2 {
		return 100
	}
	n := period
	if n > len(close)-1 {
		n = len(close) - 1
	}
	gain, loss := 0.0, 0.0
	for i := len(close) - n; i < len(close); i++ {
		d := close[i] - close[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100
	}
	rs := gain / loss
	return 100 - 100/(1+rs)
}

// stochastic computes %K over the trailing 14-bar high/low range and %D as
// the 3-period average of the rolling %K. The signal classifies %K.
func (a *Analyzer) stochastic() {
	const period = 14
	k := stochasticK(a.series.High, a.series.Low, a.series.Close, period)
	d := stochasticD(a.series.High, a.series.Low, a.series.Close, period, 3)

	a.metrics.Put("Stoch_K", models.Number(k))
	a.metrics.Put("Stoch_D", models.Number(d))

	switch {
	case k < 20:
		a.signals.Add("Stochastic", models.Bullish, fmt.Sprintf("stochastic %%K %.2f, oversold", k))
	case k > 80:
		a.signals.Add("Stochastic", models.Bearish, fmt.Sprintf("stochastic %%K %.2f, overbought", k))
	default:
		a.signals.Add("Stochastic", models.Neutral, fmt.Sprintf("stochastic %%K %.2f, neutral", k))
	}
}

func stochasticK(high, low, close []float64, period int) float64 {
	hh := mathutil.RollingMax(high, period)
	ll := mathutil.RollingMin(low, period)
	if hh == ll {
		return 50 // flat range, price sits mid-band
	}
	last := close[len(close)-1]
	return (last - ll) / (hh - ll) * 100
}

func stochasticD(high, low, close []float64, period, smooth int) float64 {
	n := len(close)
	if smooth > n {
		smooth = n
	}
	ks := make([]float64, 0, smooth)
	for i := n - smooth; i < n; i++ {
		ks = append(ks, stochasticK(high[:i+1], low[:i+1], close[:i+1], period))
	}
	return mathutil.SMA(ks, len(ks))
}

// williamsR computes Williams %R over the trailing 14-bar range.
func (a *Analyzer) williamsR() {
	const period = 14
	hh := mathutil.RollingMax(a.series.High, period)
	ll := mathutil.RollingMin(a.series.Low, period)

	wr := -50.0 // flat range fallback, mirrors the stochastic midpoint
	if hh != ll {
		wr = (hh - a.series.LastClose()) / (hh - ll) * -100
	}
	a.metrics.Put("Williams_R", models.Number(wr))

	switch {
	case wr < -80:
		a.signals.Add("Williams_R", models.Bullish, fmt.Sprintf("Williams %%R %.2f, oversold", wr))
	case wr > -20:
		a.signals.Add("Williams_R", models.Bearish, fmt.Sprintf("Williams %%R %.2f, overbought", wr))
	default:
		a.signals.Add("Williams_R", models.Neutral, fmt.Sprintf("Williams %%R %.2f, neutral", wr))
	}
}

// cci computes the 20-period commodity channel index from the typical price
// and its mean absolute deviation. Zero deviation yields 0.
func (a *Analyzer) cci() {
	const period = 20
	n := a.series.Len()
	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (a.series.High[i] + a.series.Low[i] + a.series.Close[i]) / 3
	}

	mad := mathutil.MeanAbsDev(tp, period)
	val := 0.0
	if mad != 0 {
		val = (tp[n-1] - mathutil.SMA(tp, period)) / (0.015 * mad)
	}
	a.metrics.Put("CCI_20", models.Number(val))

	switch {
	case val > 100:
		a.signals.Add("CCI", models.Bearish, fmt.Sprintf("CCI %.2f, overbought", val))
	case val < -100:
		a.signals.Add("CCI", models.Bullish, fmt.Sprintf("CCI %.2f, oversold", val))
	default:
		a.signals.Add("CCI", models.Neutral, fmt.Sprintf("CCI %.2f, neutral", val))
	}
}
