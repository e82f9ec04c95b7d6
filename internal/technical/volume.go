package technical

import (
	"github.com/avakin/stocksage/internal/models"
)

// obv computes on-balance volume cumulatively from the second bar: volume
// is added on up days, subtracted on down days and carried on flat days.
// The signal compares the current OBV to its value ten bars earlier,
// clamped to the start of a short history.
func (a *Analyzer) obv() {
	close, volume := a.series.Close, a.series.Volume
	n := len(close)

	obv := make([]float64, n)
	for i := 1; i < n; i++ {
		switch {
		case close[i] > close[i-1]:
			obv[i] = obv[i-1] + volume[i]
		case close[i] < close[i-1]:
			obv[i] = obv[i-1] - volume[i]
		default:
			obv[i] = obv[i-1]
		}
	}

	current := obv[n-1]
	a.metrics.Put("OBV", models.NumberN(current, 0))

	ref := n - 10
	if ref < 0 {
		ref = 0
	}
	if current > obv[ref] {
		a.signals.Add("OBV", models.Bullish, "OBV rising, volume confirming trend")
	} else {
		a.signals.Add("OBV", models.Bearish, "OBV falling, volume diverging")
	}
}
