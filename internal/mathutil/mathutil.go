// Package mathutil provides the stateless rolling statistics the indicator
// engine is built on. All functions operate on the trailing
// min(period, len(series)) window, so short histories shrink the window
// instead of failing.
package mathutil

import "math"

// window returns the trailing min(period, len(series)) slice.
func window(series []float64, period int) []float64 {
	if period <= 0 || period > len(series) {
		return series
	}
	return series[len(series)-period:]
}

// SMA returns the simple moving average over the trailing window.
func SMA(series []float64, period int) float64 {
	w := window(series, period)
	if len(w) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	return sum / float64(len(w))
}

// EMASeries returns the full running exponential moving average sequence,
// seeded with the first element: ema[i] = v[i]*k + ema[i-1]*(1-k) with
// k = 2/(period+1). The full sequence is needed by MACD, whose signal line
// is an EMA of a derived series.
func EMASeries(series []float64, period int) []float64 {
	if len(series) == 0 {
		return nil
	}
	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = series[i]*k + out[i-1]*(1.0-k)
	}
	return out
}

// EMA returns the final exponential moving average value.
func EMA(series []float64, period int) float64 {
	seq := EMASeries(series, period)
	if len(seq) == 0 {
		return 0
	}
	return seq[len(seq)-1]
}

// StdDev returns the population standard deviation over the trailing
// window (divides by the window length, not length-1).
func StdDev(series []float64, period int) float64 {
	w := window(series, period)
	if len(w) == 0 {
		return 0
	}
	mean := SMA(w, len(w))
	sum := 0.0
	for _, v := range w {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(w)))
}

// MeanAbsDev returns the mean absolute deviation from the window mean over
// the trailing window.
func MeanAbsDev(series []float64, period int) float64 {
	w := window(series, period)
	if len(w) == 0 {
		return 0
	}
	mean := SMA(w, len(w))
	sum := 0.0
	for _, v := range w {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(w))
}

// RollingMax returns the maximum over the trailing window.
func RollingMax(series []float64, period int) float64 {
	w := window(series, period)
	if len(w) == 0 {
		return 0
	}
	max := w[0]
	for _, v := range w[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// RollingMin returns the minimum over the trailing window.
func RollingMin(series []float64, period int) float64 {
	w := window(series, period)
	if len(w) == 0 {
		return 0
	}
	min := w[0]
	for _, v := range w[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
