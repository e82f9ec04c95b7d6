package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar represents one OHLCV observation for a single trading period.
// Bars are ordered ascending by date with no duplicate dates.
type Bar struct {
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// Series holds the unpacked float64 columns of a bar history. Indicator
// math operates on these rather than on decimals.
type Series struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// NewSeries converts a bar history into parallel float64 columns.
func NewSeries(bars []Bar) Series {
	s := Series{
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]float64, len(bars)),
	}
	for i, b := range bars {
		s.Open[i], _ = b.Open.Float64()
		s.High[i], _ = b.High.Float64()
		s.Low[i], _ = b.Low.Float64()
		s.Close[i], _ = b.Close.Float64()
		s.Volume[i] = float64(b.Volume)
	}
	return s
}

// Len returns the number of bars in the series.
func (s Series) Len() int {
	return len(s.Close)
}

// LastClose returns the most recent closing price, or 0 for an empty series.
func (s Series) LastClose() float64 {
	if len(s.Close) == 0 {
		return 0
	}
	return s.Close[len(s.Close)-1]
}
