package fundamental

// Snapshot carries the fundamental fields the analyzer scores. Zero values
// mean the provider had no data for the field; the analyzer treats them as
// unavailable rather than as literal zeros.
type Snapshot struct {
	Price            float64
	TrailingPE       float64
	ForwardPE        float64
	PriceToBook      float64
	BookValue        float64
	EPSTrailing      float64
	EPSForward       float64
	DividendRate     float64 // trailing annual dividend per share
	DividendYield    float64 // trailing annual yield as a fraction
	MarketCap        int64
	FiftyTwoWeekLow  float64
	FiftyTwoWeekHigh float64
}
