// Package decision blends the per-category signal sets into one weighted
// trading recommendation with a confidence tier and explanation text.
package decision

import (
	"fmt"
	"math"
	"strings"

	"github.com/avakin/stocksage/internal/models"
)

// Recommendation is the five-tier verdict the engine maps scores onto.
type Recommendation int

const (
	StrongSell Recommendation = iota
	Sell
	Hold
	Buy
	StrongBuy
)

func (r Recommendation) String() string {
	switch r {
	case StrongBuy:
		return "STRONG BUY"
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	case StrongSell:
		return "STRONG SELL"
	default:
		return "HOLD"
	}
}

// Confidence qualifies how far the weighted score sits from the HOLD band.
type Confidence int

const (
	// ConfidenceNone is the HOLD tier; it renders as a literal dash.
	ConfidenceNone Confidence = iota
	ConfidenceModerate
	ConfidenceHigh
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceModerate:
		return "Moderate"
	default:
		return "—"
	}
}

// Weights holds the category blend weights. They must sum to 1.
type Weights struct {
	Technical   float64 `json:"technical"`
	Fundamental float64 `json:"fundamental"`
	News        float64 `json:"news"`
}

// DefaultWeights returns the standard 40/35/25 blend.
func DefaultWeights() Weights {
	return Weights{Technical: 0.40, Fundamental: 0.35, News: 0.25}
}

// Scores carries the per-category net scores and their weighted blend,
// each in [-1, 1].
type Scores struct {
	Technical   float64 `json:"technical"`
	Fundamental float64 `json:"fundamental"`
	News        float64 `json:"news"`
	Weighted    float64 `json:"weighted"`
}

// Result is the engine output. It is recomputed fresh on every invocation
// and never persisted.
type Result struct {
	Scores         Scores
	Weights        Weights
	Recommendation Recommendation
	Confidence     Confidence
	Explanation    string
}

// Engine is a pure function of its three input signal sets: no state
// survives between calls.
type Engine struct {
	weights Weights
}

// NewEngine builds an engine with the given weights. The weights must sum
// to 1 within floating-point tolerance.
func NewEngine(w Weights) (*Engine, error) {
	total := w.Technical + w.Fundamental + w.News
	if math.Abs(total-1.0) > 1e-9 {
		return nil, fmt.Errorf("category weights must sum to 1.0, got %.4f", total)
	}
	return &Engine{weights: w}, nil
}

// Decide blends the three categories' named signals into a recommendation.
func (e *Engine) Decide(technical, fundamental, news *models.SignalSet) Result {
	s := Scores{
		Technical:   NetScore(technical),
		Fundamental: NetScore(fundamental),
		News:        NetScore(news),
	}
	s.Weighted = s.Technical*e.weights.Technical +
		s.Fundamental*e.weights.Fundamental +
		s.News*e.weights.News

	rec, conf := mapScore(s.Weighted)

	return Result{
		Scores:         s,
		Weights:        e.weights,
		Recommendation: rec,
		Confidence:     conf,
		Explanation:    e.explain(s, rec),
	}
}

// NetScore reduces a set of named signals to (bullish-bearish)/total in
// [-1, 1]. An empty set scores 0. The category's aggregated overall
// verdict lives outside the set, so nothing here is double-counted.
func NetScore(signals *models.SignalSet) float64 {
	total := signals.Len()
	if total == 0 {
		return 0
	}
	bullish, bearish, _ := signals.Counts()
	return float64(bullish-bearish) / float64(total)
}

// mapScore converts a weighted score to the recommendation tier. The
// thresholds are evaluated in order.
func mapScore(score float64) (Recommendation, Confidence) {
	switch {
	case score >= 0.40:
		return StrongBuy, ConfidenceHigh
	case score >= 0.15:
		return Buy, ConfidenceModerate
	case score > -0.15:
		return Hold, ConfidenceNone
	case score > -0.40:
		return Sell, ConfidenceModerate
	default:
		return StrongSell, ConfidenceHigh
	}
}

// explain renders the deterministic multi-line breakdown used for both the
// console report and the LLM prompt.
func (e *Engine) explain(s Scores, rec Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Technical analysis score: %+.2f (weight %.0f%%)\n", s.Technical, e.weights.Technical*100)
	fmt.Fprintf(&b, "Fundamental analysis score: %+.2f (weight %.0f%%)\n", s.Fundamental, e.weights.Fundamental*100)
	fmt.Fprintf(&b, "News sentiment score: %+.2f (weight %.0f%%)\n", s.News, e.weights.News*100)
	fmt.Fprintf(&b, "Combined weighted score: %+.2f\n", s.Weighted)
	fmt.Fprintf(&b, "Recommendation: %s\n", rec)
	b.WriteString("\n")
	b.WriteString("Score interpretation: -1.0 (Strong Sell) to +1.0 (Strong Buy)\n")
	b.WriteString("  >= +0.40  STRONG BUY  | >= +0.15  BUY  | -0.15 to +0.15  HOLD\n")
	b.WriteString("  <= -0.15  SELL        | <= -0.40  STRONG SELL")
	return b.String()
}
