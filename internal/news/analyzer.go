// Package news fetches recent headlines for a symbol and turns their
// lexicon-scored sentiment into a category result.
package news

import (
	"fmt"

	"github.com/avakin/stocksage/internal/models"
)

// AggregationMargin for headline-derived signals.
const AggregationMargin = 1

// Result is the news category output plus the scored headlines for
// display and prompt building.
type Result struct {
	Category  models.CategoryResult
	Headlines []Headline
}

// Analyze scores the headlines and derives the news category result. The
// overall verdict follows the average compound sentiment, mirroring the
// thresholds the headline labels use.
func Analyze(headlines []Headline) Result {
	var metrics models.MetricSet
	var signals models.SignalSet

	if len(headlines) == 0 {
		metrics.Put("News Count", models.NumberN(0, 0))
		metrics.Put("Avg Sentiment", models.Unavailable())
		return Result{Category: models.CategoryResult{
			Metrics: metrics,
			Signals: signals,
			Overall: models.Signal{Direction: models.Neutral, Reason: "no news data available"},
		}}
	}

	scored := make([]Headline, len(headlines))
	sum := 0.0
	positive, negative := 0, 0
	for i, h := range headlines {
		h.Score = Score(h.Title)
		h.Label = Label(h.Score)
		scored[i] = h
		sum += h.Score
		switch h.Label {
		case "Positive":
			positive++
		case "Negative":
			negative++
		}
	}

	total := len(scored)
	avg := sum / float64(total)
	neutral := total - positive - negative

	metrics.Put("News Count", models.NumberN(float64(total), 0))
	metrics.Put("Avg Sentiment", models.NumberN(avg, 3))
	metrics.Put("Positive Headlines", models.NumberN(float64(positive), 0))
	metrics.Put("Negative Headlines", models.NumberN(float64(negative), 0))
	metrics.Put("Neutral Headlines", models.NumberN(float64(neutral), 0))

	// Average tone across all headlines.
	switch {
	case avg > PositiveThreshold:
		signals.Add("Sentiment", models.Bullish, fmt.Sprintf("average sentiment %.3f positive", avg))
	case avg < NegativeThreshold:
		signals.Add("Sentiment", models.Bearish, fmt.Sprintf("average sentiment %.3f negative", avg))
	default:
		signals.Add("Sentiment", models.Neutral, fmt.Sprintf("average sentiment %.3f mixed", avg))
	}

	// Count balance between positive and negative headlines.
	switch {
	case positive > negative:
		signals.Add("Headline Balance", models.Bullish,
			fmt.Sprintf("%d positive vs %d negative of %d headlines", positive, negative, total))
	case negative > positive:
		signals.Add("Headline Balance", models.Bearish,
			fmt.Sprintf("%d negative vs %d positive of %d headlines", negative, positive, total))
	default:
		signals.Add("Headline Balance", models.Neutral,
			fmt.Sprintf("balanced coverage, %dP/%dN of %d", positive, negative, total))
	}

	// Tone of the freshest headlines versus the whole window; sources
	// return newest first.
	recent := scored
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentSum := 0.0
	for _, h := range recent {
		recentSum += h.Score
	}
	recentAvg := recentSum / float64(len(recent))
	switch {
	case recentAvg > avg+PositiveThreshold:
		signals.Add("Sentiment Trend", models.Bullish,
			fmt.Sprintf("latest headlines %.3f above the %.3f average", recentAvg, avg))
	case recentAvg < avg+NegativeThreshold:
		signals.Add("Sentiment Trend", models.Bearish,
			fmt.Sprintf("latest headlines %.3f below the %.3f average", recentAvg, avg))
	default:
		signals.Add("Sentiment Trend", models.Neutral, "tone steady across recent headlines")
	}

	return Result{
		Category: models.CategoryResult{
			Metrics: metrics,
			Signals: signals,
			Overall: overall(avg, positive, negative, total),
		},
		Headlines: scored,
	}
}

// overall maps the average sentiment to the category verdict, with wider
// thresholds when the headline counts back the tone up.
func overall(avg float64, positive, negative, total int) models.Signal {
	switch {
	case avg > 0.15 && positive > negative:
		return models.Signal{Direction: models.Bullish,
			Reason: fmt.Sprintf("avg sentiment %.3f, %d/%d positive", avg, positive, total)}
	case avg < -0.15 && negative > positive:
		return models.Signal{Direction: models.Bearish,
			Reason: fmt.Sprintf("avg sentiment %.3f, %d/%d negative", avg, negative, total)}
	case avg > PositiveThreshold:
		return models.Signal{Direction: models.Bullish, Reason: fmt.Sprintf("slightly positive sentiment %.3f", avg)}
	case avg < NegativeThreshold:
		return models.Signal{Direction: models.Bearish, Reason: fmt.Sprintf("slightly negative sentiment %.3f", avg)}
	default:
		return models.Signal{Direction: models.Neutral, Reason: fmt.Sprintf("mixed sentiment %.3f", avg)}
	}
}
