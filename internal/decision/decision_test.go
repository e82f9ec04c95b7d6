package decision

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/avakin/stocksage/internal/models"
)

// signalSet builds a set with the given direction counts.
func signalSet(bullish, bearish, neutral int) *models.SignalSet {
	var s models.SignalSet
	n := 0
	add := func(d models.Direction, count int) {
		for i := 0; i < count; i++ {
			s.Add("sig"+string(rune('a'+n)), d, "")
			n++
		}
	}
	add(models.Bullish, bullish)
	add(models.Bearish, bearish)
	add(models.Neutral, neutral)
	return &s
}

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultWeights())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func TestWeightsMustSumToOne(t *testing.T) {
	if _, err := NewEngine(Weights{Technical: 0.5, Fundamental: 0.5, News: 0.5}); err == nil {
		t.Fatalf("expected error for weights summing to 1.5")
	}
	if _, err := NewEngine(Weights{Technical: 0.6, Fundamental: 0.3, News: 0.1}); err != nil {
		t.Fatalf("valid alternate weights rejected: %v", err)
	}
}

func TestNetScore(t *testing.T) {
	if got := NetScore(signalSet(6, 2, 0)); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("6B/2S of 8: expected 0.5, got %v", got)
	}
	if got := NetScore(signalSet(0, 4, 0)); got != -1 {
		t.Fatalf("all bearish: expected -1, got %v", got)
	}
	if got := NetScore(&models.SignalSet{}); got != 0 {
		t.Fatalf("empty set: expected 0, got %v", got)
	}
}

func TestDecideModerateBuy(t *testing.T) {
	engine := mustEngine(t)

	// Category scores 0.50 / 0.30 / 0.10 blend to 0.33.
	result := engine.Decide(signalSet(6, 2, 0), signalSet(5, 2, 3), signalSet(3, 2, 5))

	if math.Abs(result.Scores.Weighted-0.33) > 1e-9 {
		t.Fatalf("weighted: expected 0.33, got %v", result.Scores.Weighted)
	}
	if result.Recommendation != Buy {
		t.Fatalf("expected BUY, got %s", result.Recommendation)
	}
	if result.Confidence != ConfidenceModerate {
		t.Fatalf("expected Moderate confidence, got %s", result.Confidence)
	}
}

func TestDecideStrongBuy(t *testing.T) {
	engine := mustEngine(t)
	result := engine.Decide(signalSet(5, 0, 0), signalSet(4, 0, 0), signalSet(3, 0, 0))

	if result.Scores.Weighted != 1 {
		t.Fatalf("all bullish: expected weighted 1.0, got %v", result.Scores.Weighted)
	}
	if result.Recommendation != StrongBuy || result.Confidence != ConfidenceHigh {
		t.Fatalf("expected STRONG BUY/High, got %s/%s", result.Recommendation, result.Confidence)
	}
}

func TestDecideHoldOnEmptyInputs(t *testing.T) {
	engine := mustEngine(t)
	result := engine.Decide(&models.SignalSet{}, &models.SignalSet{}, &models.SignalSet{})

	if result.Scores.Weighted != 0 {
		t.Fatalf("expected weighted 0, got %v", result.Scores.Weighted)
	}
	if result.Recommendation != Hold {
		t.Fatalf("expected HOLD, got %s", result.Recommendation)
	}
	// The HOLD tier renders its confidence as a literal dash.
	if result.Confidence.String() != "—" {
		t.Fatalf("HOLD confidence: expected dash, got %q", result.Confidence)
	}
}

func TestDecideStrongSell(t *testing.T) {
	engine := mustEngine(t)

	// -1.0 / -0.2 / 0.0 blend to -0.47.
	result := engine.Decide(
		signalSet(0, 8, 0),
		signalSet(1, 2, 2),
		&models.SignalSet{})

	if math.Abs(result.Scores.Weighted-(-0.47)) > 1e-9 {
		t.Fatalf("weighted: expected -0.47, got %v", result.Scores.Weighted)
	}
	if result.Recommendation != StrongSell || result.Confidence != ConfidenceHigh {
		t.Fatalf("expected STRONG SELL/High, got %s/%s", result.Recommendation, result.Confidence)
	}
}

func TestMapScoreThresholds(t *testing.T) {
	cases := []struct {
		score float64
		rec   Recommendation
		conf  Confidence
	}{
		{0.40, StrongBuy, ConfidenceHigh},
		{0.39, Buy, ConfidenceModerate},
		{0.15, Buy, ConfidenceModerate},
		{0.1499, Hold, ConfidenceNone},
		{0, Hold, ConfidenceNone},
		{-0.1499, Hold, ConfidenceNone},
		{-0.15, Sell, ConfidenceModerate},
		{-0.39, Sell, ConfidenceModerate},
		{-0.40, StrongSell, ConfidenceHigh},
	}
	for _, tc := range cases {
		rec, conf := mapScore(tc.score)
		if rec != tc.rec || conf != tc.conf {
			t.Fatalf("score %v: expected %s/%s, got %s/%s", tc.score, tc.rec, tc.conf, rec, conf)
		}
	}
}

func TestDecideIsIdempotent(t *testing.T) {
	engine := mustEngine(t)
	ta, fa, ns := signalSet(4, 2, 1), signalSet(2, 2, 1), signalSet(1, 0, 2)

	first := engine.Decide(ta, fa, ns)
	second := engine.Decide(ta, fa, ns)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestNetScoreRoundTrip(t *testing.T) {
	engine := mustEngine(t)
	ta := signalSet(4, 1, 3)

	result := engine.Decide(ta, &models.SignalSet{}, &models.SignalSet{})
	if got := NetScore(ta); got != result.Scores.Technical {
		t.Fatalf("recomputed net score %v differs from engine's %v", got, result.Scores.Technical)
	}
}

func TestExplanationContents(t *testing.T) {
	engine := mustEngine(t)
	result := engine.Decide(signalSet(6, 2, 0), signalSet(5, 2, 3), signalSet(3, 2, 5))

	for _, want := range []string{
		"Technical analysis score: +0.50 (weight 40%)",
		"Fundamental analysis score: +0.30 (weight 35%)",
		"News sentiment score: +0.10 (weight 25%)",
		"Combined weighted score: +0.33",
		"Recommendation: BUY",
		"STRONG SELL",
	} {
		if !strings.Contains(result.Explanation, want) {
			t.Fatalf("explanation missing %q:\n%s", want, result.Explanation)
		}
	}
}
