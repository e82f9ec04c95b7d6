package news

import (
	"math"
	"strings"
)

// Headline sentiment is scored with a small valence lexicon tuned for
// financial headlines. Each matched token contributes its valence, a
// preceding negator flips the contribution, and the sum is squashed into a
// compound score in [-1, 1].

const (
	// normalizationAlpha dampens the squash so a single strong word does
	// not saturate the compound score.
	normalizationAlpha = 15.0

	// PositiveThreshold and NegativeThreshold bound the neutral band for
	// labeling individual headlines.
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

var lexicon = map[string]float64{
	// positive
	"beat": 1.9, "beats": 1.9, "strong": 1.5, "growth": 1.6, "profit": 1.7,
	"profits": 1.7, "gain": 1.5, "gains": 1.5, "rally": 1.8, "rallies": 1.8,
	"surge": 2.0, "surges": 2.0, "soar": 2.2, "soars": 2.2, "jump": 1.6,
	"jumps": 1.6, "record": 1.4, "upgrade": 1.8, "upgraded": 1.8, "upgrades": 1.8,
	"bullish": 1.9, "buy": 1.3, "outperform": 1.7, "boost": 1.4, "boosts": 1.4,
	"success": 1.8, "successful": 1.8, "win": 1.7, "wins": 1.7, "winner": 1.7,
	"rise": 1.3, "rises": 1.3, "rising": 1.3, "up": 0.8, "high": 0.9,
	"higher": 1.0, "positive": 1.6, "optimistic": 1.6, "opportunity": 1.2,
	"good": 1.5, "great": 2.0, "best": 2.2, "top": 1.1, "exceed": 1.6,
	"exceeds": 1.6, "expand": 1.2, "expands": 1.2, "expansion": 1.2,
	"breakthrough": 1.9, "approval": 1.4, "approved": 1.4, "dividend": 0.8,
	"momentum": 1.0, "recovery": 1.3, "recovers": 1.3, "upbeat": 1.6,

	// negative
	"miss": -1.8, "misses": -1.8, "missed": -1.8, "weak": -1.5, "loss": -1.7,
	"losses": -1.7, "lose": -1.5, "loses": -1.5, "fall": -1.4, "falls": -1.4,
	"falling": -1.4, "drop": -1.5, "drops": -1.5, "plunge": -2.2, "plunges": -2.2,
	"crash": -2.5, "crashes": -2.5, "tumble": -1.9, "tumbles": -1.9,
	"slump": -1.8, "slumps": -1.8, "downgrade": -1.8, "downgraded": -1.8,
	"downgrades": -1.8, "bearish": -1.9, "sell": -1.3, "selloff": -2.0,
	"underperform": -1.7, "cut": -1.2, "cuts": -1.2, "warn": -1.6, "warns": -1.6,
	"warning": -1.6, "risk": -1.1, "risks": -1.1, "concern": -1.3,
	"concerns": -1.3, "fear": -1.6, "fears": -1.6, "down": -0.8, "low": -0.9,
	"lower": -1.0, "negative": -1.6, "lawsuit": -1.7, "sues": -1.6, "sued": -1.6,
	"probe": -1.4, "investigation": -1.4, "fraud": -2.3, "scandal": -2.1,
	"bankruptcy": -2.6, "bankrupt": -2.6, "default": -2.0, "layoff": -1.8,
	"layoffs": -1.8, "recall": -1.5, "halt": -1.4, "halts": -1.4, "halted": -1.4,
	"bad": -1.5, "worst": -2.2, "trouble": -1.5, "struggles": -1.5,
	"struggle": -1.5, "decline": -1.4, "declines": -1.4, "declining": -1.4,
	"debt": -0.9, "shortfall": -1.6, "slowdown": -1.4, "volatile": -1.0,
	"pressure": -1.0, "crisis": -2.0, "recession": -1.9,
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "without": true, "hardly": true,
	"isnt": true, "wasnt": true, "doesnt": true, "dont": true, "wont": true,
	"cant": true, "cannot": true,
}

// Score returns the compound sentiment of a headline in [-1, 1].
func Score(text string) float64 {
	tokens := tokenize(text)
	sum := 0.0
	for i, tok := range tokens {
		valence, ok := lexicon[tok]
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			valence = -valence
		}
		sum += valence
	}
	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

// Label classifies a compound score as Positive, Negative or Neutral.
func Label(score float64) string {
	switch {
	case score > PositiveThreshold:
		return "Positive"
	case score < NegativeThreshold:
		return "Negative"
	default:
		return "Neutral"
	}
}

func tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		default:
			return true
		}
	})
}
