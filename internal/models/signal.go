package models

import "fmt"

// Direction is the three-valued call an indicator or aggregator makes.
type Direction int

const (
	Neutral Direction = iota
	Bullish
	Bearish
)

func (d Direction) String() string {
	switch d {
	case Bullish:
		return "Bullish"
	case Bearish:
		return "Bearish"
	default:
		return "Neutral"
	}
}

// Signal is a directional call with a human-readable justification.
// Signals are immutable values: produced once, never mutated.
type Signal struct {
	Direction Direction `json:"direction"`
	Reason    string    `json:"reason"`
}

// NamedSignal pairs a signal with the indicator name that produced it.
type NamedSignal struct {
	Name   string `json:"name"`
	Signal Signal `json:"signal"`
}

// SignalSet is an insertion-ordered collection of named signals. Names are
// unique within a set; re-adding a name overwrites the earlier entry in
// place. The aggregated category verdict lives on CategoryResult.Overall,
// never inside the set, so counting the set never double-counts.
type SignalSet struct {
	entries []NamedSignal
}

// Add appends a signal under the given name, replacing an existing entry
// with the same name without changing its position.
func (s *SignalSet) Add(name string, d Direction, reason string) {
	sig := Signal{Direction: d, Reason: reason}
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Signal = sig
			return
		}
	}
	s.entries = append(s.entries, NamedSignal{Name: name, Signal: sig})
}

// Get looks up a signal by name.
func (s *SignalSet) Get(name string) (Signal, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e.Signal, true
		}
	}
	return Signal{}, false
}

// Len returns the number of named signals in the set.
func (s *SignalSet) Len() int {
	return len(s.entries)
}

// Entries returns the named signals in insertion order.
func (s *SignalSet) Entries() []NamedSignal {
	return s.entries
}

// Counts tallies the set by direction.
func (s *SignalSet) Counts() (bullish, bearish, neutral int) {
	for _, e := range s.entries {
		switch e.Signal.Direction {
		case Bullish:
			bullish++
		case Bearish:
			bearish++
		default:
			neutral++
		}
	}
	return bullish, bearish, neutral
}

// Aggregate reduces a set of named signals into one overall verdict using a
// bullish-minus-bearish majority rule. A side wins only when it leads by
// more than margin; noisier categories pass a larger margin.
func Aggregate(signals *SignalSet, margin int) Signal {
	bullish, bearish, neutral := signals.Counts()
	total := signals.Len()

	switch {
	case bullish > bearish+margin:
		return Signal{Bullish, fmt.Sprintf("%d/%d signals bullish", bullish, total)}
	case bearish > bullish+margin:
		return Signal{Bearish, fmt.Sprintf("%d/%d signals bearish", bearish, total)}
	default:
		return Signal{Neutral, fmt.Sprintf("mixed: %dB/%dS/%dN", bullish, bearish, neutral)}
	}
}

// CategoryResult is the output of one analysis category: its display
// metrics, its named signals, and the aggregated overall verdict.
type CategoryResult struct {
	Metrics MetricSet
	Signals SignalSet
	Overall Signal
}
