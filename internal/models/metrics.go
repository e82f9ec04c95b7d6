package models

import (
	"fmt"
	"math"
	"strconv"
)

// MetricKind tags the representation of a metric value.
type MetricKind int

const (
	KindNumber MetricKind = iota
	KindPercent
	KindText
	KindUnavailable
)

// MetricValue is a tagged value carried in a MetricSet: a number rendered
// with fixed precision, a percentage, free text, or the "N/A" sentinel for
// data the provider did not have. Consumers switch on Kind instead of
// type-asserting an untyped value.
type MetricValue struct {
	Kind   MetricKind
	Num    float64
	Text   string
	Digits int
}

// Number builds a numeric value rendered with two decimals.
func Number(v float64) MetricValue {
	return NumberN(v, 2)
}

// NumberN builds a numeric value rendered with the given decimals.
func NumberN(v float64, digits int) MetricValue {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable()
	}
	return MetricValue{Kind: KindNumber, Num: v, Digits: digits}
}

// Percent builds a percentage value; v is the percent figure itself
// (3.5 renders as "3.50%").
func Percent(v float64) MetricValue {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unavailable()
	}
	return MetricValue{Kind: KindPercent, Num: v, Digits: 2}
}

// Text builds a free-form text value.
func Text(s string) MetricValue {
	return MetricValue{Kind: KindText, Text: s}
}

// Unavailable builds the "N/A" sentinel.
func Unavailable() MetricValue {
	return MetricValue{Kind: KindUnavailable}
}

func (v MetricValue) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', v.Digits, 64)
	case KindPercent:
		return fmt.Sprintf("%.*f%%", v.Digits, v.Num)
	case KindText:
		return v.Text
	default:
		return "N/A"
	}
}

// Metric pairs a metric name with its value.
type Metric struct {
	Name  string
	Value MetricValue
}

// MetricSet is an insertion-ordered mapping from metric name to value.
// Order is preserved for display only and carries no semantic weight.
type MetricSet struct {
	entries []Metric
}

// Put stores a value under the given name, replacing an existing entry
// without changing its position.
func (m *MetricSet) Put(name string, v MetricValue) {
	for i := range m.entries {
		if m.entries[i].Name == name {
			m.entries[i].Value = v
			return
		}
	}
	m.entries = append(m.entries, Metric{Name: name, Value: v})
}

// Get looks up a value by name.
func (m *MetricSet) Get(name string) (MetricValue, bool) {
	for _, e := range m.entries {
		if e.Name == name {
			return e.Value, true
		}
	}
	return MetricValue{}, false
}

// Len returns the number of metrics in the set.
func (m *MetricSet) Len() int {
	return len(m.entries)
}

// Entries returns the metrics in insertion order.
func (m *MetricSet) Entries() []Metric {
	return m.entries
}
