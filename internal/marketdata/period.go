package marketdata

import (
	"fmt"
	"sort"
)

// periodDays maps user-facing history periods to trailing-day windows.
var periodDays = map[string]int{
	"1mo": 31,
	"3mo": 92,
	"6mo": 183,
	"1y":  365,
	"2y":  730,
	"5y":  1826,
}

// PeriodDays converts a period string like "1y" to a day window.
func PeriodDays(period string) (int, error) {
	days, ok := periodDays[period]
	if !ok {
		return 0, fmt.Errorf("unknown period %q (supported: %v)", period, Periods())
	}
	return days, nil
}

// Periods returns the supported period strings, sorted by window length.
func Periods() []string {
	out := make([]string, 0, len(periodDays))
	for p := range periodDays {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return periodDays[out[i]] < periodDays[out[j]] })
	return out
}
