package marketdata

import (
	"sort"
	"testing"
)

func TestPeriodDays(t *testing.T) {
	cases := map[string]int{
		"1mo": 31,
		"3mo": 92,
		"6mo": 183,
		"1y":  365,
		"2y":  730,
		"5y":  1826,
	}
	for period, want := range cases {
		got, err := PeriodDays(period)
		if err != nil {
			t.Fatalf("PeriodDays(%s): %v", period, err)
		}
		if got != want {
			t.Fatalf("PeriodDays(%s): expected %d, got %d", period, want, got)
		}
	}
}

func TestPeriodDaysUnknown(t *testing.T) {
	if _, err := PeriodDays("7w"); err == nil {
		t.Fatalf("expected error for unknown period")
	}
}

func TestPeriodsSortedByLength(t *testing.T) {
	periods := Periods()
	if len(periods) != 6 {
		t.Fatalf("expected 6 periods, got %d", len(periods))
	}
	days := make([]int, len(periods))
	for i, p := range periods {
		days[i], _ = PeriodDays(p)
	}
	if !sort.IntsAreSorted(days) {
		t.Fatalf("periods not sorted by window length: %v", periods)
	}
}
