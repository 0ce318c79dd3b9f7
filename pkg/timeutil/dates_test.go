package timeutil

import (
	"testing"
	"time"
)

func day(v string) time.Time {
	t, err := time.Parse(LayoutISO, v)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDatesInRangeInclusive(t *testing.T) {
	dates := DatesInRange(day("2025-12-15"), day("2025-12-17"))
	want := []string{"2025-12-15", "2025-12-16", "2025-12-17"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("expected %s at %d, got %s", want[i], i, dates[i])
		}
	}
}

func TestDatesInRangeEndBeforeStart(t *testing.T) {
	dates := DatesInRange(day("2025-12-15"), day("2025-12-01"))
	if len(dates) != 1 || dates[0] != "2025-12-15" {
		t.Fatalf("expected just the start day, got %v", dates)
	}
}

func TestDayIndex(t *testing.T) {
	start := day("2025-12-15")
	if got := DayIndex(start, start); got != 1 {
		t.Fatalf("expected first day index 1, got %d", got)
	}
	if got := DayIndex(start, day("2025-12-20")); got != 6 {
		t.Fatalf("expected index 6, got %d", got)
	}
}

func TestCountdown(t *testing.T) {
	start := day("2025-12-15")
	end := day("2026-01-05")

	phase, days := Countdown(day("2025-12-10"), start, end)
	if phase != PhaseUpcoming || days != 5 {
		t.Fatalf("expected 5 days until start, got phase %v days %d", phase, days)
	}

	phase, _ = Countdown(day("2025-12-25"), start, end)
	if phase != PhaseOngoing {
		t.Fatalf("expected ongoing, got %v", phase)
	}

	phase, _ = Countdown(day("2026-02-01"), start, end)
	if phase != PhaseFinished {
		t.Fatalf("expected finished, got %v", phase)
	}
}
