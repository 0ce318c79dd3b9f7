// Package timeutil provides calendar helpers for the trip date range.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutISO is the canonical day format used for itinerary keys.
	LayoutISO = "2006-01-02"
	// LayoutUS is the long display format for day headings.
	LayoutUS = "January 2, 2006"
)

// ParseDay parses an ISO "YYYY-MM-DD" day string.
func ParseDay(v string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse day %q: %w", v, err)
	}
	return t, nil
}

// FormatDay renders a time as an ISO day string.
func FormatDay(t time.Time) string {
	return t.Format(LayoutISO)
}

// DatesInRange returns every ISO day in [start, end] inclusive. An end
// before start yields just the start day.
func DatesInRange(start, end time.Time) []string {
	dates := []string{FormatDay(start)}
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDay(d))
	}
	return dates
}

// DayIndex returns the 1-based whole-day offset of date from start.
// It is display-only and never persisted.
func DayIndex(start, date time.Time) int {
	return int(date.Sub(start).Hours()/24) + 1
}

// Phase describes where today falls relative to the trip range.
type Phase int

const (
	// PhaseUpcoming means the trip has not started yet.
	PhaseUpcoming Phase = iota
	// PhaseOngoing means today is inside the trip range.
	PhaseOngoing
	// PhaseFinished means the trip is over.
	PhaseFinished
)

// Countdown reports the trip phase for now, plus the number of days
// until the start when the trip is upcoming.
func Countdown(now, start, end time.Time) (Phase, int) {
	today, _ := ParseDay(FormatDay(now))
	switch {
	case today.Before(start):
		return PhaseUpcoming, DayIndex(today, start) - 1
	case today.After(end):
		return PhaseFinished, 0
	default:
		return PhaseOngoing, 0
	}
}
