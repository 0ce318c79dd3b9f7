// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/timeutil"
)

// DayOptions captures the day selection flags shared by commands that
// operate on a single itinerary day.
type DayOptions struct {
	Date string
	All  bool
}

// AddDateArgs wires the --date flag on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify the itinerary day, example: --date="2025-12-16". Defaults to today when today is part of the trip, otherwise the first day.`)
}

// AddAllDaysArg registers the flag that selects every itinerary day.
func AddAllDaysArg(cmd *cobra.Command, o *DayOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show all itinerary days.")
}

// Resolve turns the option into a concrete ISO date plus its 1-based
// day index. An empty date falls back to today when today falls inside
// the trip range, otherwise to the first day.
func (o *DayOptions) Resolve(cfg *store.Config) (string, int, error) {
	if o.Date == "" {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if !today.Before(cfg.Start) && !today.After(cfg.End) {
			return timeutil.FormatDay(today), timeutil.DayIndex(cfg.Start, today), nil
		}
		return timeutil.FormatDay(cfg.Start), 1, nil
	}
	t, err := timeutil.ParseDay(o.Date)
	if err != nil {
		return "", 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", o.Date)
	}
	return timeutil.FormatDay(t), timeutil.DayIndex(cfg.Start, t), nil
}
