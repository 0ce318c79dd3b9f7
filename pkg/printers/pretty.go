// Package printers renders trip data for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tripbook/pkg/trip"
)

// ExchangeRateTWDToMYR converts New Taiwan Dollars to Malaysian
// Ringgit for the secondary cost display.
const ExchangeRateTWDToMYR = 0.146

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// DayHeader prints the heading for one itinerary day.
func (pp *PrettyPrint) DayHeader(date string, index int, day trip.DayPlan) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Printf("Day %d — %s", index, date)
	_, _ = c.Printf("  %d activities, %s", len(day.Activities), FormatTWD(trip.DailyTotalCost(day)))
	fmt.Println("")
}

// Timeline prints a day's activities in display order.
func (pp *PrettyPrint) Timeline(day trip.DayPlan) {
	activities := trip.SortedActivities(day)
	if len(activities) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" a blank canvas for your day\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	n := color.New(color.Faint)

	for _, a := range activities {
		if pp.ShowID {
			_, _ = y.Print(a.ID)
			_, _ = y.Print("  ")
		}
		_, _ = t.Printf("%s  %s %s", a.Time, typeColor(a.Type).Sprint(typeGlyph(a.Type)), a.Location)
		_, _ = n.Printf("  %s", FormatTWD(a.CostTWD))
		fmt.Println("")
		if a.Description != "" {
			_, _ = n.Printf("       %s\n", a.Description)
		}
		if a.Notes != "" {
			_, _ = n.Printf("       %s\n", a.Notes)
		}
	}
	_, _ = t.Println("")
}

// Note prints a day's free-text note, if any.
func (pp *PrettyPrint) Note(day trip.DayPlan) {
	if day.DailyNote == "" {
		return
	}
	f := color.New(color.Italic)
	_, _ = f.Printf("note: %s\n\n", day.DailyNote)
}

// Checklist prints a shortlist or packing list.
func (pp *PrettyPrint) Checklist(items []trip.ChecklistItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, item := range items {
		if pp.ShowID {
			_, _ = y.Print(item.ID)
			_, _ = y.Print("  ")
		}
		switch {
		case item.Checked:
			_, _ = t.Print("✘ ")
			_, _ = d.Println(item.Text)
		default:
			_, _ = t.Printf("● %s\n", item.Text)
		}
	}
	_, _ = t.Println("")
}

// FormatTWD renders a cost in TWD with the MYR equivalent.
func FormatTWD(twd float64) string {
	return fmt.Sprintf("NT$%.0f (RM%.0f)", twd, twd*ExchangeRateTWDToMYR)
}

func typeGlyph(t trip.ActivityType) string {
	switch t {
	case trip.TypeTransport:
		return "›"
	case trip.TypeMeal:
		return "◦"
	case trip.TypeSite:
		return "○"
	default:
		return "⁃"
	}
}

func typeColor(t trip.ActivityType) *color.Color {
	switch t {
	case trip.TypeTransport:
		return color.New(color.FgYellow)
	case trip.TypeMeal:
		return color.New(color.FgGreen)
	case trip.TypeSite:
		return color.New(color.FgHiGreen)
	default:
		return color.New(color.FgWhite)
	}
}
