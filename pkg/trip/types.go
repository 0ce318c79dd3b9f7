// Package trip defines the trip document aggregate and the pure
// operations that transform it.
package trip

import (
	"sort"
	"strings"
)

// ActivityType buckets an activity for budget reporting.
type ActivityType string

const (
	// TypeTransport covers trains, buses, taxis and other transit.
	TypeTransport ActivityType = "TRANSPORT"
	// TypeMeal covers restaurants, street food and snacks.
	TypeMeal ActivityType = "MEAL"
	// TypeSite covers sights, museums, temples and attractions.
	TypeSite ActivityType = "SITE"
	// TypeOther is everything else, and the bucket legacy or unknown
	// types fold into.
	TypeOther ActivityType = "OTHER"
)

// AllTypes returns the supported activity types in display order.
func AllTypes() []ActivityType {
	return []ActivityType{TypeTransport, TypeMeal, TypeSite, TypeOther}
}

// ParseType normalises a raw string into a known ActivityType. Unknown
// or legacy values fold into TypeOther rather than erroring, matching
// the availability-over-strictness posture of the rest of the model.
func ParseType(raw string) ActivityType {
	switch ActivityType(strings.ToUpper(strings.TrimSpace(raw))) {
	case TypeTransport:
		return TypeTransport
	case TypeMeal:
		return TypeMeal
	case TypeSite:
		return TypeSite
	default:
		return TypeOther
	}
}

// Activity is one scheduled item in a day.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"` // zero-padded "HH:MM"
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Type        ActivityType `json:"type"`
	CostTWD     float64      `json:"costTWD"`
	Notes       string       `json:"notes,omitempty"`
}

// DayPlan holds one calendar day's activities and note. The activities
// slice is not kept ordered; display order is derived with
// SortedActivities.
type DayPlan struct {
	Date       string     `json:"date"` // ISO "YYYY-MM-DD", equals its map key
	Activities []Activity `json:"activities"`
	DailyNote  string     `json:"dailyNote,omitempty"`
}

// ChecklistItem is a togglable text entry, shared by the shortlist and
// the packing list.
type ChecklistItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Document is the root persisted aggregate: the full itinerary keyed by
// ISO date plus the two checklists. All operations on it are
// copy-on-write; a Document value is never mutated in place.
type Document struct {
	Itinerary   map[string]DayPlan `json:"itinerary"`
	Shortlist   []ChecklistItem    `json:"shortlist"`
	PackingList []ChecklistItem    `json:"packingList"`
}

// NewDocument synthesizes a fresh document with one empty DayPlan per
// date. Dates are taken as given; range synthesis lives in timeutil.
func NewDocument(dates []string) Document {
	itinerary := make(map[string]DayPlan, len(dates))
	for _, d := range dates {
		itinerary[d] = DayPlan{Date: d, Activities: []Activity{}}
	}
	return Document{
		Itinerary:   itinerary,
		Shortlist:   []ChecklistItem{},
		PackingList: []ChecklistItem{},
	}
}

// Normalize backfills fields that documents written by older schema
// versions may lack. It returns a copy; the input is untouched.
func Normalize(doc Document) Document {
	out := clone(doc)
	if out.Itinerary == nil {
		out.Itinerary = map[string]DayPlan{}
	}
	if out.Shortlist == nil {
		out.Shortlist = []ChecklistItem{}
	}
	if out.PackingList == nil {
		out.PackingList = []ChecklistItem{}
	}
	for date, day := range out.Itinerary {
		if day.Date == "" {
			day.Date = date
		}
		if day.Activities == nil {
			day.Activities = []Activity{}
		}
		for i := range day.Activities {
			day.Activities[i].Type = ParseType(string(day.Activities[i].Type))
		}
		out.Itinerary[date] = day
	}
	return out
}

// Dates returns the itinerary's dates in ascending order.
func (d Document) Dates() []string {
	dates := make([]string, 0, len(d.Itinerary))
	for date := range d.Itinerary {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Day returns the plan for a date, synthesizing an empty one when the
// date is not present. The document is not modified.
func (d Document) Day(date string) DayPlan {
	if day, ok := d.Itinerary[date]; ok {
		return day
	}
	return DayPlan{Date: date, Activities: []Activity{}}
}

func clone(doc Document) Document {
	out := Document{
		Itinerary:   make(map[string]DayPlan, len(doc.Itinerary)),
		Shortlist:   append([]ChecklistItem{}, doc.Shortlist...),
		PackingList: append([]ChecklistItem{}, doc.PackingList...),
	}
	for date, day := range doc.Itinerary {
		day.Activities = append([]Activity{}, day.Activities...)
		out.Itinerary[date] = day
	}
	return out
}
