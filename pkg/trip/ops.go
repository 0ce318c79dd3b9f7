package trip

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ActivityDraft carries user input for a new activity before defaults
// and coercion are applied. Cost is kept as a raw string so malformed
// input can fall back to zero instead of being rejected.
type ActivityDraft struct {
	Time        string
	Location    string
	Description string
	Type        ActivityType
	Cost        string
	Notes       string
}

// NewID returns a fresh unique activity or checklist item id.
func NewID() string {
	return uuid.NewString()
}

// AddActivity appends a new activity to the given date, assigning a
// fresh id and defaulting blank fields rather than rejecting them.
func AddActivity(doc Document, date string, draft ActivityDraft) Document {
	out := clone(doc)
	day := out.Day(date)

	a := Activity{
		ID:          NewID(),
		Time:        draft.Time,
		Location:    strings.TrimSpace(draft.Location),
		Description: strings.TrimSpace(draft.Description),
		Type:        draft.Type,
		CostTWD:     CoerceCost(draft.Cost),
		Notes:       strings.TrimSpace(draft.Notes),
	}
	if a.Time == "" {
		a.Time = "00:00"
	}
	if a.Location == "" {
		a.Location = "Untitled Activity"
	}
	if a.Type == "" {
		a.Type = TypeOther
	}

	day.Activities = append(day.Activities, a)
	out.Itinerary[date] = day
	return out
}

// DeleteActivity removes the activity with the matching id from the
// given date. Unknown ids and dates are no-ops.
func DeleteActivity(doc Document, date, id string) Document {
	out := clone(doc)
	day, ok := out.Itinerary[date]
	if !ok {
		return out
	}
	kept := make([]Activity, 0, len(day.Activities))
	for _, a := range day.Activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	day.Activities = kept
	out.Itinerary[date] = day
	return out
}

// SetDailyNote replaces the free-text note for a day.
func SetDailyNote(doc Document, date, note string) Document {
	out := clone(doc)
	day := out.Day(date)
	day.DailyNote = note
	out.Itinerary[date] = day
	return out
}

// SetDayPlan replaces the full plan for a date with the given one,
// keeping date and map key consistent.
func SetDayPlan(doc Document, date string, plan DayPlan) Document {
	out := clone(doc)
	plan.Date = date
	if plan.Activities == nil {
		plan.Activities = []Activity{}
	}
	out.Itinerary[date] = plan
	return out
}

// CoerceCost turns numeric-like input into a non-negative cost,
// defaulting to 0 for anything unparsable or negative.
func CoerceCost(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// DailyTotalCost sums the day's activity costs.
func DailyTotalCost(day DayPlan) float64 {
	total := 0.0
	for _, a := range day.Activities {
		total += a.CostTWD
	}
	return total
}

// CategoryTotals accumulates cost per activity type across the whole
// itinerary. Buckets with a zero total are omitted so callers only see
// non-empty categories.
func CategoryTotals(doc Document) map[ActivityType]float64 {
	totals := make(map[ActivityType]float64, 4)
	for _, day := range doc.Itinerary {
		for _, a := range day.Activities {
			totals[ParseType(string(a.Type))] += a.CostTWD
		}
	}
	for t, v := range totals {
		if v == 0 {
			delete(totals, t)
		}
	}
	return totals
}

// TotalCost sums every activity cost in the document.
func TotalCost(doc Document) float64 {
	total := 0.0
	for _, day := range doc.Itinerary {
		total += DailyTotalCost(day)
	}
	return total
}

// SortedActivities returns the day's activities ordered by time.
// Lexicographic comparison is correct because times are zero-padded
// 24-hour "HH:MM" strings. The ordering is derived, never persisted.
func SortedActivities(day DayPlan) []Activity {
	out := append([]Activity{}, day.Activities...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}
