package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"tableflip.dev/tripbook/pkg/trip"
)

// DefaultPreferences is used when the caller supplies none.
const DefaultPreferences = "Local street food, historical temples, and night markets."

// suggestedActivity mirrors the response schema; the upstream service
// never supplies ids, so it has none.
type suggestedActivity struct {
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	CostTWD     float64 `json:"costTWD"`
	Notes       string  `json:"notes"`
}

type suggestedDayPlan struct {
	Date       string              `json:"date"`
	Activities []suggestedActivity `json:"activities"`
	DailyNote  string              `json:"dailyNote"`
}

// RequestDayPlan asks the model for a full day plan. It returns nil —
// absent, not an error — when no credential is configured, the call
// fails, or the reply cannot be parsed; failures are logged at this
// boundary and never propagated.
func (c *Client) RequestDayPlan(ctx context.Context, date, preferences string) *trip.DayPlan {
	if !c.Enabled() {
		fmt.Fprintf(os.Stderr, "suggest: %s is not set, skipping day plan\n", APIKeyEnv)
		return nil
	}
	if strings.TrimSpace(preferences) == "" {
		preferences = DefaultPreferences
	}

	prompt := fmt.Sprintf(`Create a detailed travel itinerary for one day in %s on %s.
User preferences: %s

Return a JSON object with a list of activities.
Each activity should have:
- time (HH:MM format)
- location (Name of place)
- description (Short description)
- type (one of: TRANSPORT, MEAL, SITE, OTHER)
- costTWD (estimated cost in New Taiwan Dollars as a number)
- notes (Clothing or practical advice)`,
		c.Destination, date, preferences)

	text, err := c.generate(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   dayPlanSchema(),
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "suggest: day plan for %s: %v\n", date, err)
		return nil
	}

	var got suggestedDayPlan
	if err := json.Unmarshal([]byte(text), &got); err != nil {
		fmt.Fprintf(os.Stderr, "suggest: day plan for %s: parse reply: %v\n", date, err)
		return nil
	}

	plan := trip.DayPlan{
		Date:       date,
		Activities: make([]trip.Activity, 0, len(got.Activities)),
		DailyNote:  got.DailyNote,
	}
	for _, a := range got.Activities {
		plan.Activities = append(plan.Activities, trip.Activity{
			ID:          trip.NewID(),
			Time:        a.Time,
			Location:    a.Location,
			Description: a.Description,
			Type:        trip.ParseType(a.Type),
			CostTWD:     a.CostTWD,
			Notes:       a.Notes,
		})
	}
	return &plan
}
