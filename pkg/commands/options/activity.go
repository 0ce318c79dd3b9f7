package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tripbook/pkg/trip"
)

// ActivityOptions captures the flags describing a new activity.
type ActivityOptions struct {
	Time        string
	Description string
	Type        string
	Cost        string
	Notes       string
}

// AddActivityArgs wires activity detail flags on the provided command.
func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		`Start time in 24h HH:MM, example: --time="09:30".`)
	cmd.Flags().StringVar(&o.Description, "desc", "",
		"Short description of the activity.")
	cmd.Flags().StringVar(&o.Type, "type", "",
		"Activity type. One of "+strings.ToLower(strings.Join(typeNames(), ", "))+".")
	cmd.Flags().StringVar(&o.Cost, "cost", "",
		"Estimated cost in TWD.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Free-form notes.")
}

// Draft builds an activity draft from the flags plus the location text.
func (o *ActivityOptions) Draft(location string) trip.ActivityDraft {
	return trip.ActivityDraft{
		Time:        o.Time,
		Location:    location,
		Description: o.Description,
		Type:        trip.ParseType(o.Type),
		Cost:        o.Cost,
		Notes:       o.Notes,
	}
}

func typeNames() []string {
	names := make([]string, 0, len(trip.AllTypes()))
	for _, t := range trip.AllTypes() {
		names = append(names, string(t))
	}
	return names
}
