package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tripbook/pkg/suggest"
)

// PreferenceOptions captures the traveler preference text forwarded to
// the suggestion service.
type PreferenceOptions struct {
	Preferences string
}

// AddPreferenceArgs wires the --preferences flag on the provided command.
func AddPreferenceArgs(cmd *cobra.Command, o *PreferenceOptions) {
	cmd.Flags().StringVarP(&o.Preferences, "preferences", "p", suggest.DefaultPreferences,
		"Traveler preferences used to steer the suggested plan.")
}
