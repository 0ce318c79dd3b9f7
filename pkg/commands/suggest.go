package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	runnersuggest "tableflip.dev/tripbook/pkg/runner/suggest"
	"tableflip.dev/tripbook/pkg/suggest"
)

func addSuggest(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	po := &options.PreferenceOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the AI assistant to plan a day",
		Long: `Request a suggested day plan from the Gemini API and merge it into the
itinerary. Requires GEMINI_API_KEY. Without a key, or when the service
declines, the day is left unchanged.`,
		Example: `
tripbook suggest
tripbook suggest --date 2025-12-18 --preferences "slow mornings, lots of coffee"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadService()
			if err != nil {
				return err
			}
			date, _, err := do.Resolve(cfg)
			if err != nil {
				return err
			}
			r := runnersuggest.Suggest{
				Date:        date,
				Preferences: po.Preferences,
				ShowID:      io.ShowID,
				Config:      cfg,
				Client:      suggest.New(cfg.Destination),
				Service:     s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddPreferenceArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
