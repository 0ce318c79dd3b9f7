package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	runnerweather "tableflip.dev/tripbook/pkg/runner/weather"
	"tableflip.dev/tripbook/pkg/store"
	"tableflip.dev/tripbook/pkg/suggest"
)

func addWeather(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Show the destination weather outlook",
		Long: `Fetch a three day forecast and packing advice for the destination.
Without GEMINI_API_KEY an offline placeholder is shown instead.`,
		Example: `
tripbook weather
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			w := runnerweather.Weather{
				Config: cfg,
				Client: suggest.New(cfg.Destination),
			}
			err = w.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
