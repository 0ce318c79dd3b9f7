package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "day [date]",
		Aliases: []string{"days"},
		Short:   "Show the timeline for one day",
		Example: `
tripbook day
tripbook day 2025-12-16
tripbook day --all
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many dates set, confused")
			}
			if len(args) == 1 {
				do.Date = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadService()
			if err != nil {
				return err
			}
			d := day.Day{
				All:     do.All,
				ShowID:  io.ShowID,
				Config:  cfg,
				Service: s,
			}
			if !do.All {
				date, _, err := do.Resolve(cfg)
				if err != nil {
					return err
				}
				d.Date = date
			}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddAllDaysArg(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
