package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	do := &options.DayOptions{}
	io := &options.IDOptions{}
	location := ""

	cmd := &cobra.Command{
		Use:   "add [location]",
		Short: "Add an activity to a day",
		Example: `
tripbook add "Taipei 101 Observatory" --time 09:00 --type SITE --cost 600
tripbook add "Din Tai Fung" --date 2025-12-16 --time 12:30 --type MEAL
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a location")
			}
			location = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadService()
			if err != nil {
				return err
			}
			date, idx, err := do.Resolve(cfg)
			if err != nil {
				return err
			}
			a := add.Add{
				Date:    date,
				Draft:   ao.Draft(location),
				DayIdx:  idx,
				ShowID:  io.ShowID,
				Service: s,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddActivityArgs(cmd, ao)
	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
