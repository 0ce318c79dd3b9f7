package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	id := ""

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm"},
		Short:   "Remove an activity from a day by id",
		Example: `
tripbook remove 1b4e28ba --date 2025-12-16
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an activity id")
			}
			id = args[0]
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
			r := remove.Remove{
				Date:    date,
				ID:      id,
				DayIdx:  idx,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
