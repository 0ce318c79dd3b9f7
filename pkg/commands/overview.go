package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/overview"
)

func addOverview(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	watch := false

	cmd := &cobra.Command{
		Use:     "overview",
		Aliases: []string{"status"},
		Short:   "Show the trip dashboard",
		Example: `
tripbook overview
tripbook overview --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadService()
			if err != nil {
				return err
			}
			o := overview.Overview{
				Watch:   watch,
				ShowID:  io.ShowID,
				Config:  cfg,
				Service: s,
			}
			err = o.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and reprint when the stored trip changes.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
