package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/runner/maplink"
	"tableflip.dev/tripbook/pkg/store"
)

func addMap(topLevel *cobra.Command) {
	location := ""

	cmd := &cobra.Command{
		Use:   "map [location]",
		Short: "Print a map link for a location",
		Example: `
tripbook map
tripbook map Chiang Kai-shek Memorial Hall
`,
		Args: func(cmd *cobra.Command, args []string) error {
			location = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			m := maplink.MapLink{
				Location:    location,
				Destination: cfg.Destination,
			}
			err = m.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
