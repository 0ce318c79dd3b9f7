package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tripbook/pkg/runner/info"
	"tableflip.dev/tripbook/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show config and credential status",
		Example: `
tripbook info
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			i := info.Info{Config: cfg}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
