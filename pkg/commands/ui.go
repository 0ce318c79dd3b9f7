package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tripbook/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based itinerary browser",
		Example: `
tripbook ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, err := loadService()
			if err != nil {
				return err
			}
			i := ui.UI{Config: cfg, Service: s}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
