package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Set the note for a day",
		Example: `
tripbook note remember to book the observatory tickets
tripbook note --date 2025-12-24 christmas eve at the night market
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note")
			}
			text = strings.Join(args, " ")
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
			n := note.Note{
				Date:    date,
				Text:    text,
				DayIdx:  idx,
				Service: s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
