package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/commands/options"
	"tableflip.dev/tripbook/pkg/runner/list"
)

// addChecklist registers a checklist command plus its add, toggle, and
// remove subcommands. It is used for both the shortlist and the packing
// list.
func addChecklist(topLevel *cobra.Command, name string, which app.List) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   name,
		Short: "Show and edit the " + name + " list",
		Example: `
tripbook ` + name + `
tripbook ` + name + ` add travel adapter
tripbook ` + name + ` toggle travel
tripbook ` + name + ` remove travel
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecklist(which, list.OpShow, "", io.ShowID)
		},
	}
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	cmd.AddCommand(checklistOp(which, "add", "Add an item to the "+name+" list", list.OpAdd, io))
	cmd.AddCommand(checklistOp(which, "toggle", "Toggle an item on the "+name+" list", list.OpToggle, io))
	cmd.AddCommand(checklistOp(which, "remove", "Remove an item from the "+name+" list", list.OpRemove, io))

	topLevel.AddCommand(cmd)
}

func checklistOp(which app.List, use, short string, op list.Op, io *options.IDOptions) *cobra.Command {
	arg := ""
	cmd := &cobra.Command{
		Use:   use + " [item]",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an item")
			}
			arg = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecklist(which, op, arg, io.ShowID)
		},
	}
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	return cmd
}

func runChecklist(which app.List, op list.Op, arg string, showID bool) error {
	_, s, err := loadService()
	if err != nil {
		return err
	}
	l := list.List{
		Which:   which,
		Op:      op,
		Arg:     arg,
		ShowID:  showID,
		Service: s,
	}
	err = l.Do(context.Background())
	return output.HandleError(err)
}
