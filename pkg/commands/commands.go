package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripbook/pkg/app"
	"tableflip.dev/tripbook/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tripbook",
		Short: base.Wrap80("Trip planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addOverview(topLevel)
	addDay(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addNote(topLevel)
	addSuggest(topLevel)
	addWeather(topLevel)
	addMap(topLevel)
	addChecklist(topLevel, "shortlist", app.Shortlist)
	addChecklist(topLevel, "packing", app.Packing)
	addUI(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

// loadService wires the config, store, and app service used by most
// commands.
func loadService() (*store.Config, *app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.New(p), nil
}
