package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/config"
	"tableflip.dev/pace/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pace",
		Short: base.Wrap80("Study-progress tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addComplete(topLevel)
	addGet(topLevel)
	addHours(topLevel)
	addTarget(topLevel)
	addWeek(topLevel)
	addMonth(topLevel)
	addCalendar(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addReset(topLevel)
	addHousekeep(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func newService() (*app.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	st, err := store.Load(cfg.Path)
	if err != nil {
		return nil, err
	}
	return app.New(st, clock.System(), cfg), nil
}
