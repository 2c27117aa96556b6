package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month calendar of completions and hours",
		Example: `
pace calendar
pace calendar --on="2025-07-01"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := calendar.Calendar{
				On:      on,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
