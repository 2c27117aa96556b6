package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/summary"
)

func addMonth(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "month",
		Aliases: []string{"summary"},
		Short:   "Show a month's completion rate and study-hour average",
		Example: `
pace month
pace month --month="2025-07"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			key, err := mo.GetMonth()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := summary.Month{
				Key:     key,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArg(cmd, mo)
	topLevel.AddCommand(cmd)
}
