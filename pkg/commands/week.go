package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/runner/summary"
)

func addWeek(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week's study-hour average",
		Example: `
pace week
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := summary.Week{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
