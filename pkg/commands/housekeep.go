package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/runner/housekeep"
)

func addHousekeep(topLevel *cobra.Command) {
	watch := false
	interval := 5 * time.Minute

	cmd := &cobra.Command{
		Use:   "housekeep",
		Short: "Run the day-boundary bookkeeping",
		Long: `Run the day-boundary bookkeeping: prune last month's motivation
flags and clear the task list once per day after noon. With --watch it
keeps polling and announces the midnight rollover.`,
		Example: `
pace housekeep
pace housekeep --watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := housekeep.Housekeep{
				Watch:    watch,
				Interval: interval,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep polling instead of running once.")
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Minute,
		"Polling interval used with --watch.")

	topLevel.AddCommand(cmd)
}
