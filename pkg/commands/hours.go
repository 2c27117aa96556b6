package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/hours"
)

func addHours(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	value := 0.0

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Record hours studied for a day",
		Example: `
pace hours 2.5
pace hours 4 --on="2025-08-03"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an hours value")
			}
			var err error
			value, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New("hours must be a number")
			}

			return nil
		},
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
			s := hours.Hours{
				Value:   value,
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
