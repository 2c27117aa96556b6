package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	number := 0

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "completed"},
		Short:   "Complete a task",
		Example: `
pace done 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task number")
			}
			cmd.SilenceUsage = true
			var err error
			number, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.New("task number must be an integer")
			}

			return nil
		},

		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := complete.Complete{
				Number:  number,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
