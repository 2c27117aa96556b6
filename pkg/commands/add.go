package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	message := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Example: `
pace add read chapter 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task description")
			}
			message = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			s := add.Add{
				Message: message,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
