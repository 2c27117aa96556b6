package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"tasks", "list"},
		Short:   "Show the daily target, task list, and completion",
		Example: `
pace get
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
