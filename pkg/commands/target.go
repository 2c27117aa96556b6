package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/runner/target"
)

func addTarget(topLevel *cobra.Command) {
	text := ""

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Set or show the daily target",
		Long: `Set or show the daily target. A target written at or after the
evening cutoff belongs to tomorrow.`,
		Example: `
pace target
pace target finish chapter 3
`,
		Args: func(_ *cobra.Command, args []string) error {
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := target.Target{
				Text:    text,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
