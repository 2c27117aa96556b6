package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/backup"
)

func addImport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import tasks and study hours from a JSON backup",
		Example: `
pace import -f my-backup.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if fo.File == "" {
				return errors.New("requires a backup file")
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := backup.Import{
				File:    fo.File,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFileArg(cmd, fo, "")
	topLevel.AddCommand(cmd)
}
