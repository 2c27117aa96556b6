package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/commands/options"
	"tableflip.dev/pace/pkg/runner/backup"
)

const defaultBackupFile = "pace-backup.json"

func addExport(topLevel *cobra.Command) {
	fo := &options.FileOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks and study hours to a JSON backup",
		Example: `
pace export
pace export -f my-backup.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := backup.Export{
				File:    fo.File,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFileArg(cmd, fo, defaultBackupFile)
	topLevel.AddCommand(cmd)
}
