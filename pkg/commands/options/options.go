// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/pace/pkg/dates"
)

// OnOptions selects an explicit date for commands that default to
// today.
type OnOptions struct {
	OnString string
}

func AddOnArg(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2025-08-05".`)
}

func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := dates.ParseDay(o.OnString)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MonthOptions selects an explicit month for commands that default to
// the current one.
type MonthOptions struct {
	MonthString string
}

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month="2025-08".`)
}

func (o *MonthOptions) GetMonth() (string, error) {
	if o.MonthString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(dates.LayoutMonth, o.MonthString, time.Local)
	if err != nil {
		return "", err
	}
	return dates.MonthKey(t), nil
}

// FileOptions selects the backup file path.
type FileOptions struct {
	File string
}

func AddFileArg(cmd *cobra.Command, o *FileOptions, def string) {
	cmd.Flags().StringVarP(&o.File, "file", "f", def,
		"Specify the backup file.")
}

// ConfirmOptions guards destructive commands.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVar(&o.Yes, "yes", false,
		"Confirm the destructive operation.")
}
