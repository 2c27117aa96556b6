// Package hours provides the runner that records study hours.
package hours

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/printers"
)

// Hours saves a day's study hours and reprints the averages.
type Hours struct {
	Value float64
	// On overrides the recorded day; nil means today.
	On      *time.Time
	Service *app.Service
}

func (n *Hours) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not record hours, no service")
	}

	day := n.Service.Clock.Now()
	if n.On != nil {
		day = *n.On
	}
	if err := n.Service.RecordHours(ctx, day, n.Value); err != nil {
		return err
	}

	weekly, err := n.Service.WeeklyAverage(ctx)
	if err != nil {
		return err
	}
	monthly, active, err := n.Service.MonthlyAverage(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(dates.DayKey(day))
	pp.Averages(weekly, monthly, active)
	return nil
}
