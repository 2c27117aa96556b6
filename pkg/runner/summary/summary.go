// Package summary provides the runners for the weekly and monthly
// statistics views.
package summary

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/printers"
)

// Month prints a month's completion rate and average study hours.
type Month struct {
	// Key is the YYYY-MM month to summarize; empty means the current
	// month.
	Key     string
	Service *app.Service
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no service")
	}

	key := n.Key
	if key == "" {
		key = dates.MonthKey(n.Service.Clock.Now())
	}

	sum, err := n.Service.MonthlySummary(ctx, key)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(sum)
	return nil
}

// Week prints the current week's average.
type Week struct {
	Service *app.Service
}

func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no service")
	}

	weekly, err := n.Service.WeeklyAverage(ctx)
	if err != nil {
		return err
	}
	monthly, active, err := n.Service.MonthlyAverage(ctx)
	if err != nil {
		return err
	}

	week := dates.WeekWindow(n.Service.Clock.Now())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Week of " + dates.DayKey(week[0]))
	pp.Averages(weekly, monthly, active)
	return nil
}
