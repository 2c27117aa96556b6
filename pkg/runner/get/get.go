// Package get provides the runner that prints the day's overview.
package get

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/printers"
)

// Get prints the daily target, the task list, and, once monthly stats
// are active, the month's completion bar.
type Get struct {
	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.NewLine()

	text, err := n.Service.Target(ctx)
	if err != nil {
		return err
	}
	pp.Target(text)

	all, err := n.Service.TaskList(ctx)
	if err != nil {
		return err
	}
	pp.Title("Tasks")
	pp.Tasks(all...)

	if n.Service.MonthlyStatsActive() {
		stats, err := n.Service.Tasks.CompletionStats(ctx, dates.MonthKey(n.Service.Clock.Now()))
		if err != nil {
			return err
		}
		pp.CompletionBar(stats)

		if msg, fired, err := n.Service.CheckMotivation(ctx); err != nil {
			return err
		} else if fired {
			pp.Quote(msg)
		}
	}

	return nil
}
