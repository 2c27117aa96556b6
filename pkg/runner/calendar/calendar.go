// Package calendar provides the runner for the month calendar view.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/printers"
)

// Calendar prints a month grid of completed tasks and study hours.
type Calendar struct {
	// On selects the month to render; nil means the current month.
	On      *time.Time
	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render calendar, no service")
	}

	month := n.Service.CalendarMonth(n.On)
	events, err := n.Service.CalendarEvents(ctx, month)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Calendar(month, events)
	return nil
}
