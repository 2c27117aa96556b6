// Package complete provides the runner logic for marking tasks done.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/printers"
)

// Complete marks the task with the printed number as done.
type Complete struct {
	// Number is the 1-based position shown by `pace get`.
	Number  int
	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.NewLine()

	_, quote, err := n.Service.CompleteTask(ctx, n.Number-1)
	if err != nil {
		return err
	}
	pp.Quote(quote)

	if msg, fired, err := n.Service.CheckMotivation(ctx); err != nil {
		return err
	} else if fired {
		pp.Quote(msg)
	}

	all, err := n.Service.TaskList(ctx)
	if err != nil {
		return err
	}
	pp.Title("Tasks")
	pp.Tasks(all...)
	return nil
}
