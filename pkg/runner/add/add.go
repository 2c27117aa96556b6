// Package add provides the runner that records a new task.
package add

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/printers"
)

// Add appends a task and reprints the list.
type Add struct {
	Message string
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddTask(ctx, n.Message); err != nil {
		return err
	}

	all, err := n.Service.TaskList(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowIndex: true}
	pp.NewLine()
	pp.Title("Tasks")
	pp.Tasks(all...)
	return nil
}
