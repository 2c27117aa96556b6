// Package reset provides the runner that clears all tracked data.
package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/pace/pkg/app"
)

// Reset wipes the entire store. Confirm must be set; the command layer
// wires it to an explicit --yes flag.
type Reset struct {
	Confirm bool
	Service *app.Service
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reset, no service")
	}
	if !n.Confirm {
		return errors.New("refusing to clear all data without --yes")
	}
	if err := n.Service.ResetAll(ctx); err != nil {
		return err
	}
	fmt.Println("all data cleared")
	return nil
}
