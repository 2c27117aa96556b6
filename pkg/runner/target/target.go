// Package target provides the runner for the daily target.
package target

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/printers"
)

// Target saves the effective day's target when Text is set, and prints
// the current one otherwise.
type Target struct {
	Text    string
	Service *app.Service
}

func (n *Target) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set target, no service")
	}

	if n.Text != "" {
		if err := n.Service.SaveTarget(ctx, n.Text); err != nil {
			return err
		}
	}

	text, err := n.Service.Target(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if text == "" {
		pp.Target("(none set)")
		return nil
	}
	pp.Target(text)
	return nil
}
