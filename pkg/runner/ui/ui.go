// Package ui provides the runner that launches the dashboard.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/tui"
)

// UI runs the interactive terminal dashboard.
type UI struct {
	Service *app.Service
}

func (n *UI) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not run ui, no service")
	}
	return tui.Run(n.Service)
}
