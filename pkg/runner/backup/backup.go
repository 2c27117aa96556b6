// Package backup provides the export and import runners.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/pace/pkg/app"
)

// Export writes both ledgers to a JSON backup file.
type Export struct {
	File    string
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	data, err := n.Service.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(n.File, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", n.File, err)
	}
	fmt.Printf("exported to %s\n", n.File)
	return nil
}

// Import replaces ledger state from a JSON backup file.
type Import struct {
	File    string
	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.File, err)
	}
	if err := n.Service.Import(ctx, data); err != nil {
		return err
	}
	fmt.Printf("imported %s\n", n.File)
	return nil
}
