// Package housekeep provides the runner that keeps the day-boundary
// bookkeeping current, either once or as a polling loop.
package housekeep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/pace/pkg/app"
	"tableflip.dev/pace/pkg/housekeeping"
)

// Housekeep prunes stale monthly flags and runs the noon reset. With
// Watch set it keeps polling on Interval until interrupted.
type Housekeep struct {
	Watch    bool
	Interval time.Duration
	Service  *app.Service
}

func (n *Housekeep) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not housekeep, no service")
	}

	k := &housekeeping.Keeper{
		Tasks: n.Service.Tasks,
		Flags: n.Service.Flags,
		Clock: n.Service.Clock,
	}

	if n.Watch {
		return k.Run(ctx, n.Interval, func() {
			fmt.Println("midnight rollover")
		})
	}

	if err := k.PruneMotivated(ctx); err != nil {
		return err
	}
	cleared, err := k.NoonReset(ctx)
	if err != nil {
		return err
	}
	if cleared {
		fmt.Println("tasks cleared for the day")
	}
	return nil
}
