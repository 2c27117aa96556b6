// Package housekeeping runs the day-boundary actions: the noon task
// reset, the monthly flag prune, and the midnight rollover timer. The
// decision of what is due is a pure function over the clock and the
// recorded flag state, so it can be tested without real time passing.
package housekeeping

import (
	"context"
	"time"

	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/flags"
	"tableflip.dev/pace/pkg/task"
)

const noonHour = 12

// Action is a due housekeeping step.
type Action int

const (
	// NoonReset clears the task list once per day after 12:00.
	NoonReset Action = iota
	// MonthlyPrune removes stale motivated-* flags.
	MonthlyPrune
	// MidnightRollover reinitializes the presentation layer at the next
	// midnight. The effect is the caller's; only the timing lives here.
	MidnightRollover
)

// State is what the scheduler last observed about the persisted guards.
type State struct {
	// TasksClearedToday is whether today's tasksCleared flag is set.
	TasksClearedToday bool
	// PrunedMonth is the YYYY-MM the motivated flags were last pruned
	// for, or "" when the process just started.
	PrunedMonth string
}

// Due returns the actions a poll at now should take, given the last
// observed state. It never reports NoonReset twice for one day because
// the flag is the sole guard.
func Due(now time.Time, s State) []Action {
	var due []Action
	if now.Local().Hour() >= noonHour && !s.TasksClearedToday {
		due = append(due, NoonReset)
	}
	if s.PrunedMonth != dates.MonthKey(now) {
		due = append(due, MonthlyPrune)
	}
	return due
}

// Keeper executes the due actions against the ledgers.
type Keeper struct {
	Tasks *task.Ledger
	Flags *flags.Registry
	Clock clock.Clock
}

// NoonReset clears the task ledger once per calendar day, at or after
// noon. The per-day tasksCleared flag is the sole guard, so invoking
// this on a polling interval cannot double-clear. Returns whether the
// ledger was cleared by this call.
func (k *Keeper) NoonReset(ctx context.Context) (bool, error) {
	now := k.Clock.Now()
	if now.Local().Hour() < noonHour {
		return false, nil
	}
	flag := flags.TasksCleared(dates.DayKey(now))
	fired, err := k.Flags.HasFired(ctx, flag)
	if err != nil {
		return false, err
	}
	if fired {
		return false, nil
	}
	if err := k.Tasks.ClearAll(ctx); err != nil {
		return false, err
	}
	if err := k.Flags.Fire(ctx, flag); err != nil {
		return false, err
	}
	return true, nil
}

// PruneMotivated removes motivated-* flags from months other than the
// current one. Invoked once at process start.
func (k *Keeper) PruneMotivated(ctx context.Context) error {
	return k.Flags.PruneMonthly(ctx, dates.MonthKey(k.Clock.Now()), flags.MotivatedPrefix)
}

// settleDelay keeps the midnight timer safely on the far side of the
// boundary.
const settleDelay = time.Second

// UntilMidnight returns how long the rollover timer should sleep from
// now.
func (k *Keeper) UntilMidnight(now time.Time) time.Duration {
	return dates.UntilMidnight(now) + settleDelay
}

// poll refreshes the observed flag state, executes whatever Due
// reports for the current instant, and returns the updated state.
func (k *Keeper) poll(ctx context.Context, s State) (State, error) {
	now := k.Clock.Now()
	cleared, err := k.Flags.HasFired(ctx, flags.TasksCleared(dates.DayKey(now)))
	if err != nil {
		return s, err
	}
	s.TasksClearedToday = cleared
	for _, action := range Due(now, s) {
		switch action {
		case NoonReset:
			if _, err := k.NoonReset(ctx); err != nil {
				return s, err
			}
			s.TasksClearedToday = true
		case MonthlyPrune:
			if err := k.PruneMotivated(ctx); err != nil {
				return s, err
			}
			s.PrunedMonth = dates.MonthKey(now)
		}
	}
	return s, nil
}

// Run polls the Due actions on the given interval and fires onMidnight
// at each local midnight until the context is cancelled. Both callbacks
// are fire-and-forget; only the flag guard synchronizes them.
func (k *Keeper) Run(ctx context.Context, interval time.Duration, onMidnight func()) error {
	state, err := k.poll(ctx, State{})
	if err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	midnight := time.NewTimer(k.UntilMidnight(k.Clock.Now()))
	defer midnight.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if state, err = k.poll(ctx, state); err != nil {
				return err
			}
		case <-midnight.C:
			if onMidnight != nil {
				onMidnight()
			}
			midnight.Reset(k.UntilMidnight(k.Clock.Now()))
		}
	}
}
