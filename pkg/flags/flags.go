// Package flags is the one-shot trigger bookkeeping: a persisted marker
// per semantic key prevents a side effect from firing more than once
// within its period.
package flags

import (
	"context"
	"strings"

	"tableflip.dev/pace/pkg/store"
)

const (
	// MotivatedPrefix scopes the monthly celebration flags.
	MotivatedPrefix = "motivated-"
	// TasksClearedPrefix scopes the daily noon-reset flags.
	TasksClearedPrefix = "tasksCleared-"
)

// Motivated returns the celebration flag key for a YYYY-MM month.
func Motivated(monthKey string) string {
	return MotivatedPrefix + monthKey
}

// TasksCleared returns the noon-reset flag key for a YYYY-MM-DD day.
func TasksCleared(dayKey string) string {
	return TasksClearedPrefix + dayKey
}

// Registry reads and writes one-shot flags.
type Registry struct {
	Store store.Store
}

// HasFired reports whether the flag is set.
func (r *Registry) HasFired(ctx context.Context, key string) (bool, error) {
	_, ok, err := r.Store.Get(ctx, key)
	return ok, err
}

// Fire sets the flag. Firing twice has the same effect as once.
func (r *Registry) Fire(ctx context.Context, key string) error {
	return r.Store.Set(ctx, key, []byte("1"))
}

// PruneMonthly deletes every flag with the given prefix whose suffix is
// not exactly currentMonthKey, so a new month's trigger can fire again
// and stale flags do not accumulate.
func (r *Registry) PruneMonthly(ctx context.Context, currentMonthKey, prefix string) error {
	keys, err := r.Store.Keys(ctx)
	if err != nil {
		return err
	}
	keep := prefix + currentMonthKey
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) && key != keep {
			if err := r.Store.Remove(ctx, key); err != nil {
				return err
			}
		}
	}
	return nil
}
