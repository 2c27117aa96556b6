package task

import (
	"context"
	"encoding/json"
	"strings"

	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/errs"
	"tableflip.dev/pace/pkg/store"
)

const storeKey = "tasks"

// Ledger reads and writes the task list. The store holds the canonical
// copy; every operation is a full load-mutate-save round trip, and
// callers must not overlap two such sequences.
type Ledger struct {
	Store store.Store
	Clock clock.Clock
}

// List loads all tasks. An absent key is an empty list.
func (l *Ledger) List(ctx context.Context) ([]Task, error) {
	val, ok, err := l.Store.Get(ctx, storeKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Task{}, nil
	}
	var all []Task
	if err := json.Unmarshal(val, &all); err != nil {
		return nil, &errs.StorageError{Key: storeKey, Err: err}
	}
	return all, nil
}

func (l *Ledger) save(ctx context.Context, all []Task) error {
	data, err := json.Marshal(all)
	if err != nil {
		return &errs.StorageError{Key: storeKey, Err: err}
	}
	return l.Store.Set(ctx, storeKey, data)
}

// Add appends a new pending task. The description must be non-empty
// after trimming.
func (l *Ledger) Add(ctx context.Context, description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, &errs.ValidationError{Field: "description", Message: "description is required"}
	}
	all, err := l.List(ctx)
	if err != nil {
		return Task{}, err
	}
	t := New(description, l.Clock.Now())
	all = append(all, t)
	if err := l.save(ctx, all); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Complete marks the task at index done. Completing an already-complete
// task is a no-op, not an error; an out-of-range index is an IndexError.
func (l *Ledger) Complete(ctx context.Context, index int) (Task, error) {
	all, err := l.List(ctx)
	if err != nil {
		return Task{}, err
	}
	if index < 0 || index >= len(all) {
		return Task{}, &errs.IndexError{Index: index, Length: len(all)}
	}
	if all[index].Completed {
		return all[index], nil
	}
	all[index].Completed = true
	all[index].DateCompleted = &Timestamp{Time: l.Clock.Now()}
	if err := l.save(ctx, all); err != nil {
		return Task{}, err
	}
	return all[index], nil
}

// ClearAll replaces the list with an empty one.
func (l *Ledger) ClearAll(ctx context.Context) error {
	return l.save(ctx, []Task{})
}

// Replace overwrites the whole list. Used by import.
func (l *Ledger) Replace(ctx context.Context, all []Task) error {
	return l.save(ctx, all)
}

// Stats is the month-scoped completion count.
type Stats struct {
	Total     int
	Completed int
}

// CompletionStats counts tasks added in the month and, of those, the
// ones also completed within the same month.
func (l *Ledger) CompletionStats(ctx context.Context, monthKey string) (Stats, error) {
	all, err := l.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	for _, t := range all {
		if !t.AddedOn(monthKey) {
			continue
		}
		s.Total++
		if t.CompletedOn(monthKey) {
			s.Completed++
		}
	}
	return s, nil
}

// CompletionRatio returns completed/total for the month, and 0 when the
// month has no tasks.
func (l *Ledger) CompletionRatio(ctx context.Context, monthKey string) (float64, error) {
	s, err := l.CompletionStats(ctx, monthKey)
	if err != nil {
		return 0, err
	}
	return s.Ratio(), nil
}

// Ratio returns completed/total, and 0 for an empty month.
func (s Stats) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
