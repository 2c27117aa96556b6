package housekeeping

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/flags"
	"tableflip.dev/pace/pkg/store"
	"tableflip.dev/pace/pkg/task"
)

func at(day, hour int) time.Time {
	return time.Date(2025, time.August, day, hour, 0, 0, 0, time.Local)
}

func newKeeper(now time.Time) (*Keeper, store.Store) {
	st := store.NewMemory()
	return &Keeper{
		Tasks: &task.Ledger{Store: st, Clock: clock.Fixed(now)},
		Flags: &flags.Registry{Store: st},
		Clock: clock.Fixed(now),
	}, st
}

func TestDue(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		s    State
		want []Action
	}{
		{"morning fresh", at(5, 9), State{PrunedMonth: "2025-08"}, nil},
		{"noon uncleaned", at(5, 12), State{PrunedMonth: "2025-08"}, []Action{NoonReset}},
		{"noon already cleared", at(5, 13), State{TasksClearedToday: true, PrunedMonth: "2025-08"}, nil},
		{"process start", at(5, 9), State{}, []Action{MonthlyPrune}},
		{"month changed", at(5, 14), State{PrunedMonth: "2025-07"}, []Action{NoonReset, MonthlyPrune}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Due(tc.now, tc.s)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestNoonResetBeforeNoon(t *testing.T) {
	k, _ := newKeeper(at(5, 11))
	ctx := context.Background()
	if _, err := k.Tasks.Add(ctx, "survives the morning"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cleared, err := k.NoonReset(ctx)
	if err != nil {
		t.Fatalf("noon reset: %v", err)
	}
	if cleared {
		t.Fatal("must not clear before noon")
	}
	all, _ := k.Tasks.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected task to survive, got %d", len(all))
	}
}

func TestNoonResetClearsOnce(t *testing.T) {
	k, _ := newKeeper(at(5, 12))
	ctx := context.Background()
	if _, err := k.Tasks.Add(ctx, "gone at noon"); err != nil {
		t.Fatalf("add: %v", err)
	}

	cleared, err := k.NoonReset(ctx)
	if err != nil {
		t.Fatalf("noon reset: %v", err)
	}
	if !cleared {
		t.Fatal("expected the first reset to clear")
	}

	// A task added after the reset must survive repeated polls that day.
	if _, err := k.Tasks.Add(ctx, "added after reset"); err != nil {
		t.Fatalf("add: %v", err)
	}
	for i := 0; i < 3; i++ {
		cleared, err = k.NoonReset(ctx)
		if err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
		if cleared {
			t.Fatalf("poll %d re-cleared despite the flag", i)
		}
	}
	all, _ := k.Tasks.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 surviving task, got %d", len(all))
	}
}

func TestNoonResetNextDayClearsAgain(t *testing.T) {
	k, _ := newKeeper(at(5, 12))
	ctx := context.Background()
	if _, err := k.NoonReset(ctx); err != nil {
		t.Fatalf("day one reset: %v", err)
	}

	k.Clock = clock.Fixed(at(6, 12))
	k.Tasks.Clock = k.Clock
	cleared, err := k.NoonReset(ctx)
	if err != nil {
		t.Fatalf("day two reset: %v", err)
	}
	if !cleared {
		t.Fatal("a new day has a fresh flag and must clear again")
	}
}

func TestPruneMotivated(t *testing.T) {
	k, _ := newKeeper(at(5, 9))
	ctx := context.Background()
	if err := k.Flags.Fire(ctx, flags.Motivated("2025-07")); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if err := k.Flags.Fire(ctx, flags.Motivated("2025-08")); err != nil {
		t.Fatalf("fire: %v", err)
	}

	if err := k.PruneMotivated(ctx); err != nil {
		t.Fatalf("prune: %v", err)
	}
	if fired, _ := k.Flags.HasFired(ctx, flags.Motivated("2025-07")); fired {
		t.Fatal("stale flag should be gone")
	}
	if fired, _ := k.Flags.HasFired(ctx, flags.Motivated("2025-08")); !fired {
		t.Fatal("current month flag should remain")
	}
}

func TestPollExecutesDueActions(t *testing.T) {
	k, _ := newKeeper(at(5, 12))
	ctx := context.Background()
	if _, err := k.Tasks.Add(ctx, "gone at noon"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := k.Flags.Fire(ctx, flags.Motivated("2025-07")); err != nil {
		t.Fatalf("fire: %v", err)
	}

	state, err := k.poll(ctx, State{})
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !state.TasksClearedToday || state.PrunedMonth != "2025-08" {
		t.Fatalf("expected cleared+pruned state, got %+v", state)
	}
	all, _ := k.Tasks.List(ctx)
	if len(all) != 0 {
		t.Fatalf("expected cleared ledger, got %d tasks", len(all))
	}
	if fired, _ := k.Flags.HasFired(ctx, flags.Motivated("2025-07")); fired {
		t.Fatal("stale motivated flag should be pruned")
	}

	// A second poll the same day has nothing due.
	if _, err := k.Tasks.Add(ctx, "added after reset"); err != nil {
		t.Fatalf("add: %v", err)
	}
	state, err = k.poll(ctx, state)
	if err != nil {
		t.Fatalf("second poll: %v", err)
	}
	all, _ = k.Tasks.List(ctx)
	if len(all) != 1 {
		t.Fatalf("second poll must not re-clear, got %d tasks", len(all))
	}
}

func TestPollRefreshesFlagStateFromStore(t *testing.T) {
	// A flag set outside the loop, by a one-shot housekeep run, must be
	// picked up instead of double-clearing.
	k, _ := newKeeper(at(5, 13))
	ctx := context.Background()
	if err := k.Flags.Fire(ctx, flags.TasksCleared("2025-08-05")); err != nil {
		t.Fatalf("fire: %v", err)
	}
	if _, err := k.Tasks.Add(ctx, "survives"); err != nil {
		t.Fatalf("add: %v", err)
	}

	state, err := k.poll(ctx, State{PrunedMonth: "2025-08"})
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if !state.TasksClearedToday {
		t.Fatal("expected the persisted flag to be observed")
	}
	all, _ := k.Tasks.List(ctx)
	if len(all) != 1 {
		t.Fatalf("expected task to survive, got %d", len(all))
	}
}

func TestUntilMidnight(t *testing.T) {
	k, _ := newKeeper(at(5, 23))
	got := k.UntilMidnight(at(5, 23))
	if got != time.Hour+time.Second {
		t.Fatalf("expected 1h1s, got %v", got)
	}
}
