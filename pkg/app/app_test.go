package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/config"
	"tableflip.dev/pace/pkg/flags"
	"tableflip.dev/pace/pkg/store"
)

func testConfig() *config.Config {
	return &config.Config{
		CutoffHour: 20,
		Activation: time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local),
		TrackStart: time.Date(2025, time.July, 3, 0, 0, 0, 0, time.Local),
	}
}

func august(day, hour int) time.Time {
	return time.Date(2025, time.August, day, hour, 0, 0, 0, time.Local)
}

func newService(now time.Time) *Service {
	return New(store.NewMemory(), clock.Fixed(now), testConfig())
}

func TestCompleteTaskReturnsQuoteOnce(t *testing.T) {
	s := newService(august(5, 9))
	ctx := context.Background()
	if _, err := s.AddTask(ctx, "read chapter 3"); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, quote, err := s.CompleteTask(ctx, 0)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if quote == "" {
		t.Fatal("expected a quote on first completion")
	}

	_, quote, err = s.CompleteTask(ctx, 0)
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if quote != "" {
		t.Fatal("repeat completion must not produce another quote")
	}
}

func TestCheckMotivationFiresOnce(t *testing.T) {
	s := newService(august(5, 9))
	ctx := context.Background()
	for _, d := range []string{"one", "two", "three", "four", "five"} {
		if _, err := s.AddTask(ctx, d); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		if _, _, err := s.CompleteTask(ctx, i); err != nil {
			t.Fatalf("complete %d: %v", i, err)
		}
	}

	msg, fired, err := s.CheckMotivation(ctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !fired || msg != Celebration {
		t.Fatalf("expected celebration at 80%%, got fired=%v msg=%q", fired, msg)
	}

	// Recomputation with the flag set must never re-trigger.
	for i := 0; i < 3; i++ {
		_, fired, err = s.CheckMotivation(ctx)
		if err != nil {
			t.Fatalf("recheck %d: %v", i, err)
		}
		if fired {
			t.Fatalf("recheck %d re-triggered the celebration", i)
		}
	}
}

func TestCheckMotivationBelowThreshold(t *testing.T) {
	s := newService(august(5, 9))
	ctx := context.Background()
	for _, d := range []string{"one", "two"} {
		if _, err := s.AddTask(ctx, d); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, _, err := s.CompleteTask(ctx, 0); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, fired, err := s.CheckMotivation(ctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if fired {
		t.Fatal("50% must not celebrate")
	}
	if has, _ := s.Flags.HasFired(ctx, flags.Motivated("2025-08")); has {
		t.Fatal("flag must stay unset below the threshold")
	}
}

func TestCheckMotivationBeforeActivation(t *testing.T) {
	s := newService(time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local))
	ctx := context.Background()
	if _, err := s.AddTask(ctx, "only task"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := s.CompleteTask(ctx, 0); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, fired, err := s.CheckMotivation(ctx)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if fired {
		t.Fatal("monthly stats are inactive before the activation date")
	}
}

func TestCheckMotivationEmptyMonth(t *testing.T) {
	s := newService(august(5, 9))
	_, fired, err := s.CheckMotivation(context.Background())
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if fired {
		t.Fatal("a month with no tasks must not celebrate")
	}
}

func TestMonthlyAverageGatedByActivation(t *testing.T) {
	ctx := context.Background()

	before := newService(time.Date(2025, time.July, 10, 9, 0, 0, 0, time.Local))
	_, active, err := before.MonthlyAverage(ctx)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if active {
		t.Fatal("expected monthly stats inactive in july")
	}

	after := newService(august(5, 9))
	if err := after.RecordHours(ctx, august(4, 0), 3); err != nil {
		t.Fatalf("record: %v", err)
	}
	avg, active, err := after.MonthlyAverage(ctx)
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if !active || avg != 3 {
		t.Fatalf("expected active average 3, got active=%v avg=%v", active, avg)
	}
}

func TestMonthlySummaryScenario(t *testing.T) {
	s := newService(time.Date(2025, time.July, 1, 9, 0, 0, 0, time.Local))
	ctx := context.Background()
	if _, err := s.AddTask(ctx, "done this month"); err != nil {
		t.Fatalf("add: %v", err)
	}

	s.Clock = clock.Fixed(time.Date(2025, time.July, 15, 9, 0, 0, 0, time.Local))
	s.Tasks.Clock = s.Clock
	if _, _, err := s.CompleteTask(ctx, 0); err != nil {
		t.Fatalf("complete: %v", err)
	}

	s.Clock = clock.Fixed(time.Date(2025, time.July, 20, 9, 0, 0, 0, time.Local))
	s.Tasks.Clock = s.Clock
	if _, err := s.AddTask(ctx, "still open"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RecordHours(ctx, time.Date(2025, time.July, 20, 0, 0, 0, 0, time.Local), 4); err != nil {
		t.Fatalf("record: %v", err)
	}

	sum, err := s.MonthlySummary(ctx, "2025-07")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Stats.Total != 2 || sum.Stats.Completed != 1 {
		t.Fatalf("expected {2 1}, got %+v", sum.Stats)
	}
	if sum.Ratio != 0.5 {
		t.Fatalf("expected ratio 0.5, got %v", sum.Ratio)
	}
	if sum.AvgHours != 4 {
		t.Fatalf("expected 4 avg hours, got %v", sum.AvgHours)
	}
}

func TestTargetRoundTrip(t *testing.T) {
	s := newService(august(5, 21))
	ctx := context.Background()
	if err := s.SaveTarget(ctx, "Finish chapter 3"); err != nil {
		t.Fatalf("save: %v", err)
	}
	text, err := s.Target(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "Finish chapter 3" {
		t.Fatalf("expected round trip, got %q", text)
	}
}

func TestResetAll(t *testing.T) {
	s := newService(august(5, 9))
	ctx := context.Background()
	if _, err := s.AddTask(ctx, "doomed"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.RecordHours(ctx, august(5, 0), 2); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	tasks, _ := s.TaskList(ctx)
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
	all, _ := s.Hours.All(ctx)
	if len(all) != 0 {
		t.Fatalf("expected no hours, got %v", all)
	}
}
