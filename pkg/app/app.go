// Package app provides the high-level operations shared by the CLI
// runners and the terminal dashboard. It wires the ledgers, the flag
// registry, and the clock so surfaces do not touch the store directly.
package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/pace/pkg/backup"
	"tableflip.dev/pace/pkg/clock"
	"tableflip.dev/pace/pkg/config"
	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/flags"
	"tableflip.dev/pace/pkg/hours"
	"tableflip.dev/pace/pkg/store"
	"tableflip.dev/pace/pkg/target"
	"tableflip.dev/pace/pkg/task"
)

// MotivationThreshold is the monthly completion ratio that earns the
// one-time celebration.
const MotivationThreshold = 0.8

// Service exposes the tracker's operations. Operations are logically
// synchronous transformations that round-trip through the store; the
// caller must not overlap two read-modify-write operations on the same
// collection (the surrounding CLI and dashboard both serialize user
// actions, so no locking happens here).
type Service struct {
	Tasks   *task.Ledger
	Hours   *hours.Ledger
	Targets *target.Book
	Flags   *flags.Registry
	Porter  *backup.Porter
	Clock   clock.Clock
	Cfg     *config.Config

	store store.Store
}

// New assembles a Service over the given store.
func New(st store.Store, clk clock.Clock, cfg *config.Config) *Service {
	tasks := &task.Ledger{Store: st, Clock: clk}
	studyHours := &hours.Ledger{Store: st}
	return &Service{
		Tasks:   tasks,
		Hours:   studyHours,
		Targets: &target.Book{Store: st, CutoffHour: cfg.CutoffHour},
		Flags:   &flags.Registry{Store: st},
		Porter:  &backup.Porter{Tasks: tasks, Hours: studyHours},
		Clock:   clk,
		Cfg:     cfg,
		store:   st,
	}
}

// AddTask appends a pending task.
func (s *Service) AddTask(ctx context.Context, description string) (task.Task, error) {
	return s.Tasks.Add(ctx, description)
}

// CompleteTask marks the task at index done and returns a motivational
// quote for the completion toast. The quote is empty when the task was
// already complete.
func (s *Service) CompleteTask(ctx context.Context, index int) (task.Task, string, error) {
	before, err := s.Tasks.List(ctx)
	if err != nil {
		return task.Task{}, "", err
	}
	alreadyDone := index >= 0 && index < len(before) && before[index].Completed

	t, err := s.Tasks.Complete(ctx, index)
	if err != nil || alreadyDone {
		return t, "", err
	}
	return t, Quote(), nil
}

// TaskList returns all tasks.
func (s *Service) TaskList(ctx context.Context) ([]task.Task, error) {
	return s.Tasks.List(ctx)
}

// ClearTasks empties the task list without touching the other ledgers.
func (s *Service) ClearTasks(ctx context.Context) error {
	return s.Tasks.ClearAll(ctx)
}

// RecordHours saves the hours studied for the given day.
func (s *Service) RecordHours(ctx context.Context, day time.Time, v float64) error {
	return s.Hours.Set(ctx, day, v)
}

// WeeklyAverage is the mean over the current Sunday-based week's
// recorded days.
func (s *Service) WeeklyAverage(ctx context.Context) (float64, error) {
	return s.Hours.Average(ctx, dates.WeekWindow(s.Clock.Now()))
}

// MonthlyStatsActive reports whether the activation threshold date has
// been reached.
func (s *Service) MonthlyStatsActive() bool {
	return dates.IsOnOrAfter(s.Clock.Now(), s.Cfg.Activation)
}

// MonthlyAverage is the mean over the current month's entries. The
// second return is false while monthly stats are not yet active.
func (s *Service) MonthlyAverage(ctx context.Context) (float64, bool, error) {
	if !s.MonthlyStatsActive() {
		return 0, false, nil
	}
	avg, err := s.Hours.MonthAverage(ctx, dates.MonthKey(s.Clock.Now()))
	return avg, err == nil, err
}

// Summary is a month's combined statistics.
type Summary struct {
	Month    string
	Stats    task.Stats
	Ratio    float64
	AvgHours float64
}

// MonthlySummary derives the summary for an arbitrary YYYY-MM key.
func (s *Service) MonthlySummary(ctx context.Context, monthKey string) (Summary, error) {
	stats, err := s.Tasks.CompletionStats(ctx, monthKey)
	if err != nil {
		return Summary{}, err
	}
	avg, err := s.Hours.MonthAverage(ctx, monthKey)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Month:    monthKey,
		Stats:    stats,
		Ratio:    stats.Ratio(),
		AvgHours: avg,
	}, nil
}

// CheckMotivation fires the current month's celebration exactly once,
// when monthly stats are active, the month has tasks, and the
// completion ratio has reached the threshold. Recomputing after the
// flag is set never re-triggers.
func (s *Service) CheckMotivation(ctx context.Context) (string, bool, error) {
	if !s.MonthlyStatsActive() {
		return "", false, nil
	}
	monthKey := dates.MonthKey(s.Clock.Now())
	stats, err := s.Tasks.CompletionStats(ctx, monthKey)
	if err != nil {
		return "", false, err
	}
	if stats.Total == 0 || stats.Ratio() < MotivationThreshold {
		return "", false, nil
	}
	flag := flags.Motivated(monthKey)
	fired, err := s.Flags.HasFired(ctx, flag)
	if err != nil {
		return "", false, err
	}
	if fired {
		return "", false, nil
	}
	if err := s.Flags.Fire(ctx, flag); err != nil {
		return "", false, err
	}
	return Celebration, true, nil
}

// SaveTarget stores the daily target under the effective tracking day.
func (s *Service) SaveTarget(ctx context.Context, text string) error {
	return s.Targets.Save(ctx, s.Clock.Now(), text)
}

// Target loads the effective day's target, or "" when unset.
func (s *Service) Target(ctx context.Context) (string, error) {
	return s.Targets.Load(ctx, s.Clock.Now())
}

// Export serializes both ledgers for backup.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	return s.Porter.Export(ctx)
}

// Import replaces ledger state from a backup payload.
func (s *Service) Import(ctx context.Context, data []byte) error {
	return s.Porter.Import(ctx, data)
}

// ResetAll clears the entire store: tasks, hours, targets, and flags.
func (s *Service) ResetAll(ctx context.Context) error {
	if s.store == nil {
		return errors.New("app: no store configured")
	}
	return s.store.ClearAll(ctx)
}
