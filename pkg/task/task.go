// Package task holds the task record and its ledger: add, complete,
// clear, and the month-scoped completion statistics.
package task

import "time"

// Task is a single tracked item. DateCompleted is set exactly when
// Completed is true, and never moves again after the first completion.
type Task struct {
	Description   string     `json:"description"`
	Completed     bool       `json:"completed"`
	DateAdded     Timestamp  `json:"dateAdded"`
	DateCompleted *Timestamp `json:"dateCompleted,omitempty"`
}

// New creates a pending task added at now.
func New(description string, now time.Time) Task {
	return Task{
		Description: description,
		DateAdded:   Timestamp{Time: now},
	}
}

// CompletedOn reports whether the task was completed during the given
// month. A task added in one month but completed in a later one does
// not count toward the earlier month.
func (t Task) CompletedOn(monthKey string) bool {
	return t.Completed && t.DateCompleted != nil && t.DateCompleted.MonthKey() == monthKey
}

// AddedOn reports whether the task was added during the given month.
func (t Task) AddedOn(monthKey string) bool {
	return t.DateAdded.MonthKey() == monthKey
}
