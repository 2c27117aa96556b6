// Package backup moves ledger data in and out of the JSON backup
// format: {"tasks": [...], "studyHours": {"YYYY-MM-DD": hours}}.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/errs"
	"tableflip.dev/pace/pkg/hours"
	"tableflip.dev/pace/pkg/task"
)

// Backup is the export payload shape.
type Backup struct {
	Tasks      []task.Task        `json:"tasks"`
	StudyHours map[string]float64 `json:"studyHours"`
}

// Porter exports and imports ledger state.
type Porter struct {
	Tasks *task.Ledger
	Hours *hours.Ledger
}

// Export serializes both ledgers as indented JSON.
func (p *Porter) Export(ctx context.Context) ([]byte, error) {
	tasks, err := p.Tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	studyHours, err := p.Hours.All(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(Backup{Tasks: tasks, StudyHours: studyHours}, "", "  ")
}

// Import replaces ledger state from a backup payload. Both fields are
// optional; an absent field leaves that ledger untouched. The whole
// payload is validated before the first write, so a rejected import
// never partially applies.
func (p *Porter) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Tasks      json.RawMessage `json:"tasks"`
		StudyHours json.RawMessage `json:"studyHours"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errs.FormatError{Field: "payload", Message: "not a JSON object"}
	}

	// A literal null field is the same as an absent one.
	if bytes.Equal(raw.Tasks, []byte("null")) {
		raw.Tasks = nil
	}
	if bytes.Equal(raw.StudyHours, []byte("null")) {
		raw.StudyHours = nil
	}

	var tasks []task.Task
	if raw.Tasks != nil {
		if err := json.Unmarshal(raw.Tasks, &tasks); err != nil {
			return &errs.FormatError{Field: "tasks", Message: "expected an array of tasks"}
		}
		for i, t := range tasks {
			if err := validateTask(i, t); err != nil {
				return err
			}
		}
	}

	var studyHours map[string]float64
	if raw.StudyHours != nil {
		if err := json.Unmarshal(raw.StudyHours, &studyHours); err != nil {
			return &errs.FormatError{Field: "studyHours", Message: "expected an object of date to hours"}
		}
		for day, v := range studyHours {
			if _, err := dates.ParseDay(day); err != nil {
				return &errs.FormatError{Field: "studyHours", Message: fmt.Sprintf("bad date key %q", day)}
			}
			if !hours.Valid(v) {
				return &errs.FormatError{Field: "studyHours", Message: fmt.Sprintf("bad hours value for %s", day)}
			}
		}
	}

	if raw.Tasks != nil {
		if err := p.Tasks.Replace(ctx, tasks); err != nil {
			return err
		}
	}
	if raw.StudyHours != nil {
		if err := p.Hours.Replace(ctx, studyHours); err != nil {
			return err
		}
	}
	return nil
}

func validateTask(i int, t task.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return &errs.FormatError{Field: "tasks", Message: fmt.Sprintf("task %d has no description", i)}
	}
	if t.DateAdded.IsZero() {
		return &errs.FormatError{Field: "tasks", Message: fmt.Sprintf("task %d has no dateAdded", i)}
	}
	if t.Completed != (t.DateCompleted != nil && !t.DateCompleted.IsZero()) {
		return &errs.FormatError{Field: "tasks", Message: fmt.Sprintf("task %d completion disagrees with dateCompleted", i)}
	}
	if t.DateCompleted != nil && t.DateCompleted.Before(t.DateAdded.Time) {
		return &errs.FormatError{Field: "tasks", Message: fmt.Sprintf("task %d completed before it was added", i)}
	}
	return nil
}
