// Package hours tracks the per-day study-hour entries and the derived
// weekly and monthly averages.
package hours

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/errs"
	"tableflip.dev/pace/pkg/store"
)

const storeKey = "studyHours"

// Ledger maps YYYY-MM-DD keys to hours studied that day. At most one
// entry per date; later saves overwrite.
type Ledger struct {
	Store store.Store
}

// All loads every entry. An absent key is an empty map.
func (l *Ledger) All(ctx context.Context) (map[string]float64, error) {
	val, ok, err := l.Store.Get(ctx, storeKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]float64{}, nil
	}
	all := map[string]float64{}
	if err := json.Unmarshal(val, &all); err != nil {
		return nil, &errs.StorageError{Key: storeKey, Err: err}
	}
	return all, nil
}

func (l *Ledger) save(ctx context.Context, all map[string]float64) error {
	data, err := json.Marshal(all)
	if err != nil {
		return &errs.StorageError{Key: storeKey, Err: err}
	}
	return l.Store.Set(ctx, storeKey, data)
}

// Valid reports whether v is an acceptable hours value.
func Valid(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Set records hours for the given day, overwriting any existing entry.
func (l *Ledger) Set(ctx context.Context, day time.Time, v float64) error {
	if !Valid(v) {
		return &errs.ValidationError{Field: "hours", Message: "must be a non-negative number"}
	}
	all, err := l.All(ctx)
	if err != nil {
		return err
	}
	all[dates.DayKey(day)] = v
	return l.save(ctx, all)
}

// Replace overwrites the whole map. Used by import.
func (l *Ledger) Replace(ctx context.Context, all map[string]float64) error {
	return l.save(ctx, all)
}

// Average returns the mean over the given days that have an entry.
// Days without an entry are skipped, not counted as zero. An empty
// intersection averages to 0.
func (l *Ledger) Average(ctx context.Context, days []time.Time) (float64, error) {
	all, err := l.All(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	var count int
	for _, day := range days {
		if v, ok := all[dates.DayKey(day)]; ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}

// MonthAverage returns the mean over every entry in the given month, or
// 0 when the month has none.
func (l *Ledger) MonthAverage(ctx context.Context, monthKey string) (float64, error) {
	all, err := l.All(ctx)
	if err != nil {
		return 0, err
	}
	var sum float64
	var count int
	for day, v := range all {
		if strings.HasPrefix(day, monthKey) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count), nil
}
