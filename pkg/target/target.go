// Package target stores the free-text daily target, keyed by the
// effective tracking day rather than the calendar day: a target written
// at or after the evening cutoff belongs to tomorrow.
package target

import (
	"context"
	"strings"
	"time"

	"tableflip.dev/pace/pkg/dates"
	"tableflip.dev/pace/pkg/errs"
	"tableflip.dev/pace/pkg/store"
)

const keyPrefix = "dailyTarget-"

// Book reads and writes daily targets.
type Book struct {
	Store      store.Store
	CutoffHour int
}

// Key returns the store key the target for now would use.
func (b *Book) Key(now time.Time) string {
	return keyPrefix + dates.DayKey(dates.EffectiveDay(now, b.CutoffHour))
}

// Save writes the target for now's effective day, overwriting any
// previous value.
func (b *Book) Save(ctx context.Context, now time.Time, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &errs.ValidationError{Field: "target", Message: "target text is required"}
	}
	return b.Store.Set(ctx, b.Key(now), []byte(text))
}

// Load returns the target for now's effective day, or "" when unset.
func (b *Book) Load(ctx context.Context, now time.Time) (string, error) {
	val, ok, err := b.Store.Get(ctx, b.Key(now))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return string(val), nil
}
