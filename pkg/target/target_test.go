package target

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/pace/pkg/errs"
	"tableflip.dev/pace/pkg/store"
)

func TestSaveAfterCutoffKeysTomorrow(t *testing.T) {
	b := &Book{Store: store.NewMemory(), CutoffHour: 20}
	ctx := context.Background()
	now := time.Date(2025, time.August, 5, 21, 0, 0, 0, time.Local)

	if err := b.Save(ctx, now, "Finish chapter 3"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := b.Key(now); got != "dailyTarget-2025-08-06" {
		t.Fatalf("expected key for 2025-08-06, got %s", got)
	}
	text, err := b.Load(ctx, now)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "Finish chapter 3" {
		t.Fatalf("expected round trip, got %q", text)
	}
}

func TestSaveBeforeCutoffKeysToday(t *testing.T) {
	b := &Book{Store: store.NewMemory(), CutoffHour: 20}
	now := time.Date(2025, time.August, 5, 19, 59, 0, 0, time.Local)
	if got := b.Key(now); got != "dailyTarget-2025-08-05" {
		t.Fatalf("expected key for 2025-08-05, got %s", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	b := &Book{Store: store.NewMemory(), CutoffHour: 20}
	ctx := context.Background()
	now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.Local)
	if err := b.Save(ctx, now, "first"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.Save(ctx, now, "second"); err != nil {
		t.Fatalf("save: %v", err)
	}
	text, err := b.Load(ctx, now)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "second" {
		t.Fatalf("expected overwrite, got %q", text)
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	b := &Book{Store: store.NewMemory(), CutoffHour: 20}
	now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.Local)
	if err := b.Save(context.Background(), now, "  "); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadUnset(t *testing.T) {
	b := &Book{Store: store.NewMemory(), CutoffHour: 20}
	now := time.Date(2025, time.August, 5, 9, 0, 0, 0, time.Local)
	text, err := b.Load(context.Background(), now)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty target, got %q", text)
	}
}
