package store

import (
	"context"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	disk, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load diskv store: %v", err)
	}
	return map[string]Store{
		"memory": NewMemory(),
		"diskv":  disk,
	}
}

func TestGetAbsent(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			val, ok, err := s.Get(ctx, "missing")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok || val != nil {
				t.Fatalf("expected absent, got ok=%v val=%q", ok, val)
			}
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, "tasks", []byte(`[]`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			val, ok, err := s.Get(ctx, "tasks")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !ok || string(val) != `[]` {
				t.Fatalf("expected [], got ok=%v val=%q", ok, val)
			}
		})
	}
}

func TestSetOverwrites(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, "k", []byte("one")); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.Set(ctx, "k", []byte("two")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			val, _, err := s.Get(ctx, "k")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if string(val) != "two" {
				t.Fatalf("expected two, got %q", val)
			}
		})
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Remove(context.Background(), "missing"); err != nil {
				t.Fatalf("remove of absent key should not fail: %v", err)
			}
		})
	}
}

func TestKeysSorted(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, k := range []string{"motivated-2025-08", "tasks", "dailyTarget-2025-08-06"} {
				if err := s.Set(ctx, k, []byte("1")); err != nil {
					t.Fatalf("set %s: %v", k, err)
				}
			}
			keys, err := s.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			want := []string{"dailyTarget-2025-08-06", "motivated-2025-08", "tasks"}
			if len(keys) != len(want) {
				t.Fatalf("expected %d keys, got %v", len(want), keys)
			}
			for i := range want {
				if keys[i] != want[i] {
					t.Fatalf("expected %v, got %v", want, keys)
				}
			}
		})
	}
}

func TestClearAll(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, "tasks", []byte(`[]`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			if err := s.ClearAll(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}
			keys, err := s.Keys(ctx)
			if err != nil {
				t.Fatalf("keys: %v", err)
			}
			if len(keys) != 0 {
				t.Fatalf("expected empty store, got %v", keys)
			}
		})
	}
}
