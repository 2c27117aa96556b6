package store

import (
	"context"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/pace/pkg/errs"
)

// Load creates a Store backed by diskv rooted at basePath. Keys are
// flat file names (tasks, studyHours, dailyTarget-2025-08-06, ...), so
// no path transform is needed.
func Load(basePath string) (Store, error) {
	return &disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func flatTransform(string) []string { return []string{} }

type disk struct {
	d *diskv.Diskv
}

func (s *disk) Get(_ context.Context, key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		return nil, false, &errs.StorageError{Key: key, Err: err}
	}
	return val, true, nil
}

func (s *disk) Set(_ context.Context, key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return &errs.StorageError{Key: key, Err: err}
	}
	return nil
}

func (s *disk) Remove(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return &errs.StorageError{Key: key, Err: err}
	}
	return nil
}

func (s *disk) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *disk) ClearAll(_ context.Context) error {
	if err := s.d.EraseAll(); err != nil {
		return &errs.StorageError{Key: "*", Err: err}
	}
	return nil
}
