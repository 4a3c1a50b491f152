// Package filekv is a kv.Store keeping one file per key in a directory.
package filekv

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/agenda/storage/kv"
)

const fileExt = ".json"

type Store struct {
	mu  sync.RWMutex
	dir string
}

var _ kv.Store = (*Store)(nil) // interface compliance check

// Open creates `dir` if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %q", key)
	}
	return string(b), nil
}

// Set replaces the file of `key` atomically: readers see the old or the new value, never a part.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing %q", key)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting %q", key)
	}
	return nil
}

func (s *Store) Close() error { return nil }
