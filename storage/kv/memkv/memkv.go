// Package memkv is an in-memory kv.Store, with an optional size quota.
package memkv

import (
	"context"
	"sync"

	"github.com/trezcool/agenda/storage/kv"
)

type Store struct {
	sync.RWMutex
	table map[string]string
	quota int // bytes of keys and values; 0 means unlimited
	size  int
}

var _ kv.Store = (*Store)(nil) // interface compliance check

type Option func(*Store)

// WithQuota makes Set fail with kv.ErrQuotaExceeded once the stored keys and values
// would exceed `bytes`.
func WithQuota(bytes int) Option {
	return func(s *Store) { s.quota = bytes }
}

func Open(opts ...Option) *Store {
	s := &Store{table: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.RLock()
	defer s.RUnlock()
	if v, ok := s.table[key]; ok {
		return v, nil
	}
	return "", kv.ErrNotFound
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.Lock()
	defer s.Unlock()

	size := s.size + len(value)
	if old, ok := s.table[key]; ok {
		size -= len(old)
	} else {
		size += len(key)
	}
	if s.quota > 0 && size > s.quota {
		return kv.ErrQuotaExceeded
	}
	s.table[key] = value
	s.size = size
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.Lock()
	defer s.Unlock()
	if old, ok := s.table[key]; ok {
		s.size -= len(key) + len(old)
		delete(s.table, key)
	}
	return nil
}

func (s *Store) Close() error { return nil }

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.table)
}
