// Package kv defines the textual key-value medium the planner collections are persisted to.
package kv

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a textual key-value medium. Implementations are safe for concurrent use.
type Store interface {
	// Get returns ErrNotFound if `key` holds no value.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
