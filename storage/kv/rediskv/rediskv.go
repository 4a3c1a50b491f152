// Package rediskv is a kv.Store backed by Redis strings.
package rediskv

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/trezcool/agenda/storage/kv"
)

type Store struct {
	client *redis.Client
}

var _ kv.Store = (*Store)(nil) // interface compliance check

// Open connects to the Redis server at `url` (eg. redis://:password@localhost:6379/0).
func Open(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}
	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %q", key)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "writing %q", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "deleting %q", key)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
