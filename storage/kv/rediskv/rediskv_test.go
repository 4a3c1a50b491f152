package rediskv

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/storage/kv"
)

func TestStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()

	s, err := Open(ctx, url)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	key := "agenda-test-" + t.Name()
	_ = s.Delete(ctx, key)

	_, err = s.Get(ctx, key)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, key, "[]"))
	require.NoError(t, s.Set(ctx, key, `[{"id":"1"}]`))
	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	assert.True(t, kv.IsNotFound(err))
}

func TestOpen_badURL(t *testing.T) {
	_, err := Open(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
