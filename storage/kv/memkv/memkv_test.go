package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/storage/kv"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := Open()

	_, err := s.Get(ctx, "tasks")
	assert.True(t, kv.IsNotFound(err))

	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	require.NoError(t, s.Set(ctx, "tasks", `[{"id":"1"}]`))
	v, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, v)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(ctx, "tasks"))
	require.NoError(t, s.Delete(ctx, "tasks"))
	_, err = s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, kv.ErrNotFound)
	assert.NoError(t, s.Close())
}

func TestStore_quota(t *testing.T) {
	ctx := context.Background()
	s := Open(WithQuota(10))

	require.NoError(t, s.Set(ctx, "a", "12345")) // 6 bytes
	assert.ErrorIs(t, s.Set(ctx, "b", "12345"), kv.ErrQuotaExceeded)
	require.NoError(t, s.Set(ctx, "a", "123456789"), "replacing a value frees the old one")
	assert.ErrorIs(t, s.Set(ctx, "a", "1234567890"), kv.ErrQuotaExceeded)

	v, _ := s.Get(ctx, "a")
	assert.Equal(t, "123456789", v, "failed writes leave the old value")

	require.NoError(t, s.Delete(ctx, "a"))
	assert.NoError(t, s.Set(ctx, "b", "12345"))
}
