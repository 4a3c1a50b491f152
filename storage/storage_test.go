package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/storage/kv"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		driver  string
		dsn     string
		wantErr error
	}{
		{name: "memory", driver: core.StorageMemory},
		{name: "file", driver: core.StorageFile},
		{name: "sqlite", driver: core.StorageSQLite, dsn: filepath.Join(dir, "agenda.db")},
		{name: "unknown", driver: "floppy", wantErr: ErrUnknownDriver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &core.Config{}
			conf.Storage.Driver = tt.driver
			conf.Storage.DSN = tt.dsn
			conf.Storage.Dir = filepath.Join(dir, "files")

			ctx := context.Background()
			store, err := Open(ctx, conf)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), err)
				return
			}
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Set(ctx, "agenda-tasks", "[]"))
			got, err := store.Get(ctx, "agenda-tasks")
			require.NoError(t, err)
			assert.Equal(t, "[]", got)

			_, err = store.Get(ctx, "agenda-notes")
			assert.True(t, kv.IsNotFound(err))
		})
	}
}
