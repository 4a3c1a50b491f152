// Package storage opens the key-value medium selected by the configuration.
package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/storage/kv"
	"github.com/trezcool/agenda/storage/kv/filekv"
	"github.com/trezcool/agenda/storage/kv/memkv"
	"github.com/trezcool/agenda/storage/kv/rediskv"
	"github.com/trezcool/agenda/storage/kv/sqlkv"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Open returns the kv.Store of conf.Storage.Driver:
//   - memory: nothing survives a restart
//   - file: one file per key under conf.Storage.Dir
//   - sqlite, postgres: a table of the conf.Storage.DSN database
//   - redis: the conf.Storage.DSN redis URL
func Open(ctx context.Context, conf *core.Config) (kv.Store, error) {
	switch conf.Storage.Driver {
	case core.StorageMemory:
		return memkv.Open(), nil
	case core.StorageFile:
		return filekv.Open(conf.Storage.Dir)
	case core.StorageSQLite, core.StoragePostgres:
		return sqlkv.Open(ctx, conf.Storage.Driver, conf.Storage.DSN)
	case core.StorageRedis:
		return rediskv.Open(ctx, conf.Storage.DSN)
	default:
		return nil, errors.Wrapf(ErrUnknownDriver, "%q", conf.Storage.Driver)
	}
}
