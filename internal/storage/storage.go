// Package storage provides the comment-record stores. A store keeps an
// append-only multiset of serialized records per discussion id; it never
// interprets the record contents.
package storage

import (
	"context"
	"fmt"

	"commentd/internal/config"
)

// Store is the single seam between the comment pipelines and any concrete
// datastore. Add appends one record to the named discussion; Get returns every
// record stored for it, in no particular order. An unknown discussion id is
// not an error and yields an empty slice.
type Store interface {
	Add(ctx context.Context, discussionID, record string) error
	Get(ctx context.Context, discussionID string) ([]string, error)
	Close() error
}

// Open constructs the store selected by cfg.Storage. Construction failures
// (bad path, unreachable server) are returned here so main can treat them as
// fatal; they are never deferred to request time.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Storage {
	case "sqlite":
		return OpenSQLite(ctx, cfg.DBPath)
	case "redis":
		return OpenRedis(ctx, cfg.RedisURL)
	case "postgres":
		return OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage)
	}
}
