package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
)

// Storages groups the storage backends used by the service layer.
type Storages struct {
	// PostRepository is the relational store of posts and their relations.
	PostRepository PostRepository

	// PostCache is the optional read cache. It is nil when no Redis URL is
	// configured.
	PostCache PostCache

	db         *DB
	closeCache func() error
}

// NewStorages initialises the storage layer:
//  1. Opens PostgreSQL or SQLite depending on the scheme of cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Connects the Redis read cache when cfg.Cache.RedisURL is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := openDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		PostRepository: NewPostRepository(db, log),
		db:             db,
	}

	if cfg.Cache.RedisURL != "" {
		cache, closeCache, cacheErr := NewRedisCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL, log)
		if cacheErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis connection error: %w", cacheErr)
		}
		storages.PostCache = cache
		storages.closeCache = closeCache
	}

	return storages, nil
}

func openDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	case strings.HasPrefix(cfg.DSN, sqliteScheme), strings.HasPrefix(cfg.DSN, "file:"):
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DSN)
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool and the cache client.
func (s *Storages) Close() error {
	var err error
	if s.closeCache != nil {
		err = s.closeCache()
	}

	return errors.Join(err, s.db.Close())
}
