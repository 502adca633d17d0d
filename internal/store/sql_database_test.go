package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "unable to connect", err: pgError(pgerrcode.SQLClientUnableToEstablishSQLConnection), want: Retryable},
		{name: "admin shutdown", err: pgError(pgerrcode.AdminShutdown), want: Retryable},
		{name: "wrapped serialization failure", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.SerializationFailure)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "unknown code", err: pgError("XX999"), want: NonRetryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "wrapped busy", err: fmt.Errorf("%w: %w", ErrExecutingStatement, sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	classifier := NewSQLiteErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestWithRetry_WithoutClassifierRunsOnce(t *testing.T) {
	db := newDB(nil, DialectSQLite, nil, logger.Nop())

	calls := 0
	err := db.withRetry(context.Background(), func(ctx context.Context) error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	db := newDB(nil, DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func(ctx context.Context) error {
		calls++
		return pgError(pgerrcode.SerializationFailure)
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestNewDB_Dialect(t *testing.T) {
	assert.Equal(t, DialectPostgres, newDB(nil, DialectPostgres, nil, logger.Nop()).Dialect())
	assert.Equal(t, DialectSQLite, newDB(nil, DialectSQLite, nil, logger.Nop()).Dialect())
}

func TestNewDB_PlaceholderByDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{name: "postgres numbers placeholders", dialect: DialectPostgres, want: "SELECT id FROM posts WHERE id = $1"},
		{name: "sqlite uses question marks", dialect: DialectSQLite, want: "SELECT id FROM posts WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("id").From("posts").Where("id = ?", 1).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{1}, args)
		})
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "data/posts.db", sqliteDSN("sqlite://data/posts.db"))
	assert.Equal(t, "file:posts.db?cache=shared", sqliteDSN("file:posts.db?cache=shared"))
}

func TestCreateLocalDBDirIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	require.NoError(t, createLocalDBDirIfNotExists("file:"+filepath.Join(dir, "posts.db")+"?_busy_timeout=5000"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, createLocalDBDirIfNotExists(":memory:"))
	assert.NoError(t, createLocalDBDirIfNotExists("file::memory:"))
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://localhost/posts"}}, logger.Nop())

	require.ErrorIs(t, err, ErrUnsupportedDriver)
}
