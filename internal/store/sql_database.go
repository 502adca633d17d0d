package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// Dialect names the SQL backend a DB talks to.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

const (
	retryBaseDelay = 50 * time.Millisecond
	retryMaxDelay  = time.Second
	retryAttempts  = 3
)

// DB wraps *sql.DB with the dialect-specific query builder and the retry
// policy for transient errors.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	backoff            func() retry.Backoff
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		backoff:            defaultBackoff,
		logger:             log,
	}
}

func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(retryBaseDelay)
	b = retry.WithCappedDuration(retryMaxDelay, b)
	return retry.WithMaxRetries(retryAttempts, b)
}

// Dialect reports the SQL backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs fn and repeats it while it fails with an error the
// classifier reports as Retryable. Other errors are returned at once.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if db.errorClassificator == nil {
		return fn(ctx)
	}

	attempt := 0
	return retry.Do(ctx, db.backoff(), func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "DB.withRetry").
				Int("attempt", attempt).
				Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// inTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. A transient failure re-runs the
// whole transaction.
func (db *DB) inTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err := fn(ctx, tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

// querier is the subset of *sql.DB and *sql.Tx used by the read helpers.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
