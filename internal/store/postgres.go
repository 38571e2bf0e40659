package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hraghav/tally-mirror/internal/config"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB wraps the shared *sql.DB connection together with the error
// classifier used by repositories to decide whether a failed operation
// is worth retrying.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver, verifies it with a ping, and returns the wrapped [DB] handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// retryable reports whether err is classified as transient by the attached
// [ErrorClassificator]. Handles with no classifier never retry.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// scanRowRetry executes a single-row query and scans the result, repeating
// the query once when the first attempt fails with a transient driver error
// such as a dropped connection or a deadlock rollback. The error of the last
// attempt is returned unwrapped so callers keep ownership of error mapping.
func (db *DB) scanRowRetry(ctx context.Context, query string, args []any, dest ...any) error {
	err := db.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err == nil || !db.retryable(err) {
		return err
	}

	logger.FromContext(ctx).Warn().
		Err(err).
		Str("func", "*DB.scanRowRetry").
		Msg("transient database error, retrying once")

	return db.QueryRowContext(ctx, query, args...).Scan(dest...)
}

// postgresError extracts the PostgreSQL error code from err, or returns an
// empty string if err did not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
