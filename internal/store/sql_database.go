// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-storefront/internal/config"
	"github.com/MKhiriev/go-pet-storefront/internal/logger"
	"github.com/MKhiriev/go-pet-storefront/migrations"
)

// Dialect names a supported SQL backend. The values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

// retryIntervals are the waits between attempts of a retryable operation.
var retryIntervals = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// DB is a database handle bound to one dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{DB: conn, dialect: dialect, logger: log}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// ParseDialect picks the backend for dsn: postgres:// and postgresql:// URLs
// select PostgreSQL, other URLs are rejected, everything else is a SQLite
// file name or "file:" URI.
func ParseDialect(dsn string) (Dialect, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case lower == "":
		return "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"):
		return DialectSQLite, nil
	case strings.Contains(lower, "://"):
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, lower[:strings.Index(lower, "://")])
	default:
		return DialectSQLite, nil
	}
}

// NewConnect opens the database named by cfg.DSN and applies migrations.
func NewConnect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	dialect, err := ParseDialect(cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Dialect returns the backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs op and repeats it while it fails with a retryable error.
func (db *DB) withRetry(ctx context.Context, name string, op func() error) error {
	err := op()
	for _, wait := range retryIntervals {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Str("func", name).Dur("wait", wait).Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		err = op()
	}

	return err
}
