package database

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotConnected = errors.New("database not connected")

// DB is the narrow query surface the profile and user repositories use.
// SQLDB exposes a database/sql handle over the same pool for the migration
// runner.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
