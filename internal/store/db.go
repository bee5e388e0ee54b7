package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS sys_dept (
	dept_id     INTEGER PRIMARY KEY,
	pid         INTEGER NOT NULL DEFAULT 0,
	name        TEXT NOT NULL,
	dept_sort   INTEGER NOT NULL DEFAULT 999,
	enabled     INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS sys_user (
	user_id     INTEGER PRIMARY KEY,
	dept_id     INTEGER,
	username    TEXT NOT NULL UNIQUE,
	nick_name   TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	password    TEXT NOT NULL DEFAULT '',
	enabled     INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS sys_job (
	job_id      INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	enabled     INTEGER NOT NULL DEFAULT 1,
	job_sort    INTEGER NOT NULL DEFAULT 999,
	dept_id     INTEGER,
	create_by   INTEGER,
	create_time INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sys_users_jobs (
	user_id     INTEGER NOT NULL,
	job_id      INTEGER NOT NULL,
	PRIMARY KEY (user_id, job_id)
);

CREATE TABLE IF NOT EXISTS sys_quartz_job (
	job_id           INTEGER PRIMARY KEY,
	job_name         TEXT NOT NULL DEFAULT '',
	bean_name        TEXT NOT NULL,
	method_name      TEXT NOT NULL,
	params           TEXT NOT NULL DEFAULT '',
	cron_expression  TEXT NOT NULL,
	is_pause         INTEGER NOT NULL DEFAULT 0,
	person_in_charge TEXT NOT NULL DEFAULT '',
	description      TEXT NOT NULL DEFAULT '',
	create_by        INTEGER
);
CREATE INDEX IF NOT EXISTS idx_users_jobs_job ON sys_users_jobs(job_id);
`

// DB is an open system database.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens the SQLite database at path, creating the directory and the
// schema when missing. Use MemoryPath for a throwaway database.
func Open(ctx context.Context, path string) (*DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the path the database was opened with.
func (d *DB) Path() string {
	return d.path
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, db *sql.DB, scan func(scanner) (*T, error), query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, rows.Err()
}

// queryOne runs query and scans a single row, mapping sql.ErrNoRows to ErrNotFound.
func queryOne[T any](ctx context.Context, db *sql.DB, scan func(scanner) (*T, error), query string, args ...any) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return v, err
}

func unixTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}

	return time.Unix(sec, 0).UTC()
}
