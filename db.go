package sqlq

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// PathResolver maps a logical database name to an on-disk path. Hosts
// with unusual storage layouts inject their own; the default keeps
// databases under the user config directory.
type PathResolver interface {
	Resolve(name string) (string, error)
}

// DirResolver resolves names inside a fixed directory, creating it on
// first use.
type DirResolver string

func (d DirResolver) Resolve(name string) (string, error) {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return "", err
	}
	return filepath.Join(string(d), name), nil
}

type configDirResolver struct{}

func (configDirResolver) Resolve(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return DirResolver(filepath.Join(dir, "sqlq")).Resolve(name)
}

type options struct {
	resolver    PathResolver
	file        string
	busyTimeout time.Duration
}

type Option func(*options)

// WithResolver injects the path resolver used to place the database file.
func WithResolver(r PathResolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithFile copies an existing database file into the managed location
// before opening, overwriting any previous copy. This is for hosts that
// cannot open arbitrary absolute paths directly.
func WithFile(path string) Option {
	return func(o *options) { o.file = path }
}

// WithBusyTimeout sets how long statements wait for a locked database.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) { o.busyTimeout = d }
}

// DB is an open SQLite handle. Statements run through a single
// connection; SQLite supports one writer at a time anyway.
type DB struct {
	exec Executor
	sdb  *sql.DB
	path string
}

// Open opens (creating if needed) the database with the given logical
// name at the resolver-managed location.
func Open(name string, opts ...Option) (*DB, error) {
	o := options{
		resolver:    configDirResolver{},
		busyTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	path, err := o.resolver.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", name, err)
	}

	if o.file != "" {
		if err := copyFile(o.file, path); err != nil {
			return nil, fmt.Errorf("seed %s: %w", name, err)
		}
	}

	sdb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	sdb.SetMaxOpenConns(1)
	sdb.SetMaxIdleConns(1)
	sdb.SetConnMaxLifetime(0)

	if err := sdb.Ping(); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	if _, err := sdb.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", o.busyTimeout.Milliseconds())); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	return &DB{exec: sdb, sdb: sdb, path: path}, nil
}

// NewDB wraps an already-open executor (an *sql.DB, a transaction, a
// mock). Close is a no-op on wrapped executors.
func NewDB(e Executor) *DB {
	return &DB{exec: e}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Path returns the resolved database file path, empty for wrapped
// executors.
func (d *DB) Path() string {
	return d.path
}

// Query runs raw SQL and returns its cursor.
func (d *DB) Query(query string, args ...any) (*Result, error) {
	debugf("[SQL] %s", query)

	rows, err := d.exec.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return &Result{rows: rows}, nil
}

// Exec runs raw SQL that returns no rows (DDL, pragmas).
func (d *DB) Exec(query string, args ...any) error {
	debugf("[SQL] %s", query)

	_, err := d.exec.Exec(query, args...)
	return err
}

// Close closes the handle. Best-effort: failures are logged, not
// returned.
func (d *DB) Close() {
	if d.sdb == nil {
		return
	}
	if err := d.sdb.Close(); err != nil {
		log.Printf("[SQL] close %s: %v", d.path, err)
	}
}
