// Package sqlite is the authoritative store of blocks, attempts and user budgets.
// Every status transition is a conditional update; callers learn from the
// returned flag whether their precondition still held.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/goodnatureofminers/passblock-backend/internal/model"
	"github.com/goodnatureofminers/passblock-backend/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InMemoryDSN opens an ephemeral database.
const InMemoryDSN = ":memory:"

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type txKey struct{}

// Repository wraps a gorm SQLite client.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

// Open connects to the SQLite database at dsn.
func Open(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("sqlite dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("sqlite repository metrics is required")
	}
	// IMMEDIATE transactions take the write lock up front, so two writers never
	// deadlock upgrading a read lock.
	if dsn != InMemoryDSN && !strings.Contains(dsn, "?") {
		dsn += "?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate&_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	// A single connection serializes writers; transactions must use the context they were given.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &Repository{db: db, metrics: metrics}, nil
}

// Migrate applies the embedded schema.
func (r *Repository) Migrate() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init sqlite migrate driver: %w", err)
	}
	source, err := iofs.New(migrations.SQLite, migrations.SQLiteDir)
	if err != nil {
		return fmt.Errorf("init migrations source: %w", err)
	}
	// The migrator is not closed: closing it would close the shared connection.
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return nil
}

// Tx runs fn in a transaction carried by the context passed to fn. Calls nested
// in an existing transaction join it. Either every write in fn commits or none does.
func (r *Repository) Tx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	started := time.Now()
	defer func() {
		r.metrics.Observe("tx", err, started)
	}()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// wrapLookup wraps err, translating a missing row into model.ErrNotFound.
func wrapLookup(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, model.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
