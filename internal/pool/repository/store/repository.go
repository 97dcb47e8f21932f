// Package store persists the pool ledger in a relational database through gorm.
// PostgreSQL is used in production and SQLite for development and tests.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	// ErrNotFound is returned by point lookups that match no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a multi-row write finds a row already taken and rolls back.
	ErrConflict = errors.New("conflict")
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config selects the database backend.
type Config struct {
	Driver       string `long:"store-driver" env:"STORE_DRIVER" description:"ledger database driver (postgres|sqlite)" default:"postgres"`
	DSN          string `long:"store-dsn" env:"STORE_DSN" description:"ledger database DSN"`
	MaxOpenConns int    `long:"store-max-open-conns" env:"STORE_MAX_OPEN_CONNS" description:"connection pool size" default:"16"`
}

// Repository is the shared ledger store.
type Repository struct {
	db      *gorm.DB
	metrics Metrics
}

// Open connects to the configured database.
func Open(cfg Config, metrics Metrics) (*Repository, error) {
	if cfg.DSN == "" {
		return nil, errors.New("store dsn is required")
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, fmt.Errorf("install tracing plugin: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.Driver == DriverSQLite {
		// a single connection keeps in-memory databases alive and serialises writers
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return &Repository{db: db, metrics: metrics}, nil
}

// AutoMigrate creates or updates every ledger table. Production PostgreSQL schemas are
// managed by the migrations command; this is used for SQLite.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(allRows()...)
}

// Ping checks connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *Repository) observe(operation string, err error, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.Observe(operation, err, started)
}
