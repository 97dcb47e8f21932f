package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/tokenpool-backend/internal/logging"
	"github.com/goodnatureofminers/tokenpool-backend/internal/migrations"
)

type options struct {
	Logging       logging.Options `group:"logging"`
	PostgresDSN   string          `long:"postgres-dsn" env:"MIGRATIONS_POSTGRES_DSN" default:"postgres://localhost:5432/tokenpool?sslmode=disable" description:"PostgreSQL URL of the pool ledger"`
	MigrationsDir string          `long:"migrations-dir" env:"MIGRATIONS_DIR" default:"migrations/postgres" description:"path to the ledger migrations"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, err := logging.New(opts.Logging)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.Up(ctx, opts.MigrationsDir, opts.PostgresDSN, logger.Named("postgres_migrations")); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}
