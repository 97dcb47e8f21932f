// Package main runs the share intake: gRPC ShareService, the gatekeeper and its worker pool.
package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/tokenpool-backend/internal/logging"
	"github.com/goodnatureofminers/tokenpool-backend/internal/metrics"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/notify"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/pow"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/clickhouse"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/archive"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/epoch"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/gatekeeper"
	"github.com/goodnatureofminers/tokenpool-backend/internal/transport"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/batcher"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/scheduler"
)

type options struct {
	Logging   logging.Options  `group:"logging"`
	Store     store.Config     `group:"store"`
	Transport transport.Config `group:"transport"`

	PolicyFile    string        `long:"policy-file" env:"POLICY_FILE" description:"YAML pool policy, reloaded on change"`
	PoolAddress   string        `long:"pool-address" env:"POOL_ADDRESS" description:"pool account that solutions mint to" required:"true"`
	NotifyDSN     string        `long:"notify-dsn" env:"NOTIFY_DSN" description:"PostgreSQL DSN for challenge change notifications"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"analytics archive DSN, archive disabled when empty"`
	MetricsAddr   string        `long:"metrics-addr" env:"METRICS_ADDR" description:"prometheus listen address" default:":9100"`
	Workers       int           `long:"workers" env:"INTAKE_WORKERS" description:"concurrent share validations" default:"16"`
	QueueSize     int           `long:"queue-size" env:"INTAKE_QUEUE_SIZE" description:"shares waiting for a worker" default:"1024"`
	DigestTTL     time.Duration `long:"digest-ttl" env:"DIGEST_TTL" description:"how long accepted digests stay in memory" default:"30m"`
	EpochRefresh  time.Duration `long:"epoch-refresh" env:"EPOCH_REFRESH" description:"fallback epoch reload interval" default:"30s"`
	ArchiveFlush  int           `long:"archive-flush-size" env:"ARCHIVE_FLUSH_SIZE" description:"archive rows per insert" default:"1000"`
	ArchivePeriod time.Duration `long:"archive-flush-interval" env:"ARCHIVE_FLUSH_INTERVAL" description:"archive flush period" default:"5s"`
	ArchiveRPS    int           `long:"archive-rps" env:"ARCHIVE_RPS" description:"archive inserts per second" default:"5"`
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

	if err := run(ctx, opts, logger); err != nil {
		logger.Fatal("share intake stopped", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	policy, err := config.Load(opts.PolicyFile)
	if err != nil {
		return err
	}
	holder := config.NewHolder(policy)
	if err := config.Watch(ctx, opts.PolicyFile, holder, logger.Named("policy")); err != nil {
		return err
	}

	repo, err := store.Open(opts.Store, metrics.NewStoreRepository(opts.Store.Driver))
	if err != nil {
		return err
	}
	defer func() {
		_ = repo.Close()
	}()
	if err := repo.Ping(ctx); err != nil {
		return err
	}
	if opts.Store.Driver == store.DriverSQLite {
		if err := repo.AutoMigrate(ctx); err != nil {
			return err
		}
	}

	notifier, err := notify.Open(opts.NotifyDSN, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = notifier.Close()
	}()

	view := epoch.NewView(repo, logger)
	if err := view.Refresh(ctx); err != nil {
		return err
	}

	digests, err := gatekeeper.NewDigestCache(ctx, opts.DigestTTL)
	if err != nil {
		return err
	}
	defer func() {
		_ = digests.Close()
	}()

	var archiver gatekeeper.Archiver
	if opts.ClickhouseDSN != "" {
		archiveRepo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return err
		}
		defer func() {
			_ = archiveRepo.Close()
		}()
		writer, err := archive.NewWriter(archiveRepo, metrics.NewArchive(), batcher.Config{
			FlushSize:     opts.ArchiveFlush,
			FlushInterval: opts.ArchivePeriod,
			RPS:           opts.ArchiveRPS,
		}, logger)
		if err != nil {
			return err
		}
		writer.Start(ctx)
		defer writer.Stop()
		archiver = writer
	}

	gatekeeperMetrics := metrics.NewGatekeeper()
	gk, err := gatekeeper.New(
		gatekeeper.Config{PoolAddress: opts.PoolAddress},
		view,
		holder,
		pow.NewKeccak(),
		repo,
		digests,
		archiver,
		gatekeeperMetrics,
		logger,
	)
	if err != nil {
		return err
	}
	intake, err := gatekeeper.NewIntake(gk, opts.Workers, opts.QueueSize, gatekeeperMetrics, logger)
	if err != nil {
		return err
	}

	sched := scheduler.New(logger.Named("scheduler"), metrics.NewScheduler())
	if err := sched.Add(scheduler.Task{Name: "epoch_refresh", Interval: opts.EpochRefresh, Run: view.Refresh}); err != nil {
		return err
	}

	server, healthServer := transport.NewServer(transport.NewShareHandler(intake, gk, logger), logger)
	listener, err := net.Listen("tcp", opts.Transport.Addr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ignoreCanceled(intake.Run(gctx)) })
	g.Go(func() error { return ignoreCanceled(sched.Run(gctx)) })
	g.Go(func() error { return ignoreCanceled(view.Watch(gctx, notifier)) })
	g.Go(func() error { return transport.Serve(gctx, server, healthServer, listener, logger) })
	g.Go(func() error { return metrics.Serve(gctx, opts.MetricsAddr, logger) })
	return g.Wait()
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
