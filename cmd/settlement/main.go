// Package main runs the settlement process: epoch tracking, PPLNS settlement, payment
// batching and the transaction broadcast loops.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/tokenpool-backend/internal/logging"
	"github.com/goodnatureofminers/tokenpool-backend/internal/metrics"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/chain/ethereum"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/config"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/notify"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/clickhouse"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/repository/store"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/archive"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/coordinator"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/epoch"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/payment"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/settlement"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/batcher"
	"github.com/goodnatureofminers/tokenpool-backend/pkg/scheduler"
)

type intervals struct {
	EpochPoll    time.Duration `long:"epoch-poll-interval" env:"EPOCH_POLL_INTERVAL" default:"5s" description:"chain epoch poll period"`
	Settle       time.Duration `long:"settle-interval" env:"SETTLE_INTERVAL" default:"10s" description:"mint settlement period"`
	Payments     time.Duration `long:"payments-interval" env:"PAYMENTS_INTERVAL" default:"60s" description:"payment accrual and batching period"`
	Broadcast    time.Duration `long:"broadcast-interval" env:"BROADCAST_INTERVAL" default:"5s" description:"transaction broadcast period"`
	Staleness    time.Duration `long:"staleness-interval" env:"STALENESS_INTERVAL" default:"15s" description:"pending staleness check period"`
	Requeue      time.Duration `long:"requeue-interval" env:"REQUEUE_INTERVAL" default:"5s" description:"skipped payment requeue period"`
	Mined        time.Duration `long:"mined-interval" env:"MINED_INTERVAL" default:"5s" description:"receipt check period"`
	StuckRecover time.Duration `long:"stuck-interval" env:"STUCK_INTERVAL" default:"150s" description:"skipped transaction recovery period"`
}

type options struct {
	Logging   logging.Options `group:"logging"`
	Store     store.Config    `group:"store"`
	Ethereum  ethereum.Config `group:"ethereum"`
	Intervals intervals       `group:"intervals"`

	PolicyFile    string        `long:"policy-file" env:"POLICY_FILE" description:"YAML pool policy, reloaded on change"`
	NotifyDSN     string        `long:"notify-dsn" env:"NOTIFY_DSN" description:"PostgreSQL DSN for challenge change notifications"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"analytics archive DSN, archive disabled when empty"`
	MetricsAddr   string        `long:"metrics-addr" env:"METRICS_ADDR" description:"prometheus listen address" default:":9101"`
	ArchiveFlush  int           `long:"archive-flush-size" env:"ARCHIVE_FLUSH_SIZE" description:"archive rows per insert" default:"500"`
	ArchivePeriod time.Duration `long:"archive-flush-interval" env:"ARCHIVE_FLUSH_INTERVAL" description:"archive flush period" default:"10s"`
	ArchiveRPS    int           `long:"archive-rps" env:"ARCHIVE_RPS" description:"archive inserts per second" default:"2"`
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
		logger.Fatal("settlement stopped", zap.Error(err))
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

	client, err := ethereum.Dial(ctx, opts.Ethereum, metrics.NewChainClient(opts.Ethereum.Network))
	if err != nil {
		return err
	}
	logger.Info("pool account", zap.String("address", client.Address()))

	var archiver settlement.Archiver
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

	tracker, err := epoch.NewTracker(client, repo, notifier, metrics.NewEpochTracker(), logger)
	if err != nil {
		return err
	}
	if err := tracker.Load(ctx); err != nil {
		return err
	}
	engine, err := settlement.NewEngine(repo, client, holder, archiver, metrics.NewSettlement(), logger)
	if err != nil {
		return err
	}
	builder, err := payment.NewBuilder(repo, client, holder, metrics.NewPaymentBuilder(), logger)
	if err != nil {
		return err
	}
	coord, err := coordinator.New(repo, client, tracker, holder, metrics.NewCoordinator(), logger)
	if err != nil {
		return err
	}

	iv := opts.Intervals
	sched := scheduler.New(logger.Named("scheduler"), metrics.NewScheduler())
	for _, task := range []scheduler.Task{
		{Name: "epoch_poll", Interval: iv.EpochPoll, Run: tracker.Poll},
		{Name: "settle_mints", Interval: iv.Settle, Run: engine.Settle},
		{Name: "build_payments", Interval: iv.Payments, Run: builder.Run},
		{Name: "broadcast_solutions", Interval: iv.Broadcast, Run: coord.BroadcastSolutions},
		{Name: "broadcast_payments", Interval: iv.Broadcast, Run: coord.BroadcastPayments},
		{Name: "mark_stale", Interval: iv.Staleness, Run: coord.MarkStale},
		{Name: "requeue_payments", Interval: iv.Requeue, Run: coord.Requeue},
		{Name: "mined_solutions", Interval: iv.Mined, Run: coord.CheckMinedSolutions},
		{Name: "mined_payments", Interval: iv.Mined, Run: coord.CheckMinedPayments},
		{Name: "recover_stuck", Interval: iv.StuckRecover, Run: coord.RecoverStuck},
	} {
		if err := sched.Add(task); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sched.Run(gctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error { return metrics.Serve(gctx, opts.MetricsAddr, logger) })
	return g.Wait()
}
