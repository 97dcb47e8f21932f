package gatekeeper

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrIntakeClosed is returned by Intake.Submit once the workers have stopped.
var ErrIntakeClosed = errors.New("share intake closed")

type intakeJob struct {
	ctx   context.Context
	share ShareSubmission
	reply chan Result
}

// Intake runs a fixed set of workers in front of a Submitter.
type Intake struct {
	logger    *zap.Logger
	submitter Submitter
	metrics   IntakeMetrics
	workers   int
	jobs      chan intakeJob
	done      chan struct{}
	closeOnce sync.Once
}

// NewIntake builds an Intake with workers goroutines and a queue of queueSize shares.
func NewIntake(submitter Submitter, workers, queueSize int, metrics IntakeMetrics, logger *zap.Logger) (*Intake, error) {
	if submitter == nil {
		return nil, errors.New("intake submitter is required")
	}
	if workers <= 0 {
		return nil, errors.New("intake workers must be positive")
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Intake{
		logger:    logger.Named("intake"),
		submitter: submitter,
		metrics:   metrics,
		workers:   workers,
		jobs:      make(chan intakeJob, queueSize),
		done:      make(chan struct{}),
	}, nil
}

// Run processes queued shares until ctx is done.
func (i *Intake) Run(ctx context.Context) error {
	defer i.closeOnce.Do(func() { close(i.done) })

	g, gctx := errgroup.WithContext(ctx)
	for n := 0; n < i.workers; n++ {
		g.Go(func() error {
			i.work(gctx)
			return nil
		})
	}
	i.logger.Info("share intake started", zap.Int("workers", i.workers), zap.Int("queue", cap(i.jobs)))
	return g.Wait()
}

func (i *Intake) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-i.jobs:
			i.report()
			if job.ctx.Err() != nil {
				continue
			}
			job.reply <- i.submitter.Submit(job.ctx, job.share)
		}
	}
}

// Submit queues a share and waits for its result. It blocks on queue capacity and on ctx.
func (i *Intake) Submit(ctx context.Context, share ShareSubmission) (Result, error) {
	job := intakeJob{ctx: ctx, share: share, reply: make(chan Result, 1)}

	select {
	case <-i.done:
		return Result{}, ErrIntakeClosed
	default:
	}

	select {
	case i.jobs <- job:
		i.report()
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-i.done:
		return Result{}, ErrIntakeClosed
	}

	select {
	case res := <-job.reply:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-i.done:
		return Result{}, ErrIntakeClosed
	}
}

func (i *Intake) report() {
	if i.metrics != nil {
		i.metrics.SetIntakeQueued(len(i.jobs))
	}
}
