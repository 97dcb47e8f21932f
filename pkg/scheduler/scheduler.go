// Package scheduler runs fixed-interval background tasks, one goroutine per task.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/tokenpool-backend/internal/clock"
	"go.uber.org/zap"
)

type (
	// Metrics records task iteration outcomes.
	Metrics interface {
		ObserveTask(task string, err error, started time.Time)
	}
)

// Task is a unit of periodic work. Run is invoked again Interval after the previous
// iteration returned.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler owns a set of tasks. Cancelling the context passed to Run stops rescheduling;
// iterations already in flight run to completion.
type Scheduler struct {
	logger  *zap.Logger
	metrics Metrics
	sleep   func(context.Context, time.Duration) error

	mu    sync.Mutex
	tasks []Task
}

// New constructs a Scheduler. metrics may be nil.
func New(logger *zap.Logger, metrics Metrics) *Scheduler {
	return &Scheduler{
		logger:  logger,
		metrics: metrics,
		sleep:   clock.Sleep,
	}
}

// Add registers a task. It must be called before Run.
func (s *Scheduler) Add(task Task) error {
	if task.Name == "" {
		return errors.New("task name is required")
	}
	if task.Interval <= 0 {
		return fmt.Errorf("task %s: interval must be positive", task.Name)
	}
	if task.Run == nil {
		return fmt.Errorf("task %s: run func is required", task.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.Name == task.Name {
			return fmt.Errorf("task %s already registered", task.Name)
		}
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Run blocks until ctx is done and every task has returned from its current iteration.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	tasks := make([]Task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()

	if len(tasks) == 0 {
		return errors.New("no tasks registered")
	}

	wg := sync.WaitGroup{}
	for _, task := range tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			s.loop(ctx, task)
		}(task)
	}
	wg.Wait()

	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	logger := s.logger.With(zap.String("task", task.Name))
	logger.Info("task started", zap.Duration("interval", task.Interval))
	defer logger.Info("task stopped")

	for {
		if ctx.Err() != nil {
			return
		}
		// in-flight work is not interrupted by shutdown
		s.runOnce(context.WithoutCancel(ctx), task, logger)

		if err := s.sleep(ctx, task.Interval); err != nil {
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, task Task, logger *zap.Logger) {
	started := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panic: %v", r)
			logger.Error("task panicked", zap.Any("panic", r))
		}
		if s.metrics != nil {
			s.metrics.ObserveTask(task.Name, err, started)
		}
	}()

	err = task.Run(ctx)
	if err != nil {
		logger.Warn("task iteration failed", zap.Error(err))
	}
}
