package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/slotforge/internal/logger"
)

// Sentinel errors for the pool
var (
	ErrPoolStopped = errors.New("worker pool stopped")
	ErrJobPanicked = errors.New("job panicked")
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// task is a queued job together with the context it runs under and the
// callback that receives its result.
type task struct {
	ctx  context.Context
	job  Job
	done func(error)
}

// Pool runs jobs on a fixed set of goroutines.
type Pool struct {
	workers  int
	jobQueue chan task
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan task, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers is the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case t := <-p.jobQueue:
			t.done(runJob(t.ctx, t.job))
		case <-p.quit:
			p.drain()
			return
		}
	}
}

// drain fails whatever is still queued so Run callers are released.
func (p *Pool) drain() {
	for {
		select {
		case t := <-p.jobQueue:
			t.done(ErrPoolStopped)
		default:
			return
		}
	}
}

func runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return job.Process(ctx)
}

// Run submits jobs and blocks until every one has finished, returning the
// joined errors in job order. Jobs not yet started when ctx is cancelled
// report ctx.Err().
func (p *Pool) Run(ctx context.Context, jobs ...Job) error {
	var wg sync.WaitGroup
	errs := make([]error, len(jobs))

	for i, job := range jobs {
		wg.Add(1)
		t := task{ctx: ctx, job: job, done: func(err error) {
			errs[i] = err
			wg.Done()
		}}
		// a buffered queue would otherwise accept jobs no worker will take
		select {
		case <-p.quit:
			t.done(ErrPoolStopped)
			continue
		default:
		}
		select {
		case p.jobQueue <- t:
		case <-ctx.Done():
			t.done(ctx.Err())
		case <-p.quit:
			t.done(ErrPoolStopped)
		}
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Stop stops the workers and waits for them to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}

// Shutdown stops the pool, giving in-flight jobs until ctx expires.
func (p *Pool) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
		logger.FromContext(ctx).Info(LogMsgPoolStopped)
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgPoolShutdownTimeout)
		return ctx.Err()
	}
}
