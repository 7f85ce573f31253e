// internal/platform/workerpool/batch_pool.go
package workerpool

import (
	"context"
	"sync"
	"time"

	"mirage/internal/platform/errors"
	"mirage/internal/platform/logx"
	"mirage/internal/platform/randx"
)

// Task is one abstract work item executed by the pool.
type Task interface {
	// Name identifies the task (query string, unit label)
	Name() string

	// Execute runs the task
	Execute(ctx context.Context) error
}

// TaskResult is the outcome of one task.
type TaskResult struct {
	Task     Task
	Err      error
	Duration time.Duration
}

// BatchPool executes tasks in fixed-size batches. Tasks inside a batch run
// concurrently, bounded by the worker count; batches run sequentially with
// a small randomized delay between them. A failing task never aborts its
// batch or the run: the failure is recorded in its TaskResult and execution
// continues. Cancellation is honored between batches only; tasks of the
// current batch always drain.
type BatchPool struct {
	batchSize int
	workers   int
	delayMin  time.Duration
	delayMax  time.Duration
	rng       randx.Rand
	logger    logx.Logger
}

// Options configures a BatchPool.
type Options struct {
	// BatchSize number of tasks per batch (default 25)
	BatchSize int

	// Workers maximum concurrent tasks within a batch (default BatchSize)
	Workers int

	// DelayMin/DelayMax bound the randomized inter-batch delay
	DelayMin time.Duration
	DelayMax time.Duration

	// Rand source for delay jitter (seeded for reproducible runs)
	Rand randx.Rand

	Logger logx.Logger
}

// New creates a batch pool.
func New(opts Options) *BatchPool {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 25
	}
	if opts.Workers <= 0 {
		opts.Workers = opts.BatchSize
	}
	if opts.DelayMax < opts.DelayMin {
		opts.DelayMax = opts.DelayMin
	}
	if opts.Rand == nil {
		opts.Rand = randx.NewUnseeded()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &BatchPool{
		batchSize: opts.BatchSize,
		workers:   opts.Workers,
		delayMin:  opts.DelayMin,
		delayMax:  opts.DelayMax,
		rng:       opts.Rand,
		logger:    opts.Logger.With("component", "batch-pool"),
	}
}

// Run executes all tasks. onDone, when non-nil, is invoked once per task
// completion; invocations are serialized. Returns the collected results and
// a non-nil error only when the run was canceled between batches, in which
// case the results of completed batches are still returned.
func (p *BatchPool) Run(ctx context.Context, tasks []Task, onDone func(TaskResult)) ([]TaskResult, error) {
	if len(tasks) == 0 {
		return []TaskResult{}, nil
	}

	batches := p.partition(tasks)
	p.logger.Debug("executing tasks",
		"total", len(tasks),
		"batches", len(batches),
		"batch_size", p.batchSize,
		"workers", p.workers,
	)

	results := make([]TaskResult, 0, len(tasks))

	for i, batch := range batches {
		if i > 0 {
			// Gate progression between batches: cancellation check first,
			// then the randomized inter-batch delay.
			if err := ctx.Err(); err != nil {
				p.logger.Warn("run canceled between batches", "completed_batches", i)
				return results, errors.Wrap(errors.ErrCanceled, "batch pool")
			}
			if !p.sleep(ctx, p.interBatchDelay()) {
				return results, errors.Wrap(errors.ErrCanceled, "batch pool")
			}
		}

		results = append(results, p.runBatch(ctx, i, batch, onDone)...)
	}

	return results, nil
}

// runBatch executes one batch concurrently and drains it completely.
func (p *BatchPool) runBatch(ctx context.Context, id int, batch []Task, onDone func(TaskResult)) []TaskResult {
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	results := make([]TaskResult, 0, len(batch))

	for _, task := range batch {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			err := t.Execute(ctx)
			res := TaskResult{
				Task:     t,
				Err:      err,
				Duration: time.Since(start),
			}

			mu.Lock()
			results = append(results, res)
			if onDone != nil {
				onDone(res)
			}
			mu.Unlock()

			if err != nil {
				p.logger.Debug("task failed",
					"batch", id,
					"task", t.Name(),
					"error", err.Error(),
				)
			}
		}(task)
	}

	wg.Wait()
	return results
}

// partition splits tasks into batches preserving input order.
func (p *BatchPool) partition(tasks []Task) [][]Task {
	batches := make([][]Task, 0, (len(tasks)+p.batchSize-1)/p.batchSize)
	for start := 0; start < len(tasks); start += p.batchSize {
		end := start + p.batchSize
		if end > len(tasks) {
			end = len(tasks)
		}
		batches = append(batches, tasks[start:end])
	}
	return batches
}

// interBatchDelay picks a randomized delay in [delayMin, delayMax].
func (p *BatchPool) interBatchDelay() time.Duration {
	if p.delayMax <= p.delayMin {
		return p.delayMin
	}
	jitter := time.Duration(p.rng.Intn(int(p.delayMax-p.delayMin) + 1))
	return p.delayMin + jitter
}

// sleep waits for d or until ctx is done. Returns false on cancellation.
func (p *BatchPool) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
