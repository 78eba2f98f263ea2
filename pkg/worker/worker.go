package worker

import (
	"context"
	"sync"

	"github.com/VladPetriv/currency_converter/pkg/logger"
)

type job[T any] struct {
	ID   string
	Data T
}

// Func is a function that handles a worker job.
type Func[T any] func(ctx context.Context, id string, data T) error

// Pool is a worker pool.
// Only one job with the same id can be queued or running at a time.
type Pool[T any] struct {
	workersCount int
	handlerFunc  Func[T]
	logger       *logger.Logger
	jobs         chan job[T]
	wg           *sync.WaitGroup

	mu      *sync.Mutex
	dedup   map[string]struct{}
	stopped bool
}

// PoolOptions represents options for creating a new worker pool.
type PoolOptions[T any] struct {
	WorkersCount int
	// QueueSize is the number of jobs which can wait for a free worker. At least one.
	QueueSize   int
	HandlerFunc Func[T]
	Logger      *logger.Logger
}

// NewPool creates a new worker pool.
func NewPool[T any](opts PoolOptions[T]) *Pool[T] {
	workersCount := opts.WorkersCount
	if workersCount <= 0 {
		workersCount = 1
	}
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}

	return &Pool[T]{
		workersCount: workersCount,
		handlerFunc:  opts.HandlerFunc,
		logger:       opts.Logger,
		jobs:         make(chan job[T], queueSize),
		wg:           &sync.WaitGroup{},
		dedup:        make(map[string]struct{}),
		mu:           &sync.Mutex{},
	}
}

// Start starts the number of workers that were passed in constructor.
func (p *Pool[T]) Start(ctx context.Context) {
	for i := 0; i < p.workersCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	logger := p.logger.With().Str("name", "worker.Pool").Logger()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Err(ctx.Err()).Msg("worker stopping due to context cancellation")
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}

			err := p.handlerFunc(ctx, job.ID, job.Data)
			if err != nil {
				logger.Error().Err(err).Str("jobID", job.ID).Msg("handle job")
			}

			p.release(job.ID)
		}
	}
}

func (p *Pool[T]) release(id string) {
	p.mu.Lock()
	delete(p.dedup, id)
	p.mu.Unlock()
}

// Stop stops accepting new jobs and waits until queued and running jobs are finished.
func (p *Pool[T]) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}

// AddJob adds a new job to the worker pool.
// Returns false when a job with the same id is still pending, the queue is full or the pool is stopped.
func (p *Pool[T]) AddJob(id string, data T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}

	_, ok := p.dedup[id]
	if ok {
		return false
	}

	select {
	case p.jobs <- job[T]{ID: id, Data: data}:
		p.dedup[id] = struct{}{}
		return true
	default:
		return false
	}
}

// HasCapacity checks if the queue has room for one more job.
// Workers only drain the queue, so a true result holds for the next AddJob made by the same caller.
func (p *Pool[T]) HasCapacity() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return !p.stopped && len(p.jobs) < cap(p.jobs)
}

// IsPending checks if a job with the given id is queued or running.
func (p *Pool[T]) IsPending(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.dedup[id]
	return ok
}
