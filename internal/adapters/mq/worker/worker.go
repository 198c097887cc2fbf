package worker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/metrics"
)

const defaultWorkerCount = 2

// Queue defines how workers receive events.
type Queue interface {
	Dequeue(ctx context.Context) <-chan activity.Event
	Close() error
}

// Pool runs a fixed number of workers, each draining the queue into the notifier.
type Pool struct {
	name     string
	size     int
	queue    Queue
	notifier Notifier
	logger   logger.Logger

	mu      sync.Mutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewPool creates a pool of workerCount workers. Counts below one use the default.
func NewPool(workerCount int, q Queue, n Notifier, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}
	p := &Pool{
		name:     "notifier",
		size:     workerCount,
		queue:    q,
		notifier: n,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Named("worker-pool")
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Start launches the workers. They run until the queue is closed and drained
// or ctx is cancelled.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return ErrStopped
	}
	if p.started {
		return nil
	}
	p.started = true

	for i := 0; i < p.size; i++ {
		name := p.name + "-" + strconv.Itoa(i)
		p.wg.Add(1)
		go p.run(ctx, p.logger.Named(name))
	}
	metrics.UpdateWorkerCount(p.size)
	return nil
}

func (p *Pool) run(ctx context.Context, log logger.Logger) {
	defer p.wg.Done()
	for e := range p.queue.Dequeue(ctx) {
		p.process(ctx, log, e)
	}
}

func (p *Pool) process(ctx context.Context, log logger.Logger, e activity.Event) {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	if err := p.notifier.Notify(ctx, e); err != nil {
		metrics.RecordNotificationError()
		metrics.RecordErrorByComponent("worker", "notify_error")
		log.Error(ctx, "notification failed",
			logger.String("event_id", e.ID),
			logger.Error(err),
		)
		return
	}
	metrics.RecordNotification()
}

// Shutdown closes the queue and waits for the workers to drain it.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	if err := p.queue.Close(); err != nil {
		p.logger.Error(ctx, "error closing queue", logger.Error(err))
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		metrics.UpdateWorkerCount(0)
		return nil
	case <-ctx.Done():
		p.logger.Warn(ctx, "worker shutdown timed out")
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
	}
}
