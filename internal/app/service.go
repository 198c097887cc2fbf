// Package service provides the activity directory service that backs the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	eventqueue "github.com/devhenode/skills-getting-started-with-github-copilot/internal/adapters/mq/queue"
	workerpool "github.com/devhenode/skills-getting-started-with-github-copilot/internal/adapters/mq/worker"
	repository "github.com/devhenode/skills-getting-started-with-github-copilot/internal/adapters/repository"
	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/metrics"
	"github.com/google/uuid"
)

const (
	defaultWorkerCount = 2
	defaultQueueSize   = 1024
	stopTimeout        = 5 * time.Second
)

// Service owns the activity directory and publishes membership events.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	seed     *activity.Directory
	queue    *eventqueue.InMemoryQueue
	pool     *workerpool.Pool
	notifier workerpool.Notifier

	// Configuration
	workerCount int
	queueSize   int

	// State
	started bool

	logger logger.Logger
}

// New constructs a Service. Unless WithLogger is given the global logger must
// already be initialised.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: defaultWorkerCount,
		queueSize:   defaultQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	if s.seed == nil {
		s.seed = activity.NewDirectory()
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithSeed(s.seed))
	}
	if s.notifier == nil {
		s.notifier = workerpool.NewLogNotifier(s.logger.Named("notifier"))
	}
	return s
}

// Start launches the notification workers. Requests are served whether or not
// the service is started; events are only published while it is.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting activity service...")

	q := eventqueue.NewInMemoryQueue(eventqueue.WithCapacity(s.queueSize))
	pool := workerpool.NewPool(s.workerCount, q, s.notifier,
		workerpool.WithLogger(s.logger.Named("worker-pool")),
	)
	if err := pool.Start(ctx); err != nil {
		_ = q.Close()
		return fmt.Errorf("start worker pool: %w", err)
	}

	s.queue = q
	s.pool = pool
	s.started = true

	acts, people := s.store.Count(ctx)
	s.logger.Info(ctx, "activity service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("activities", acts),
		logger.Int("participants", people),
	)
	return nil
}

// Shutdown stops accepting events and waits for queued ones to be delivered.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.logger.Info(ctx, "stopping activity service...")

	err := s.pool.Shutdown(ctx)
	s.queue = nil
	s.pool = nil
	s.started = false

	if err != nil {
		s.logger.Warn(ctx, "activity service stopped with pending events", logger.Error(err))
		return err
	}
	s.logger.Info(ctx, "activity service stopped")
	return nil
}

// Stop is Shutdown with a short default timeout.
func (s *Service) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	_ = s.Shutdown(ctx)
}

// ListActivities returns a snapshot of every activity in seed order.
func (s *Service) ListActivities(ctx context.Context) (*activity.Directory, error) {
	dir, err := s.store.List(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "list_failed")
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return dir, nil
}

// Signup adds email to the named activity and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	if err := s.store.Signup(ctx, name, email); err != nil {
		s.reject(ctx, "signup", name, email, err)
		return "", err
	}

	metrics.RecordSignup()
	s.logger.Info(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	s.publish(ctx, activity.EventSignedUp, name, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	if err := s.store.Unregister(ctx, name, email); err != nil {
		s.reject(ctx, "unregister", name, email, err)
		return "", err
	}

	metrics.RecordRemoval()
	s.logger.Info(ctx, "participant removed",
		logger.String("activity", name),
		logger.String("email", email),
	)
	s.publish(ctx, activity.EventRemoved, name, email)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// Reset restores the directory to the seed the service was built with.
func (s *Service) Reset(ctx context.Context) {
	s.store.Reset(ctx, s.seed)
	s.logger.Info(ctx, "activity directory reset")
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acts, people := s.store.Count(ctx)
	stats := map[string]any{
		"started":      s.started,
		"workerCount":  s.workerCount,
		"queueSize":    s.queueSize,
		"queueLength":  0,
		"activities":   acts,
		"participants": people,
	}
	if s.started {
		stats["queueLength"] = s.queue.Len(ctx)
	}
	return stats
}

func (s *Service) reject(ctx context.Context, op, name, email string, err error) {
	reason := rejectionReason(err)
	metrics.RecordRejection(op, reason)
	if reason == "internal" {
		metrics.RecordErrorByComponent("service", op+"_failed")
		s.logger.Error(ctx, op+" failed",
			logger.String("activity", name),
			logger.Error(err),
		)
		return
	}
	s.logger.Debug(ctx, op+" rejected",
		logger.String("activity", name),
		logger.String("email", email),
		logger.String("reason", reason),
	)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, activity.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, activity.ErrParticipantNotFound):
		return "participant_not_found"
	default:
		return "internal"
	}
}

// publish hands a committed change to the workers. It never blocks and never
// fails the caller; a dropped event is logged and counted by the queue.
func (s *Service) publish(ctx context.Context, kind activity.EventKind, name, email string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return
	}

	e := activity.Event{
		ID:       uuid.NewString(),
		Kind:     kind,
		Activity: name,
		Email:    email,
		At:       time.Now().UTC(),
	}
	// The request context may already be done once the response is decided.
	if err := s.queue.Enqueue(context.WithoutCancel(ctx), e); err != nil {
		s.logger.Warn(ctx, "membership event dropped",
			logger.String("event_id", e.ID),
			logger.String("kind", string(kind)),
			logger.Error(err),
		)
	}
}
