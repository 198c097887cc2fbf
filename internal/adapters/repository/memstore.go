package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devhenode/skills-getting-started-with-github-copilot/internal/domain/activity"
	"github.com/devhenode/skills-getting-started-with-github-copilot/pkg/metrics"
)

// MemoryStore keeps the directory in process memory. A single lock makes each
// check-then-mutate sequence atomic with respect to other requests.
type MemoryStore struct {
	mu  sync.RWMutex
	dir *activity.Directory
}

// NewMemoryStore creates a store, empty unless WithSeed is given.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{dir: activity.NewDirectory()}
	for _, opt := range opts {
		opt(s)
	}
	s.publishCounts()
	return s
}

// List returns a deep copy of the directory.
func (s *MemoryStore) List(_ context.Context) (*activity.Directory, error) {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.Clone(), nil
}

// Signup appends email to the named activity.
func (s *MemoryStore) Signup(_ context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dir.Signup(name, email); err != nil {
		return fmt.Errorf("signup %q: %w", name, err)
	}
	s.publishCountsLocked()
	return nil
}

// Unregister removes email from the named activity.
func (s *MemoryStore) Unregister(_ context.Context, name, email string) error {
	start := time.Now()
	defer func() {
		metrics.RecordRepositoryUpdateLatency(float64(time.Since(start).Microseconds()) / 1000)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.dir.Unregister(name, email); err != nil {
		return fmt.Errorf("unregister %q: %w", name, err)
	}
	s.publishCountsLocked()
	return nil
}

// Count returns the number of activities and participants.
func (s *MemoryStore) Count(_ context.Context) (activities, participants int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir.Len(), s.dir.ParticipantCount()
}

// Reset replaces the directory with a copy of seed. A nil seed empties the store.
func (s *MemoryStore) Reset(_ context.Context, seed *activity.Directory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed == nil {
		s.dir = activity.NewDirectory()
	} else {
		s.dir = seed.Clone()
	}
	s.publishCountsLocked()
}

func (s *MemoryStore) publishCounts() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.publishCountsLocked()
}

// publishCountsLocked expects s.mu to be held.
func (s *MemoryStore) publishCountsLocked() {
	metrics.UpdateActivitiesTotal(s.dir.Len())
	metrics.UpdateParticipantsTotal(s.dir.ParticipantCount())
}
