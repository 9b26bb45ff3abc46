package sessions

import (
	"context"
	"errors"
	"fmt"
	"location-registry-service/internal/domain"
	"location-registry-service/internal/platform/obs"
	"location-registry-service/internal/ports"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	registry *domain.Registry
	lastSeen time.Time
}

// In-memory implementation of the SessionStore port.
// A session lives until it is deleted or left idle longer than the TTL;
// its locations go with it.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(ctx context.Context) (string, domain.State, error) {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{registry: domain.NewRegistry(), lastSeen: s.now()}
	return id, domain.State{}, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return domain.State{}, err
	}
	return e.registry.State(), nil
}

// Dispatch applies all actions to the session's registry while holding the
// lock, so concurrent requests never interleave inside one dispatch.
func (s *MemoryStore) Dispatch(ctx context.Context, id string, actions ...domain.Action) (_ domain.Outcome, err error) {
	defer obs.Time(ctx, "sessions.Dispatch")(&err)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(id)
	if err != nil {
		return domain.Outcome{}, err
	}
	return e.registry.Dispatch(actions...), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("delete session %q: %w", id, ports.ErrSessionNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("session sweeper: interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("op=sessions.Sweep removed=%d", n)
			}
		}
	}
}

// lookup must be called with s.mu held. It refreshes lastSeen on hit.
func (s *MemoryStore) lookup(id string) (*entry, error) {
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("lookup session %q: %w", id, ports.ErrSessionNotFound)
	}
	if s.expired(e) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("lookup session %q: expired: %w", id, ports.ErrSessionNotFound)
	}
	e.lastSeen = s.now()
	return e, nil
}

func (s *MemoryStore) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.lastSeen) > s.ttl
}
