package adapters

import (
	"context"
	"podcast-generator/domain"
	"sync"
	"time"
)

// MemorySessionStore keeps sessions for the lifetime of the process.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domain.Session),
	}
}

func (m *MemorySessionStore) Get(id string) domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[id]; ok {
		return session
	}
	return *domain.NewSession(id)
}

func (m *MemorySessionStore) TryBegin(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		session = *domain.NewSession(id)
	}
	if session.Busy {
		return domain.ErrGenerationInProgress
	}
	session.Busy = true
	session.UpdatedAt = time.Now()
	m.sessions[id] = session
	return nil
}

func (m *MemorySessionStore) Complete(session domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.Busy = false
	m.sessions[session.ID] = session
}

// Evict drops sessions idle for longer than maxIdle and returns how many were removed.
func (m *MemorySessionStore) Evict(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, session := range m.sessions {
		if !session.Busy && session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// RunEviction evicts idle sessions every interval until ctx is done. It returns the number of sessions removed.
func (m *MemorySessionStore) RunEviction(ctx context.Context, maxIdle time.Duration, interval time.Duration) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	total := 0
	for {
		select {
		case <-ctx.Done():
			return total
		case <-ticker.C:
			total += m.Evict(maxIdle)
		}
	}
}
