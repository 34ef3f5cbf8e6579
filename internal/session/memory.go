package session

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
)

type memoryEntry struct {
	email     string
	refresh   bool
	expiresAt time.Time
}

// MemoryStore is the default single-process Store with TTL eviction.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates an in-memory store whose entries expire after ttl
// of inactivity.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) live(id string) *memoryEntry {
	entry, ok := s.entries[id]
	if !ok {
		return nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil
	}
	return entry
}

// SetEmail binds the email and resets the entry lifetime.
func (s *MemoryStore) SetEmail(_ context.Context, id, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(id)
	if entry == nil {
		entry = &memoryEntry{}
		s.entries[id] = entry
	}
	entry.email = email
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

// Email returns the bound email, extending the entry lifetime.
func (s *MemoryStore) Email(_ context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(id)
	if entry == nil || entry.email == "" {
		return "", domainErrors.ErrNoSession
	}
	entry.expiresAt = s.now().Add(s.ttl)
	return entry.email, nil
}

// MarkRefresh sets the one-shot refresh sentinel.
func (s *MemoryStore) MarkRefresh(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(id)
	if entry == nil {
		entry = &memoryEntry{expiresAt: s.now().Add(s.ttl)}
		s.entries[id] = entry
	}
	entry.refresh = true
	return nil
}

// ConsumeRefresh reports and clears the sentinel in one step.
func (s *MemoryStore) ConsumeRefresh(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(id)
	if entry == nil {
		return false, nil
	}
	pending := entry.refresh
	entry.refresh = false
	return pending, nil
}

// Clear forgets the session.
func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Sweep drops expired entries and reports how many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
