package view

import (
	"sync"
	"time"

	"github.com/fourline/orderfront/internal/domain/model"
)

type registryEntry struct {
	listing   *ListingView
	cart      *model.Cart
	lastTouch time.Time
}

// Registry keys in-process view state by session id. It is the Go analog of
// per-page component state: created on first use, dropped when the session
// goes idle past its TTL.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewRegistry creates a registry evicting entries idle longer than ttl.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		entries: make(map[string]*registryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *Registry) entry(sessionID string) *registryEntry {
	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &registryEntry{
			listing: NewListingView(),
			cart:    model.NewCart(),
		}
		r.entries[sessionID] = entry
	}
	entry.lastTouch = r.now()
	return entry
}

// Listing returns the session's listing view, creating it on first use.
func (r *Registry) Listing(sessionID string) *ListingView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.entry(sessionID).listing
}

// WithCart runs fn while holding the registry lock. The cart is reachable
// only through here so every read and mutation from concurrent requests of
// one session is serialized; fn must not retain the pointer.
func (r *Registry) WithCart(sessionID string, fn func(cart *model.Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn(r.entry(sessionID).cart)
}

// Drop forgets all state of one session.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
}

// Sweep evicts idle entries and reports how many were removed.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if now.Sub(entry.lastTouch) > r.ttl {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}
