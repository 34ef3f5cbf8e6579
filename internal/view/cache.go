// Package view holds the per-session listing state: the detail cache state
// machine, the open/closed accordion flags, and the registry that keys both
// by view session. All transitions are plain reducer steps so they can be
// tested without any network timing.
package view

import (
	"sync"

	"github.com/fourline/orderfront/internal/domain/model"
)

// CacheState is the per-product load state of the detail cache.
type CacheState string

const (
	// StateUnloaded means no rows were ever fetched, or the entry was
	// invalidated.
	StateUnloaded CacheState = "unloaded"
	// StateLoading means exactly one fetch is in flight for the product.
	StateLoading CacheState = "loading"
	// StateLoaded means the entry holds an ordered sequence of detail rows.
	StateLoaded CacheState = "loaded"
	// StateErrored means the last fetch failed; the message is retained.
	StateErrored CacheState = "errored"
)

type cacheEntry struct {
	state   CacheState
	rows    []model.Detail
	message string
}

// DetailCache is a lazily loaded, invalidatable cache of detail rows keyed
// by product id. Loaded and Errored entries leave those states only through
// explicit invalidation; a Loading entry never admits a second fetch.
type DetailCache struct {
	mu      sync.Mutex
	entries map[int64]*cacheEntry
}

// NewDetailCache creates an empty cache; every product starts Unloaded.
func NewDetailCache() *DetailCache {
	return &DetailCache{entries: make(map[int64]*cacheEntry)}
}

// State reports the current state for the product.
func (c *DetailCache) State(productID int64) CacheState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[productID]; ok {
		return entry.state
	}
	return StateUnloaded
}

// Rows returns a copy of the loaded rows. The second result is false unless
// the entry is Loaded.
func (c *DetailCache) Rows(productID int64) ([]model.Detail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[productID]
	if !ok || entry.state != StateLoaded {
		return nil, false
	}
	rows := make([]model.Detail, len(entry.rows))
	copy(rows, entry.rows)
	return rows, true
}

// ErrorMessage returns the retained failure message of an Errored entry.
func (c *DetailCache) ErrorMessage(productID int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[productID]
	if !ok || entry.state != StateErrored {
		return "", false
	}
	return entry.message, true
}

// BeginLoad transitions Unloaded to Loading and reports whether the caller
// now owns the fetch. Any other state refuses: a re-entrant toggle while a
// load is in flight must not duplicate requests.
func (c *DetailCache) BeginLoad(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[productID]; ok && entry.state != StateUnloaded {
		return false
	}
	c.entries[productID] = &cacheEntry{state: StateLoading}
	return true
}

// Complete lands a fetch in Loaded. The write is unconditional: when an
// entry was invalidated mid-flight the last resolved response still wins,
// which can surface a stale overwrite. Accepted limitation, no fetch
// cancellation exists.
func (c *DetailCache) Complete(productID int64, rows []model.Detail) {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := make([]model.Detail, len(rows))
	copy(copied, rows)
	c.entries[productID] = &cacheEntry{state: StateLoaded, rows: copied}
}

// Fail lands a fetch in Errored with the message to show inline.
func (c *DetailCache) Fail(productID int64, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[productID] = &cacheEntry{state: StateErrored, message: message}
}

// Invalidate resets one product to Unloaded.
func (c *DetailCache) Invalidate(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, productID)
}

// InvalidateAll wipes every entry. Used after mutations whose display impact
// cannot be narrowed to one product.
func (c *DetailCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int64]*cacheEntry)
}

// RemoveRow drops the row with the given order id from a Loaded entry and
// reports how many rows remain. Entries in any other state report -1 and
// stay untouched.
func (c *DetailCache) RemoveRow(productID, orderID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[productID]
	if !ok || entry.state != StateLoaded {
		return -1
	}
	filtered := entry.rows[:0]
	for _, row := range entry.rows {
		if int64(row.OrderID) != orderID {
			filtered = append(filtered, row)
		}
	}
	entry.rows = filtered
	return len(entry.rows)
}
