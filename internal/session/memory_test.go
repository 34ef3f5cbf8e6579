package session

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/fourline/orderfront/internal/domain/errors"
)

func newClockedStore(ttl time.Duration) (*MemoryStore, *time.Time) {
	store := NewMemoryStore(ttl)
	current := time.Unix(0, 0)
	store.now = func() time.Time { return current }
	return store, &current
}

func TestMemoryStoreEmailRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Minute)

	if _, err := store.Email(ctx, "s1"); !errors.Is(err, domainErrors.ErrNoSession) {
		t.Fatalf("expected ErrNoSession for unknown id, got %v", err)
	}

	if err := store.SetEmail(ctx, "s1", "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	email, err := store.Email(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "a@b.com" {
		t.Fatalf("expected a@b.com, got %q", email)
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Email(ctx, "s1"); !errors.Is(err, domainErrors.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestMemoryStoreRefreshFlagIsOneShot(t *testing.T) {
	ctx := context.Background()
	store, _ := newClockedStore(time.Minute)

	pending, err := store.ConsumeRefresh(ctx, "s1")
	if err != nil || pending {
		t.Fatalf("expected no pending refresh for fresh session, got %v %v", pending, err)
	}

	if err := store.MarkRefresh(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err = store.ConsumeRefresh(ctx, "s1")
	if err != nil || !pending {
		t.Fatalf("expected pending refresh, got %v %v", pending, err)
	}

	pending, err = store.ConsumeRefresh(ctx, "s1")
	if err != nil || pending {
		t.Fatal("expected refresh flag to be consumed exactly once")
	}
}

func TestMemoryStoreEntriesExpire(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(time.Minute)

	if err := store.SetEmail(ctx, "s1", "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	*clock = clock.Add(2 * time.Minute)
	if _, err := store.Email(ctx, "s1"); !errors.Is(err, domainErrors.ErrNoSession) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestMemoryStoreReadExtendsLifetime(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(time.Minute)

	if err := store.SetEmail(ctx, "s1", "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	*clock = clock.Add(45 * time.Second)
	if _, err := store.Email(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second read 45s later only succeeds if the first one extended the
	// lifetime.
	*clock = clock.Add(45 * time.Second)
	if _, err := store.Email(ctx, "s1"); err != nil {
		t.Fatalf("expected read to extend lifetime, got %v", err)
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(time.Minute)

	_ = store.SetEmail(ctx, "s1", "a@b.com")
	_ = store.SetEmail(ctx, "s2", "c@d.com")
	*clock = clock.Add(30 * time.Second)
	_ = store.SetEmail(ctx, "s3", "e@f.com")

	removed := store.Sweep(clock.Add(45 * time.Second))
	if removed != 2 {
		t.Fatalf("expected 2 expired entries removed, got %d", removed)
	}
	if _, err := store.Email(ctx, "s3"); err != nil {
		t.Fatalf("expected s3 to survive the sweep, got %v", err)
	}
}
