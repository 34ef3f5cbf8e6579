// Package session keeps the tiny cross-view state the pages hand to each
// other: the customer email bound on search success and a one-shot
// need-refresh sentinel set after a shipping edit. Nothing else crosses view
// boundaries.
package session

import "context"

// Store binds per-session keys to a view session id. The refresh sentinel is
// a read-once signal channel: ConsumeRefresh reports and clears it in one
// step.
type Store interface {
	// SetEmail binds the customer email to the session, starting the
	// session's idle lifetime.
	SetEmail(ctx context.Context, id, email string) error
	// Email returns the bound email or errors.ErrNoSession.
	Email(ctx context.Context, id string) (string, error)
	// MarkRefresh records that listing state must be rebuilt on next mount.
	MarkRefresh(ctx context.Context, id string) error
	// ConsumeRefresh reports whether a refresh was pending and clears it.
	ConsumeRefresh(ctx context.Context, id string) (bool, error)
	// Clear forgets everything bound to the session.
	Clear(ctx context.Context, id string) error
}
