package interfaces

import (
	"context"

	"github.com/shivam-4/finagent/internal/models"
)

// SessionStore holds per-session watchlist and history state for the life
// of the process. State is never persisted across restarts: the watchlist
// and history are session-lifetime by contract.
type SessionStore interface {
	// Get returns a snapshot of the session's state, creating an empty
	// session on first access.
	Get(ctx context.Context, sessionID string) (*models.SessionState, error)

	// Update applies fn to the session's state atomically. fn returning an
	// error aborts the update and leaves the state untouched.
	Update(ctx context.Context, sessionID string, fn func(*models.SessionState) error) error

	// Delete discards a session's state entirely
	Delete(ctx context.Context, sessionID string) error

	// Sessions returns the IDs of all live sessions
	Sessions(ctx context.Context) ([]string, error)

	Close() error
}
