package common

import (
	"context"
	"strings"
)

// SessionContext identifies the caller's logical session. Each session owns
// its own watchlist and analysis history; no state is shared across session
// IDs. When absent, operations fall back to the default session so a
// single-user deployment behaves like the single browser tab it replaces.
type SessionContext struct {
	SessionID string
}

// DefaultSessionID is the fallback scope used when no session header is
// supplied (single-tenant mode).
const DefaultSessionID = "default"

type contextKey int

const sessionContextKey contextKey = iota

// WithSessionContext stores a SessionContext in the request context.
func WithSessionContext(ctx context.Context, sc *SessionContext) context.Context {
	return context.WithValue(ctx, sessionContextKey, sc)
}

// SessionContextFromContext retrieves the SessionContext, or nil if absent.
func SessionContextFromContext(ctx context.Context) *SessionContext {
	sc, _ := ctx.Value(sessionContextKey).(*SessionContext)
	return sc
}

// ResolveSessionID returns the session ID from context, or DefaultSessionID
// when no session context is present.
func ResolveSessionID(ctx context.Context) string {
	if sc := SessionContextFromContext(ctx); sc != nil && strings.TrimSpace(sc.SessionID) != "" {
		return sc.SessionID
	}
	return DefaultSessionID
}
