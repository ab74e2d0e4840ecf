package common

import (
	"context"
	"testing"
)

func TestResolveSessionID(t *testing.T) {
	// No session context falls back to the default scope
	if got := ResolveSessionID(context.Background()); got != DefaultSessionID {
		t.Errorf("ResolveSessionID = %q, want %q", got, DefaultSessionID)
	}

	ctx := WithSessionContext(context.Background(), &SessionContext{SessionID: "abc123"})
	if got := ResolveSessionID(ctx); got != "abc123" {
		t.Errorf("ResolveSessionID = %q, want abc123", got)
	}

	// Blank session IDs also fall back
	ctx = WithSessionContext(context.Background(), &SessionContext{SessionID: "   "})
	if got := ResolveSessionID(ctx); got != DefaultSessionID {
		t.Errorf("ResolveSessionID = %q, want %q", got, DefaultSessionID)
	}
}

func TestSessionContextFromContext(t *testing.T) {
	if sc := SessionContextFromContext(context.Background()); sc != nil {
		t.Errorf("SessionContextFromContext = %+v, want nil", sc)
	}

	ctx := WithSessionContext(context.Background(), &SessionContext{SessionID: "s1"})
	sc := SessionContextFromContext(ctx)
	if sc == nil || sc.SessionID != "s1" {
		t.Errorf("SessionContextFromContext = %+v", sc)
	}
}
