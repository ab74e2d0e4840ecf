package sessionstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/models"
)

func newTestStore() *Store {
	return NewStore(common.NewSilentLogger())
}

func TestGet_CreatesEmptySession(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	state, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if state.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", state.SessionID)
	}
	if len(state.Watchlist) != 0 || len(state.History) != 0 {
		t.Errorf("new session should be empty, got watchlist=%v history=%v",
			state.Watchlist, state.History)
	}
	if state.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on first access")
	}
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	err := store.Update(ctx, "s1", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "AAPL")
		return nil
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	snap, _ := store.Get(ctx, "s1")
	snap.Watchlist[0] = "MUTATED"
	snap.Watchlist = append(snap.Watchlist, "EXTRA")

	fresh, _ := store.Get(ctx, "s1")
	if len(fresh.Watchlist) != 1 || fresh.Watchlist[0] != "AAPL" {
		t.Errorf("mutating a snapshot must not affect the store, got %v", fresh.Watchlist)
	}
}

func TestUpdate_AbortOnError(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	store.Update(ctx, "s1", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "AAPL")
		return nil
	})

	boom := errors.New("boom")
	err := store.Update(ctx, "s1", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "TSLA")
		s.History = append(s.History, models.AnalysisHistoryEntry{Ticker: "TSLA"})
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}

	state, _ := store.Get(ctx, "s1")
	if len(state.Watchlist) != 1 || state.Watchlist[0] != "AAPL" {
		t.Errorf("aborted update must leave state untouched, got %v", state.Watchlist)
	}
	if len(state.History) != 0 {
		t.Errorf("aborted update must leave history untouched, got %v", state.History)
	}
}

func TestUpdate_BumpsUpdatedAt(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.Update(ctx, "s1", func(s *models.SessionState) error { return nil })

	current = base.Add(time.Minute)
	store.Update(ctx, "s1", func(s *models.SessionState) error { return nil })

	state, _ := store.Get(ctx, "s1")
	if !state.UpdatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("UpdatedAt = %v, want %v", state.UpdatedAt, base.Add(time.Minute))
	}
	if !state.CreatedAt.Equal(base) {
		t.Errorf("CreatedAt = %v, want %v", state.CreatedAt, base)
	}
}

func TestSessionIsolation(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	store.Update(ctx, "alice", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "AAPL")
		return nil
	})
	store.Update(ctx, "bob", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "TSLA")
		return nil
	})

	alice, _ := store.Get(ctx, "alice")
	bob, _ := store.Get(ctx, "bob")

	if len(alice.Watchlist) != 1 || alice.Watchlist[0] != "AAPL" {
		t.Errorf("alice watchlist = %v", alice.Watchlist)
	}
	if len(bob.Watchlist) != 1 || bob.Watchlist[0] != "TSLA" {
		t.Errorf("bob watchlist = %v", bob.Watchlist)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	store.Update(ctx, "s1", func(s *models.SessionState) error {
		s.Watchlist = append(s.Watchlist, "AAPL")
		return nil
	})

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	state, _ := store.Get(ctx, "s1")
	if len(state.Watchlist) != 0 {
		t.Errorf("deleted session should come back empty, got %v", state.Watchlist)
	}
}

func TestSessions(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	store.Get(ctx, "a")
	store.Get(ctx, "b")

	ids, err := store.Sessions(ctx)
	if err != nil {
		t.Fatalf("Sessions error: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Sessions = %v, want 2 entries", ids)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	store := newTestStore()
	defer store.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(ctx, "shared", func(s *models.SessionState) error {
				s.History = append(s.History, models.AnalysisHistoryEntry{Ticker: "AAPL"})
				return nil
			})
		}()
	}
	wg.Wait()

	state, _ := store.Get(ctx, "shared")
	if len(state.History) != 50 {
		t.Errorf("History length = %d, want 50", len(state.History))
	}
}
