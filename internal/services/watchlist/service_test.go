package watchlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/models"
	"github.com/shivam-4/finagent/internal/storage/sessionstore"
)

// --- Mocks ---

// mockResolver resolves a fixed table of names and rejects everything else.
type mockResolver struct {
	table map[string]string
	calls int
}

func (m *mockResolver) Resolve(_ context.Context, raw string) (string, error) {
	m.calls++
	if ticker, ok := m.table[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return ticker, nil
	}
	return "", fmt.Errorf("no match for '%s': %w", raw, models.ErrSymbolNotFound)
}

func newTestService(resolver *mockResolver) (*Service, *sessionstore.Store) {
	store := sessionstore.NewStore(common.NewSilentLogger())
	return NewService(store, resolver, common.NewSilentLogger()), store
}

func sessionCtx(id string) context.Context {
	return common.WithSessionContext(context.Background(), &common.SessionContext{SessionID: id})
}

// --- Tests ---

func TestAddToWatchlist_ResolvesBeforeStoring(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"NVIDIA": "NVDA"}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	ticker, err := svc.AddToWatchlist(ctx, "nvidia")
	if err != nil {
		t.Fatalf("AddToWatchlist error: %v", err)
	}
	if ticker != "NVDA" {
		t.Errorf("ticker = %q, want NVDA", ticker)
	}

	list, _ := svc.ListWatchlist(ctx)
	if len(list) != 1 || list[0] != "NVDA" {
		t.Errorf("watchlist = %v, want [NVDA]", list)
	}
}

func TestAddToWatchlist_DuplicateIsNoOp(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"NVIDIA": "NVDA", "NVDA": "NVDA"}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	svc.AddToWatchlist(ctx, "nvidia")
	svc.AddToWatchlist(ctx, "NVDA")
	svc.AddToWatchlist(ctx, "nvidia")

	list, _ := svc.ListWatchlist(ctx)
	if len(list) != 1 {
		t.Errorf("watchlist = %v, want a single entry", list)
	}
}

func TestAddToWatchlist_FailedResolveLeavesStateUnchanged(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"APPLE": "AAPL"}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	svc.AddToWatchlist(ctx, "apple")

	_, err := svc.AddToWatchlist(ctx, "zzznope")
	if !errors.Is(err, models.ErrSymbolNotFound) {
		t.Fatalf("AddToWatchlist = %v, want ErrSymbolNotFound", err)
	}

	list, _ := svc.ListWatchlist(ctx)
	if len(list) != 1 || list[0] != "AAPL" {
		t.Errorf("failed add must not touch the watchlist, got %v", list)
	}
}

func TestAddToWatchlist_PreservesInsertionOrder(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{
		"APPLE": "AAPL", "TESLA": "TSLA", "TCS": "TCS.NS",
	}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	for _, name := range []string{"tesla", "apple", "tcs"} {
		if _, err := svc.AddToWatchlist(ctx, name); err != nil {
			t.Fatalf("AddToWatchlist(%q) error: %v", name, err)
		}
	}

	list, _ := svc.ListWatchlist(ctx)
	want := []string{"TSLA", "AAPL", "TCS.NS"}
	if len(list) != len(want) {
		t.Fatalf("watchlist = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("watchlist[%d] = %q, want %q", i, list[i], want[i])
		}
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"APPLE": "AAPL", "TESLA": "TSLA"}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	svc.AddToWatchlist(ctx, "apple")
	svc.AddToWatchlist(ctx, "tesla")

	if err := svc.RemoveFromWatchlist(ctx, "AAPL"); err != nil {
		t.Fatalf("RemoveFromWatchlist error: %v", err)
	}

	list, _ := svc.ListWatchlist(ctx)
	if len(list) != 1 || list[0] != "TSLA" {
		t.Errorf("watchlist = %v, want [TSLA]", list)
	}
}

func TestRemoveFromWatchlist_AbsentIsNoOp(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"APPLE": "AAPL"}}
	svc, _ := newTestService(resolver)

	ctx := sessionCtx("s1")
	svc.AddToWatchlist(ctx, "apple")

	if err := svc.RemoveFromWatchlist(ctx, "TSLA"); err != nil {
		t.Fatalf("removing an absent ticker should succeed, got %v", err)
	}

	list, _ := svc.ListWatchlist(ctx)
	if len(list) != 1 || list[0] != "AAPL" {
		t.Errorf("watchlist = %v, want [AAPL]", list)
	}
}

func TestRecordAnalysis_AppendOnly(t *testing.T) {
	resolver := &mockResolver{}
	svc, _ := newTestService(resolver)

	base := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	ctx := sessionCtx("s1")
	svc.RecordAnalysis(ctx, "AAPL", models.AnalysisComprehensive)
	current = base.Add(time.Minute)
	svc.RecordAnalysis(ctx, "TSLA", models.AnalysisTechnical)
	current = base.Add(2 * time.Minute)
	svc.RecordAnalysis(ctx, "AAPL", models.AnalysisNews)

	history, err := svc.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}

	if history[0].Ticker != "AAPL" || history[0].AnalysisType != models.AnalysisComprehensive {
		t.Errorf("history[0] = %+v", history[0])
	}
	if history[1].Ticker != "TSLA" || history[1].AnalysisType != models.AnalysisTechnical {
		t.Errorf("history[1] = %+v", history[1])
	}
	if !history[2].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("history[2].Timestamp = %v", history[2].Timestamp)
	}
}

func TestSessionIsolation(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"APPLE": "AAPL", "TESLA": "TSLA"}}
	svc, _ := newTestService(resolver)

	svc.AddToWatchlist(sessionCtx("alice"), "apple")
	svc.AddToWatchlist(sessionCtx("bob"), "tesla")

	alice, _ := svc.ListWatchlist(sessionCtx("alice"))
	bob, _ := svc.ListWatchlist(sessionCtx("bob"))

	if len(alice) != 1 || alice[0] != "AAPL" {
		t.Errorf("alice watchlist = %v", alice)
	}
	if len(bob) != 1 || bob[0] != "TSLA" {
		t.Errorf("bob watchlist = %v", bob)
	}
}

func TestDefaultSessionFallback(t *testing.T) {
	resolver := &mockResolver{table: map[string]string{"APPLE": "AAPL"}}
	svc, store := newTestService(resolver)

	// No session context: everything lands in the default session.
	svc.AddToWatchlist(context.Background(), "apple")

	state, _ := store.Get(context.Background(), common.DefaultSessionID)
	if len(state.Watchlist) != 1 || state.Watchlist[0] != "AAPL" {
		t.Errorf("default session watchlist = %v", state.Watchlist)
	}
}
