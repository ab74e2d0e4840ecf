package interfaces

import (
	"context"

	"github.com/shivam-4/finagent/internal/models"
)

// SymbolResolver maps free-form user text to a canonical exchange ticker.
type SymbolResolver interface {
	// Resolve returns the canonical ticker for the raw text, or
	// models.ErrSymbolNotFound when no resolution strategy matches.
	Resolve(ctx context.Context, raw string) (string, error)
}

// MarketService handles market data fetch cycles.
type MarketService interface {
	// Fetch retrieves company info and price history for a ticker.
	// Partial success is treated as failure: the result always carries
	// both info and history, or an error.
	Fetch(ctx context.Context, ticker string, rng models.TimeRange) (*models.StockData, error)
}

// WatchlistService manages the caller's session-scoped watchlist and
// analysis history. The session is resolved from the context.
type WatchlistService interface {
	// AddToWatchlist resolves the text and inserts the ticker with set
	// semantics. Returns the resolved ticker. A resolution failure leaves
	// the watchlist unchanged.
	AddToWatchlist(ctx context.Context, text string) (string, error)

	// RemoveFromWatchlist removes the ticker if present; absent is a no-op.
	RemoveFromWatchlist(ctx context.Context, ticker string) error

	// RecordAnalysis appends a history entry with the current timestamp.
	// Prior entries are never removed or reordered.
	RecordAnalysis(ctx context.Context, ticker string, analysisType models.AnalysisType) error

	// ListWatchlist returns a snapshot of the watchlist
	ListWatchlist(ctx context.Context) ([]string, error)

	// ListHistory returns a snapshot of the analysis history
	ListHistory(ctx context.Context) ([]models.AnalysisHistoryEntry, error)
}

// InsightService runs one analysis cycle: resolve, fetch, query the agent
// team, record history.
type InsightService interface {
	// Analyze resolves the request's query, fetches market data, asks the
	// insight agent for a narrative, and records a history entry on success.
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
}
