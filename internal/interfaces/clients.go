// Package interfaces defines service contracts for finagent
package interfaces

import (
	"context"

	"github.com/shivam-4/finagent/internal/models"
)

// MarketDataClient is the external market-data provider. Every call is a
// fresh read; any caching is the provider's own concern.
type MarketDataClient interface {
	// GetCompanyInfo retrieves company metadata for a ticker
	GetCompanyInfo(ctx context.Context, ticker string) (*models.CompanyInfo, error)

	// GetPriceHistory retrieves the daily OHLCV series for a lookback window
	GetPriceHistory(ctx context.Context, ticker string, rng models.TimeRange) (models.PriceHistory, error)

	// SearchSymbols performs a free-text symbol search
	SearchSymbols(ctx context.Context, query string) ([]*models.SymbolMatch, error)

	// HasSymbol reports whether the provider recognises the exact symbol.
	// Used by the resolver's speculative exchange-suffix probe.
	HasSymbol(ctx context.Context, ticker string) (bool, error)
}

// InsightClient is the hosted-LLM backend for the insight agents.
type InsightClient interface {
	// GenerateContent generates a narrative from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)

	// GenerateWithSearch generates a narrative with web-search grounding,
	// covering the web-search agent role
	GenerateWithSearch(ctx context.Context, prompt string) (string, error)
}
