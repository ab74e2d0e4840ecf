// Package market provides the market-data fetch service
package market

import (
	"context"
	"fmt"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// Compile-time interface check
var _ interfaces.MarketService = (*Service)(nil)

// Service implements MarketService. Every fetch is a fresh provider read;
// there is no caching layer and no retry policy here. A provider failure is
// terminal for the single request cycle that hit it.
type Service struct {
	provider interfaces.MarketDataClient
	logger   *common.Logger
}

// NewService creates a new market data service
func NewService(provider interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Fetch retrieves company info and price history for a ticker. Partial
// success is failure: if either the metadata or the series is missing the
// whole cycle fails rather than returning half a result.
func (s *Service) Fetch(ctx context.Context, ticker string, rng models.TimeRange) (*models.StockData, error) {
	info, err := s.provider.GetCompanyInfo(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("company info for %s: %w: %v", ticker, models.ErrProviderUnavailable, err)
	}

	history, err := s.provider.GetPriceHistory(ctx, ticker, rng)
	if err != nil {
		return nil, fmt.Errorf("price history for %s: %w: %v", ticker, models.ErrProviderUnavailable, err)
	}

	if info == nil || len(history) == 0 {
		return nil, fmt.Errorf("incomplete data for %s: %w", ticker, models.ErrProviderUnavailable)
	}

	s.logger.Debug().
		Str("ticker", ticker).
		Str("range", string(rng)).
		Int("bars", len(history)).
		Msg("Market data fetched")

	return &models.StockData{
		Ticker:  ticker,
		Info:    info,
		History: history,
		Range:   string(rng),
	}, nil
}
