// Package watchlist provides session-scoped watchlist and history services
package watchlist

import (
	"context"
	"fmt"
	"time"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// Compile-time interface check
var _ interfaces.WatchlistService = (*Service)(nil)

// Service implements WatchlistService. All mutations go through the symbol
// resolver first, so the watchlist only ever contains resolved tickers.
type Service struct {
	store    interfaces.SessionStore
	resolver interfaces.SymbolResolver
	logger   *common.Logger
	now      func() time.Time // injectable clock for testing
}

// NewService creates a new watchlist service
func NewService(store interfaces.SessionStore, resolver interfaces.SymbolResolver, logger *common.Logger) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// AddToWatchlist resolves the text and inserts the ticker with set
// semantics: a duplicate insert is a no-op. A resolution failure leaves the
// watchlist unchanged and surfaces the resolver's error.
func (s *Service) AddToWatchlist(ctx context.Context, text string) (string, error) {
	ticker, err := s.resolver.Resolve(ctx, text)
	if err != nil {
		return "", fmt.Errorf("failed to add to watchlist: %w", err)
	}

	sessionID := common.ResolveSessionID(ctx)
	err = s.store.Update(ctx, sessionID, func(state *models.SessionState) error {
		if state.HasTicker(ticker) {
			return nil
		}
		state.Watchlist = append(state.Watchlist, ticker)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("session", sessionID).Str("ticker", ticker).Msg("Watchlist item added")
	return ticker, nil
}

// RemoveFromWatchlist removes the ticker if present; absent is a no-op.
func (s *Service) RemoveFromWatchlist(ctx context.Context, ticker string) error {
	sessionID := common.ResolveSessionID(ctx)
	err := s.store.Update(ctx, sessionID, func(state *models.SessionState) error {
		for i, t := range state.Watchlist {
			if t == ticker {
				state.Watchlist = append(state.Watchlist[:i], state.Watchlist[i+1:]...)
				break
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.logger.Info().Str("session", sessionID).Str("ticker", ticker).Msg("Watchlist item removed")
	return nil
}

// RecordAnalysis appends a history entry with the current timestamp. Prior
// entries are never removed or reordered.
func (s *Service) RecordAnalysis(ctx context.Context, ticker string, analysisType models.AnalysisType) error {
	sessionID := common.ResolveSessionID(ctx)
	err := s.store.Update(ctx, sessionID, func(state *models.SessionState) error {
		state.History = append(state.History, models.AnalysisHistoryEntry{
			Ticker:       ticker,
			AnalysisType: analysisType,
			Timestamp:    s.now(),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}

	s.logger.Debug().Str("session", sessionID).Str("ticker", ticker).Str("type", string(analysisType)).Msg("Analysis recorded")
	return nil
}

// ListWatchlist returns a snapshot of the session's watchlist.
func (s *Service) ListWatchlist(ctx context.Context) ([]string, error) {
	state, err := s.store.Get(ctx, common.ResolveSessionID(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return state.Watchlist, nil
}

// ListHistory returns a snapshot of the session's analysis history.
func (s *Service) ListHistory(ctx context.Context) ([]models.AnalysisHistoryEntry, error) {
	state, err := s.store.Get(ctx, common.ResolveSessionID(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return state.History, nil
}
