// Package resolver maps free-form user text to a canonical exchange ticker.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// nseSuffix is the Indian-exchange suffix used by the speculative probe.
const nseSuffix = ".NS"

// Compile-time interface check
var _ interfaces.SymbolResolver = (*Service)(nil)

// strategy is one step of the resolution chain. It returns the resolved
// ticker, or ok=false when it has no opinion. Strategies never return
// errors: a provider failure inside a step is treated as no opinion so the
// chain continues.
type strategy func(ctx context.Context, raw, upper string) (ticker string, ok bool)

// Service implements SymbolResolver as an ordered strategy chain:
// literal known ticker, lookup table, Indian-exchange suffix probe, then
// provider free-text search. First affirmative answer wins.
type Service struct {
	provider interfaces.MarketDataClient
	logger   *common.Logger
	chain    []strategy
}

// NewService creates a new symbol resolver service.
func NewService(provider interfaces.MarketDataClient, logger *common.Logger) *Service {
	s := &Service{
		provider: provider,
		logger:   logger,
	}
	s.chain = []strategy{
		s.matchKnownTicker,
		s.matchTableName,
		s.probeNSESuffix,
		s.searchProvider,
	}
	return s
}

// Resolve returns the canonical ticker for the raw text, or
// models.ErrSymbolNotFound when no strategy matches. Blank input is
// rejected before any provider call.
func (s *Service) Resolve(ctx context.Context, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty input: %w", models.ErrSymbolNotFound)
	}

	upper := strings.ToUpper(trimmed)

	for _, step := range s.chain {
		if ticker, ok := step(ctx, trimmed, upper); ok {
			s.logger.Debug().Str("input", trimmed).Str("ticker", ticker).Msg("Symbol resolved")
			return ticker, nil
		}
	}

	return "", fmt.Errorf("no match for '%s': %w", trimmed, models.ErrSymbolNotFound)
}

// matchKnownTicker returns the input unchanged when it already is one of the
// table's canonical tickers. This is what lets suffixed input like
// "RELIANCE.NS" short-circuit the chain.
func (s *Service) matchKnownTicker(_ context.Context, _, upper string) (string, bool) {
	if knownTickers[upper] {
		return upper, true
	}
	return "", false
}

// matchTableName maps a known company name to its ticker.
func (s *Service) matchTableName(_ context.Context, _, upper string) (string, bool) {
	if ticker, ok := symbolTable[upper]; ok {
		return ticker, true
	}
	return "", false
}

// probeNSESuffix speculatively appends the Indian-exchange suffix and asks
// the provider whether that symbol exists. Provider errors are no opinion.
func (s *Service) probeNSESuffix(ctx context.Context, _, upper string) (string, bool) {
	if strings.Contains(upper, ".") || strings.Contains(upper, " ") {
		return "", false
	}

	candidate := upper + nseSuffix
	exists, err := s.provider.HasSymbol(ctx, candidate)
	if err != nil {
		s.logger.Debug().Err(err).Str("candidate", candidate).Msg("NSE probe failed, continuing chain")
		return "", false
	}
	if exists {
		return candidate, true
	}
	return "", false
}

// searchProvider falls back to the provider's free-text search with the raw
// text as entered and takes the first returned symbol. Provider errors are
// no opinion.
func (s *Service) searchProvider(ctx context.Context, raw, _ string) (string, bool) {
	matches, err := s.provider.SearchSymbols(ctx, raw)
	if err != nil {
		s.logger.Debug().Err(err).Str("query", raw).Msg("Provider search failed")
		return "", false
	}
	for _, m := range matches {
		if m.Symbol != "" {
			return m.Symbol, true
		}
	}
	return "", false
}
