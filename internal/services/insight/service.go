// Package insight orchestrates one analysis cycle against the hosted-LLM
// insight agents.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// Compile-time interface check
var _ interfaces.InsightService = (*Service)(nil)

// Service implements InsightService. One Analyze call is one synchronous
// resolve-fetch-query cycle; a failure at any step is terminal for that
// cycle and leaves session state untouched.
type Service struct {
	resolver  interfaces.SymbolResolver
	market    interfaces.MarketService
	watchlist interfaces.WatchlistService
	agent     interfaces.InsightClient
	logger    *common.Logger
	now       func() time.Time // injectable clock for testing
}

// NewService creates a new insight service. agent may be nil when no LLM
// credential is configured; Analyze then fails with ErrAgentUnavailable.
func NewService(
	resolver interfaces.SymbolResolver,
	market interfaces.MarketService,
	watchlist interfaces.WatchlistService,
	agent interfaces.InsightClient,
	logger *common.Logger,
) *Service {
	return &Service{
		resolver:  resolver,
		market:    market,
		watchlist: watchlist,
		agent:     agent,
		logger:    logger,
		now:       time.Now,
	}
}

// Analyze resolves the request's query, fetches fresh market data, asks the
// insight agent for a narrative, and records a history entry on success.
func (s *Service) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	ticker, err := s.resolver.Resolve(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	data, err := s.market.Fetch(ctx, ticker, req.Range)
	if err != nil {
		return nil, err
	}

	if s.agent == nil {
		return nil, fmt.Errorf("no LLM credential configured: %w", models.ErrAgentUnavailable)
	}

	prompt := buildPrompt(req.AnalysisType, data)

	var narrative string
	if usesWebSearch(req.AnalysisType) {
		narrative, err = s.agent.GenerateWithSearch(ctx, prompt)
	} else {
		narrative, err = s.agent.GenerateContent(ctx, prompt)
	}
	if err != nil {
		return nil, fmt.Errorf("analysis for %s: %w: %v", ticker, models.ErrAgentUnavailable, err)
	}

	// History records only successful cycles
	if err := s.watchlist.RecordAnalysis(ctx, ticker, req.AnalysisType); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("ticker", ticker).
		Str("type", string(req.AnalysisType)).
		Msg("Analysis completed")

	return &models.AnalysisResult{
		Ticker:       ticker,
		AnalysisType: req.AnalysisType,
		Narrative:    narrative,
		GeneratedAt:  s.now(),
	}, nil
}

// usesWebSearch selects the web-search agent role for analysis types that
// depend on live information; the finance agent handles the rest from the
// fetched data alone.
func usesWebSearch(t models.AnalysisType) bool {
	switch t {
	case models.AnalysisNews, models.AnalysisSentiment, models.AnalysisComprehensive:
		return true
	}
	return false
}
