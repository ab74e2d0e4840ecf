package server

import (
	"net/http"
	"strings"

	"github.com/shivam-4/finagent/internal/models"
)

// --- Symbol and market data handlers ---

// handleResolve handles GET /api/resolve?q=TEXT.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	ticker, err := s.app.Resolver.Resolve(r.Context(), query)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"query":  query,
		"ticker": ticker,
	})
}

// handleStockData handles GET /api/stocks/{ticker}?range=1y.
func (s *Server) handleStockData(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ticker := strings.TrimPrefix(r.URL.Path, "/api/stocks/")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	rng, ok := models.ParseTimeRange(r.URL.Query().Get("range"))
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid range: "+r.URL.Query().Get("range"))
		return
	}

	resolved, err := s.app.Resolver.Resolve(r.Context(), ticker)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	data, err := s.app.MarketService.Fetch(r.Context(), resolved, rng)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, data)
}

// --- Analysis handlers ---

// handleAnalyze handles POST /api/analyze.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Query        string `json:"query"`
		AnalysisType string `json:"analysis_type"`
		Range        string `json:"range"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		WriteError(w, http.StatusBadRequest, "query is required")
		return
	}

	analysisType, ok := models.ParseAnalysisType(req.AnalysisType)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid analysis_type: "+req.AnalysisType)
		return
	}
	rng, ok := models.ParseTimeRange(req.Range)
	if !ok {
		WriteError(w, http.StatusBadRequest, "invalid range: "+req.Range)
		return
	}

	result, err := s.app.InsightService.Analyze(r.Context(), &models.AnalysisRequest{
		Query:        req.Query,
		AnalysisType: analysisType,
		Range:        rng,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// --- Watchlist and history handlers ---

func (s *Server) handleWatchlistGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tickers, err := s.app.WatchlistService.ListWatchlist(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if tickers == nil {
		tickers = []string{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"watchlist": tickers,
	})
}

// handleWatchlistAdd handles POST /api/watchlist/items.
func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	ticker, err := s.app.WatchlistService.AddToWatchlist(r.Context(), req.Query)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"ticker": ticker,
		"status": "added",
	})
}

// handleWatchlistItem handles DELETE /api/watchlist/items/{ticker}.
func (s *Server) handleWatchlistItem(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	if err := s.app.WatchlistService.RemoveFromWatchlist(r.Context(), ticker); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"ticker": ticker,
		"status": "removed",
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	entries, err := s.app.WatchlistService.ListHistory(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []models.AnalysisHistoryEntry{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}
