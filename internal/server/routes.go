package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/shivam-4/finagent/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)

	// Symbols and market data
	mux.HandleFunc("/api/resolve", s.handleResolve)
	mux.HandleFunc("/api/stocks/", s.handleStockData)

	// Analysis
	mux.HandleFunc("/api/analyze", s.handleAnalyze)

	// Watchlist and history
	mux.HandleFunc("/api/watchlist/items/", s.routeWatchlistItems)
	mux.HandleFunc("/api/watchlist/items", s.handleWatchlistAdd)
	mux.HandleFunc("/api/watchlist", s.handleWatchlistGet)
	mux.HandleFunc("/api/history", s.handleHistory)
}

// routeWatchlistItems dispatches /api/watchlist/items/{ticker} to the item handler.
func (s *Server) routeWatchlistItems(w http.ResponseWriter, r *http.Request) {
	ticker := strings.TrimPrefix(r.URL.Path, "/api/watchlist/items/")
	if ticker == "" {
		s.handleWatchlistAdd(w, r)
		return
	}
	s.handleWatchlistItem(w, r, ticker)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	sessions, _ := s.app.Sessions.Sessions(r.Context())

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":     s.app.Config.Environment,
		"market_provider": s.app.Config.Clients.Yahoo.BaseURL,
		"insight_model":   s.app.Config.Clients.Gemini.Model,
		"insight_enabled": s.app.InsightClient != nil,
		"active_sessions": len(sessions),
		"uptime_seconds":  int(time.Since(s.app.StartupTime).Seconds()),
	})
}
