// Package app wires configuration, clients, services, and the MCP server
// into the shared core used by cmd/finagent-server.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/shivam-4/finagent/internal/clients/gemini"
	"github.com/shivam-4/finagent/internal/clients/yahoo"
	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/services/insight"
	"github.com/shivam-4/finagent/internal/services/market"
	"github.com/shivam-4/finagent/internal/services/resolver"
	"github.com/shivam-4/finagent/internal/services/watchlist"
	"github.com/shivam-4/finagent/internal/storage/sessionstore"
)

// App holds all initialized services, clients, and the MCP server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Sessions         interfaces.SessionStore
	MarketClient     interfaces.MarketDataClient
	InsightClient    interfaces.InsightClient
	Resolver         interfaces.SymbolResolver
	MarketService    interfaces.MarketService
	WatchlistService interfaces.WatchlistService
	InsightService   interfaces.InsightService
	MCPServer        *server.MCPServer
	StartupTime      time.Time
}

// NewApp initializes config, logging, the session store, API clients, and
// all services. configPath may be empty, in which case FINAGENT_CONFIG and
// the default path are tried.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("FINAGENT_CONFIG")
	}
	if configPath == "" {
		configPath = "config/finagent.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	sessions := sessionstore.NewStore(logger)

	marketClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	// The LLM credential is the single secret this service needs. Without
	// it the data-only operations still work; only Analyze is unavailable.
	var insightClient interfaces.InsightClient
	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - analysis will be unavailable")
	} else {
		client, err := gemini.NewClient(context.Background(), geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			insightClient = client
		}
	}

	symbolResolver := resolver.NewService(marketClient, logger)
	marketService := market.NewService(marketClient, logger)
	watchlistService := watchlist.NewService(sessions, symbolResolver, logger)
	insightService := insight.NewService(symbolResolver, marketService, watchlistService, insightClient, logger)

	mcpServer := server.NewMCPServer(
		"finagent",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:           config,
		Logger:           logger,
		Sessions:         sessions,
		MarketClient:     marketClient,
		InsightClient:    insightClient,
		Resolver:         symbolResolver,
		MarketService:    marketService,
		WatchlistService: watchlistService,
		InsightService:   insightService,
		MCPServer:        mcpServer,
		StartupTime:      startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Sessions != nil {
		a.Sessions.Close()
		a.Sessions = nil
	}
}
