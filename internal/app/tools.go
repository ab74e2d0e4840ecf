package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createResolveSymbolTool(), handleResolveSymbol(a.Resolver, logger))
	s.AddTool(createGetStockDataTool(), handleGetStockData(a.Resolver, a.MarketService, logger))
	s.AddTool(createAnalyzeStockTool(), handleAnalyzeStock(a.InsightService, logger))
	s.AddTool(createGetWatchlistTool(), handleGetWatchlist(a.WatchlistService, logger))
	s.AddTool(createAddWatchlistItemTool(), handleAddWatchlistItem(a.WatchlistService, logger))
	s.AddTool(createRemoveWatchlistItemTool(), handleRemoveWatchlistItem(a.WatchlistService, logger))
	s.AddTool(createGetHistoryTool(), handleGetHistory(a.WatchlistService, logger))
}

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the finagent server version and status. Use this to verify connectivity."),
	)
}

// createResolveSymbolTool returns the resolve_symbol tool definition
func createResolveSymbolTool() mcp.Tool {
	return mcp.NewTool("resolve_symbol",
		mcp.WithDescription("Resolve a free-form stock name or ticker to its canonical exchange symbol (e.g., 'nvidia' -> 'NVDA', 'TCS' -> 'TCS.NS')."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name or ticker text to resolve"),
		),
	)
}

// createGetStockDataTool returns the get_stock_data tool definition
func createGetStockDataTool() mcp.Tool {
	return mcp.NewTool("get_stock_data",
		mcp.WithDescription("Get company metadata and daily price history for a stock. Accepts a name or ticker; the symbol is resolved first."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name or ticker (e.g., 'AAPL', 'reliance')"),
		),
		mcp.WithString("range",
			mcp.Description("Lookback window: 1mo, 3mo, 6mo, 1y, 5y (default: 1y)"),
		),
	)
}

// createAnalyzeStockTool returns the analyze_stock tool definition
func createAnalyzeStockTool() mcp.Tool {
	return mcp.NewTool("analyze_stock",
		mcp.WithDescription("Run an AI analysis of a stock and return a narrative summary. Records the analysis in the session history."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name or ticker to analyze"),
		),
		mcp.WithString("analysis_type",
			mcp.Description("Analysis type: comprehensive, technical, fundamental, news, sentiment (default: comprehensive)"),
		),
		mcp.WithString("range",
			mcp.Description("Lookback window: 1mo, 3mo, 6mo, 1y, 5y (default: 1y)"),
		),
	)
}

// createGetWatchlistTool returns the get_watchlist tool definition
func createGetWatchlistTool() mcp.Tool {
	return mcp.NewTool("get_watchlist",
		mcp.WithDescription("List the tickers currently on the session watchlist."),
	)
}

// createAddWatchlistItemTool returns the add_watchlist_item tool definition
func createAddWatchlistItemTool() mcp.Tool {
	return mcp.NewTool("add_watchlist_item",
		mcp.WithDescription("Add a stock to the session watchlist. The input is resolved to a canonical ticker first; duplicates are no-ops."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Company name or ticker to add"),
		),
	)
}

// createRemoveWatchlistItemTool returns the remove_watchlist_item tool definition
func createRemoveWatchlistItemTool() mcp.Tool {
	return mcp.NewTool("remove_watchlist_item",
		mcp.WithDescription("Remove a ticker from the session watchlist. Removing an absent ticker is a no-op."),
		mcp.WithString("ticker",
			mcp.Required(),
			mcp.Description("Canonical ticker to remove (e.g., 'NVDA', 'TCS.NS')"),
		),
	)
}

// createGetHistoryTool returns the get_history tool definition
func createGetHistoryTool() mcp.Tool {
	return mcp.NewTool("get_history",
		mcp.WithDescription("List past analyses recorded in this session, oldest first."),
	)
}
