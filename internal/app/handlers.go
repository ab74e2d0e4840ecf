package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shivam-4/finagent/internal/common"
	"github.com/shivam-4/finagent/internal/interfaces"
	"github.com/shivam-4/finagent/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("finagent server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleResolveSymbol implements the resolve_symbol tool
func handleResolveSymbol(symbolResolver interfaces.SymbolResolver, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		ticker, err := symbolResolver.Resolve(ctx, query)
		if err != nil {
			return errorResult(fmt.Sprintf("Could not resolve '%s': %v", query, err)), nil
		}

		return textResult(ticker), nil
	}
}

// handleGetStockData implements the get_stock_data tool
func handleGetStockData(symbolResolver interfaces.SymbolResolver, marketService interfaces.MarketService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		rng, ok := models.ParseTimeRange(request.GetString("range", ""))
		if !ok {
			return errorResult("Error: invalid range (use 1mo, 3mo, 6mo, 1y, or 5y)"), nil
		}

		ticker, err := symbolResolver.Resolve(ctx, query)
		if err != nil {
			return errorResult(fmt.Sprintf("Could not resolve '%s': %v", query, err)), nil
		}

		data, err := marketService.Fetch(ctx, ticker, rng)
		if err != nil {
			logger.Error().Err(err).Str("ticker", ticker).Msg("Stock data fetch failed")
			return errorResult(fmt.Sprintf("Fetch error: %v", err)), nil
		}

		return textResult(formatStockData(data)), nil
	}
}

// handleAnalyzeStock implements the analyze_stock tool
func handleAnalyzeStock(insightService interfaces.InsightService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		analysisType, ok := models.ParseAnalysisType(request.GetString("analysis_type", ""))
		if !ok {
			return errorResult("Error: invalid analysis_type (use comprehensive, technical, fundamental, news, or sentiment)"), nil
		}

		rng, ok := models.ParseTimeRange(request.GetString("range", ""))
		if !ok {
			return errorResult("Error: invalid range (use 1mo, 3mo, 6mo, 1y, or 5y)"), nil
		}

		result, err := insightService.Analyze(ctx, &models.AnalysisRequest{
			Query:        query,
			AnalysisType: analysisType,
			Range:        rng,
		})
		if err != nil {
			logger.Error().Err(err).Str("query", query).Msg("Analysis failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("# %s — %s\n\n%s", result.Ticker, result.AnalysisType.Label(), result.Narrative)), nil
	}
}

// handleGetWatchlist implements the get_watchlist tool
func handleGetWatchlist(watchlistService interfaces.WatchlistService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tickers, err := watchlistService.ListWatchlist(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("Watchlist error: %v", err)), nil
		}
		if len(tickers) == 0 {
			return textResult("Watchlist is empty."), nil
		}
		return textResult("Watchlist:\n- " + strings.Join(tickers, "\n- ")), nil
	}
}

// handleAddWatchlistItem implements the add_watchlist_item tool
func handleAddWatchlistItem(watchlistService interfaces.WatchlistService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil || strings.TrimSpace(query) == "" {
			return errorResult("Error: query parameter is required"), nil
		}

		ticker, err := watchlistService.AddToWatchlist(ctx, query)
		if err != nil {
			logger.Error().Err(err).Str("query", query).Msg("Watchlist add failed")
			return errorResult(fmt.Sprintf("Could not add '%s': %v", query, err)), nil
		}

		return textResult(fmt.Sprintf("Added %s to watchlist.", ticker)), nil
	}
}

// handleRemoveWatchlistItem implements the remove_watchlist_item tool
func handleRemoveWatchlistItem(watchlistService interfaces.WatchlistService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ticker, err := request.RequireString("ticker")
		if err != nil || strings.TrimSpace(ticker) == "" {
			return errorResult("Error: ticker parameter is required"), nil
		}

		if err := watchlistService.RemoveFromWatchlist(ctx, strings.ToUpper(strings.TrimSpace(ticker))); err != nil {
			return errorResult(fmt.Sprintf("Remove error: %v", err)), nil
		}

		return textResult(fmt.Sprintf("Removed %s from watchlist.", strings.ToUpper(strings.TrimSpace(ticker)))), nil
	}
}

// handleGetHistory implements the get_history tool
func handleGetHistory(watchlistService interfaces.WatchlistService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := watchlistService.ListHistory(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("History error: %v", err)), nil
		}
		if len(entries) == 0 {
			return textResult("No analyses recorded yet."), nil
		}

		var sb strings.Builder
		sb.WriteString("Analysis history:\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "- %s  %s  %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Ticker, e.AnalysisType.Label())
		}
		return textResult(sb.String()), nil
	}
}

// formatStockData renders one fetch cycle as markdown for MCP clients.
func formatStockData(data *models.StockData) string {
	var sb strings.Builder
	info := data.Info

	fmt.Fprintf(&sb, "# %s (%s)\n\n", info.Name, data.Ticker)
	fmt.Fprintf(&sb, "Exchange: %s | Sector: %s | Currency: %s\n\n", info.Exchange, info.Sector, info.Currency)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Market Cap | %.0f |\n", info.MarketCap)
	fmt.Fprintf(&sb, "| P/E Ratio | %.2f |\n", info.PE)
	fmt.Fprintf(&sb, "| EPS | %.2f |\n", info.EPS)
	fmt.Fprintf(&sb, "| Dividend Yield | %.2f%% |\n", info.DividendYield*100)
	fmt.Fprintf(&sb, "| 52-Week High | %.2f |\n", info.High52Week)
	fmt.Fprintf(&sb, "| 52-Week Low | %.2f |\n", info.Low52Week)

	if len(data.History) > 0 {
		last := data.History.Last()
		fmt.Fprintf(&sb, "\nLatest close: %.2f on %s (%d bars over %s)\n",
			last.Close, last.Date.Format("2006-01-02"), len(data.History), data.Range)
	}

	if info.Summary != "" {
		fmt.Fprintf(&sb, "\n%s\n", info.Summary)
	}

	return sb.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
