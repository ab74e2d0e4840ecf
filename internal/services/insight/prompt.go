package insight

import (
	"fmt"
	"strings"

	"github.com/shivam-4/finagent/internal/models"
)

// roleInstructions define the agent roles. The web-search role and the
// financial role combine into the team instruction used for comprehensive
// analysis, mirroring the three-agent pipeline this service fronts.
const (
	webRole = "You are a web search agent for stock market information. " +
		"Always include sources."
	financeRole = "You are a financial analysis agent providing financial insights. " +
		"Use tables to display numeric data."
	teamRole = "You are a comprehensive stock market assistant combining financial " +
		"insights with real-time web searches to deliver accurate, up-to-date " +
		"information. Always include sources and use tables to display data."
)

// buildPrompt composes the narrative request for the selected analysis type.
// The fetched market data is embedded so the finance agent works from the
// same snapshot the caller is shown.
func buildPrompt(analysisType models.AnalysisType, data *models.StockData) string {
	var sb strings.Builder

	switch analysisType {
	case models.AnalysisTechnical:
		sb.WriteString(financeRole)
		sb.WriteString("\n\nProvide a technical analysis of ")
	case models.AnalysisFundamental:
		sb.WriteString(financeRole)
		sb.WriteString("\n\nProvide a fundamental analysis of ")
	case models.AnalysisNews:
		sb.WriteString(webRole)
		sb.WriteString("\n\nSummarize the latest news for ")
	case models.AnalysisSentiment:
		sb.WriteString(webRole)
		sb.WriteString("\n\nAssess current market sentiment for ")
	default:
		sb.WriteString(teamRole)
		sb.WriteString("\n\nSummarize analyst recommendations and share the latest news for ")
	}

	fmt.Fprintf(&sb, "%s (%s).\n", data.Info.Name, data.Ticker)

	writeMarketSnapshot(&sb, data)

	sb.WriteString("\nRespond in markdown.")
	return sb.String()
}

// writeMarketSnapshot appends the fetched company and price data.
func writeMarketSnapshot(sb *strings.Builder, data *models.StockData) {
	info := data.Info

	fmt.Fprintf(sb, `
Company Data:
- Exchange: %s
- Sector: %s
- Market Cap: %.0f %s
- P/E Ratio: %.2f
- EPS: %.2f
- Dividend Yield: %.2f%%
- 52-Week High: %.2f
- 52-Week Low: %.2f
`,
		info.Exchange,
		info.Sector,
		info.MarketCap,
		info.Currency,
		info.PE,
		info.EPS,
		info.DividendYield*100,
		info.High52Week,
		info.Low52Week,
	)

	if len(data.History) > 0 {
		first := data.History[0]
		last := data.History.Last()
		changePct := 0.0
		if first.Close > 0 {
			changePct = (last.Close - first.Close) / first.Close * 100
		}
		fmt.Fprintf(sb, `
Price Data (%s window, %d trading days):
- Latest Close: %.2f (%s)
- Window Open: %.2f
- Window Change: %.2f%%
- Latest Volume: %d
`,
			data.Range,
			len(data.History),
			last.Close,
			last.Date.Format("2006-01-02"),
			first.Close,
			changePct,
			last.Volume,
		)
	}
}
