package models

import (
	"strings"
	"time"
)

// TimeRange is a lookback window selection from the fixed UI set.
type TimeRange string

const (
	Range1Month  TimeRange = "1mo"
	Range3Months TimeRange = "3mo"
	Range6Months TimeRange = "6mo"
	Range1Year   TimeRange = "1y"
	Range5Years  TimeRange = "5y"
)

// rangeLabels maps the presentation labels to their canonical ranges.
var rangeLabels = map[string]TimeRange{
	"1 month":  Range1Month,
	"3 months": Range3Months,
	"6 months": Range6Months,
	"1 year":   Range1Year,
	"5 years":  Range5Years,
}

// ParseTimeRange accepts either a canonical range ("1y") or a presentation
// label ("1 Year"), case-insensitively. Empty input defaults to one year.
func ParseTimeRange(s string) (TimeRange, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return Range1Year, true
	}
	switch TimeRange(normalized) {
	case Range1Month, Range3Months, Range6Months, Range1Year, Range5Years:
		return TimeRange(normalized), true
	}
	if r, ok := rangeLabels[normalized]; ok {
		return r, true
	}
	return "", false
}

// Duration returns the trailing span the range covers.
func (r TimeRange) Duration() time.Duration {
	switch r {
	case Range1Month:
		return 31 * 24 * time.Hour
	case Range3Months:
		return 92 * 24 * time.Hour
	case Range6Months:
		return 183 * 24 * time.Hour
	case Range5Years:
		return 5 * 365 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}

// AnalysisType selects what kind of narrative the insight agent produces.
type AnalysisType string

const (
	AnalysisComprehensive AnalysisType = "comprehensive"
	AnalysisTechnical     AnalysisType = "technical"
	AnalysisFundamental   AnalysisType = "fundamental"
	AnalysisNews          AnalysisType = "news"
	AnalysisSentiment     AnalysisType = "sentiment"
)

// analysisLabels maps presentation labels to canonical analysis types.
var analysisLabels = map[string]AnalysisType{
	"comprehensive":      AnalysisComprehensive,
	"technical":          AnalysisTechnical,
	"technical analysis": AnalysisTechnical,
	"fundamental":        AnalysisFundamental,
	"news":               AnalysisNews,
	"sentiment":          AnalysisSentiment,
	"sentiment analysis": AnalysisSentiment,
}

// ParseAnalysisType accepts canonical values or presentation labels,
// case-insensitively. Empty input defaults to comprehensive.
func ParseAnalysisType(s string) (AnalysisType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return AnalysisComprehensive, true
	}
	if a, ok := analysisLabels[normalized]; ok {
		return a, true
	}
	return "", false
}

// Label returns the presentation label for the analysis type.
func (a AnalysisType) Label() string {
	switch a {
	case AnalysisTechnical:
		return "Technical Analysis"
	case AnalysisFundamental:
		return "Fundamental Analysis"
	case AnalysisNews:
		return "News"
	case AnalysisSentiment:
		return "Sentiment Analysis"
	default:
		return "Comprehensive"
	}
}

// AnalysisRequest is the input that triggers one resolve-fetch-analyze cycle.
type AnalysisRequest struct {
	Query        string       `json:"query"`
	AnalysisType AnalysisType `json:"analysis_type"`
	Range        TimeRange    `json:"range"`
}

// AnalysisHistoryEntry records one successful analysis. Entries are
// append-only for the life of the session.
type AnalysisHistoryEntry struct {
	Ticker       string       `json:"ticker"`
	AnalysisType AnalysisType `json:"analysis_type"`
	Timestamp    time.Time    `json:"timestamp"`
}

// AnalysisResult is the narrative produced by the insight agent for one
// analysis cycle.
type AnalysisResult struct {
	Ticker       string       `json:"ticker"`
	AnalysisType AnalysisType `json:"analysis_type"`
	Narrative    string       `json:"narrative"`
	GeneratedAt  time.Time    `json:"generated_at"`
}

// SessionState holds one session's watchlist and analysis history.
// Watchlist order is insertion order; both invariants hold: every ticker
// was produced by the symbol resolver, and history is never reordered.
type SessionState struct {
	SessionID string                 `json:"session_id"`
	Watchlist []string               `json:"watchlist"`
	History   []AnalysisHistoryEntry `json:"history"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// HasTicker reports whether the ticker is already on the watchlist.
func (s *SessionState) HasTicker(ticker string) bool {
	for _, t := range s.Watchlist {
		if t == ticker {
			return true
		}
	}
	return false
}
