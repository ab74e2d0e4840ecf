// Package models defines data structures for finagent
package models

import (
	"time"
)

// CompanyInfo holds company metadata at fetch time. It is ephemeral:
// replaced wholesale on every fetch, never persisted.
type CompanyInfo struct {
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	Exchange      string    `json:"exchange"`
	Currency      string    `json:"currency"`
	Sector        string    `json:"sector,omitempty"`
	Industry      string    `json:"industry,omitempty"`
	MarketCap     float64   `json:"market_cap"`
	PE            float64   `json:"pe_ratio"`
	EPS           float64   `json:"eps"`
	DividendYield float64   `json:"dividend_yield"`
	High52Week    float64   `json:"high_52_week"`
	Low52Week     float64   `json:"low_52_week"`
	Summary       string    `json:"summary,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// PriceBar represents a single day's OHLCV record
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceHistory is an ordered daily series covering a lookback window,
// oldest bar first.
type PriceHistory []PriceBar

// Last returns the most recent bar, or a zero bar when the series is empty.
func (h PriceHistory) Last() PriceBar {
	if len(h) == 0 {
		return PriceBar{}
	}
	return h[len(h)-1]
}

// StockData bundles one fetch cycle's results for a ticker.
type StockData struct {
	Ticker  string       `json:"ticker"`
	Info    *CompanyInfo `json:"info"`
	History PriceHistory `json:"history"`
	Range   string       `json:"range"`
}

// SymbolMatch is a single result from the provider's free-text symbol search.
type SymbolMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}
