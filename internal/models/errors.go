package models

import "errors"

// Error taxonomy for the analysis cycle. All three are non-fatal: they are
// surfaced to the caller as a message and leave session state untouched.
var (
	// ErrSymbolNotFound means no resolution strategy produced a ticker.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrProviderUnavailable means the market-data provider failed for this
	// request cycle. There is no retry policy; the caller re-triggers.
	ErrProviderUnavailable = errors.New("market data provider unavailable")

	// ErrAgentUnavailable means the insight agent could not produce a
	// narrative for this request cycle.
	ErrAgentUnavailable = errors.New("insight agent unavailable")
)
