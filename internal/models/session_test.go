package models

import (
	"testing"
	"time"
)

func TestParseTimeRange(t *testing.T) {
	cases := []struct {
		input string
		want  TimeRange
		ok    bool
	}{
		{"1mo", Range1Month, true},
		{"3mo", Range3Months, true},
		{"6mo", Range6Months, true},
		{"1y", Range1Year, true},
		{"5y", Range5Years, true},
		{"1 Month", Range1Month, true},
		{"1 YEAR", Range1Year, true},
		{"5 years", Range5Years, true},
		{"", Range1Year, true},
		{"  ", Range1Year, true},
		{"2w", "", false},
		{"max", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseTimeRange(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseTimeRange(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTimeRange_Duration(t *testing.T) {
	if Range1Month.Duration() >= Range3Months.Duration() {
		t.Error("1mo should be shorter than 3mo")
	}
	if Range1Year.Duration() != 365*24*time.Hour {
		t.Errorf("Range1Year.Duration() = %v", Range1Year.Duration())
	}
	if Range5Years.Duration() <= Range1Year.Duration() {
		t.Error("5y should be longer than 1y")
	}
}

func TestParseAnalysisType(t *testing.T) {
	cases := []struct {
		input string
		want  AnalysisType
		ok    bool
	}{
		{"comprehensive", AnalysisComprehensive, true},
		{"technical", AnalysisTechnical, true},
		{"Technical Analysis", AnalysisTechnical, true},
		{"fundamental", AnalysisFundamental, true},
		{"news", AnalysisNews, true},
		{"Sentiment Analysis", AnalysisSentiment, true},
		{"SENTIMENT", AnalysisSentiment, true},
		{"", AnalysisComprehensive, true},
		{"astrological", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseAnalysisType(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseAnalysisType(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAnalysisType_Label(t *testing.T) {
	if AnalysisTechnical.Label() != "Technical Analysis" {
		t.Errorf("Label = %q", AnalysisTechnical.Label())
	}
	if AnalysisComprehensive.Label() != "Comprehensive" {
		t.Errorf("Label = %q", AnalysisComprehensive.Label())
	}
}

func TestPriceHistory_Last(t *testing.T) {
	var empty PriceHistory
	if last := empty.Last(); last.Close != 0 {
		t.Errorf("empty Last() = %+v", last)
	}

	h := PriceHistory{
		{Close: 100},
		{Close: 105},
	}
	if h.Last().Close != 105 {
		t.Errorf("Last().Close = %v", h.Last().Close)
	}
}

func TestSessionState_HasTicker(t *testing.T) {
	state := &SessionState{Watchlist: []string{"AAPL", "TCS.NS"}}

	if !state.HasTicker("AAPL") {
		t.Error("HasTicker(AAPL) = false")
	}
	if state.HasTicker("TSLA") {
		t.Error("HasTicker(TSLA) = true")
	}
}
