package http

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{5800, "$58.00"},
		{-5800, "-$58.00"},
		{1245000, "$12,450.00"},
		{-1245000, "-$12,450.00"},
		{100000000, "$1,000,000.00"},
		{123456789, "$1,234,567.89"},
	}
	for _, tt := range tests {
		if got := formatUSD(tt.cents); got != tt.want {
			t.Errorf("formatUSD(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseYearMonth(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		url       string
		wantYear  int
		wantMonth int
	}{
		{"defaults", "/api/calendar", 2024, 6},
		{"explicit", "/api/calendar?year=2023&month=12", 2023, 12},
		{"month out of range", "/api/calendar?month=13", 2024, 6},
		{"malformed month", "/api/calendar?month=soon", 2024, 6},
		{"year only", "/api/calendar?year=2020", 2020, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			year, month := parseYearMonth(r, now)
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("parseYearMonth = %d, %d; want %d, %d", year, month, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Starbucks  ", "Starbucks"},
		{"line\x00break", "linebreak"},
		{"keep\ttabs", "keep\ttabs"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
