package models

import (
	"testing"
	"time"
)

func TestRealizedPL(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		quantity  int
		entry     float64
		exit      float64
		want      float64
	}{
		{"long winner", Long, 100, 150, 155, 500},
		{"long loser", Long, 50, 150, 145, -250},
		{"short winner", Short, 10, 50, 40, 100},
		{"short loser", Short, 10, 50, 60, -100},
		{"flat", Long, 100, 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RealizedPL(tt.direction, tt.quantity, tt.entry, tt.exit)
			if got != tt.want {
				t.Errorf("RealizedPL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewTrade(t *testing.T) {
	ts := time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local)

	trade, err := NewTrade("aapl", Long, 100, 150, 155, ts, "breakout")
	if err != nil {
		t.Fatalf("NewTrade() error = %v", err)
	}
	if trade.Ticker != "AAPL" {
		t.Errorf("ticker not normalized: %q", trade.Ticker)
	}
	if trade.RealizedPL != 500 {
		t.Errorf("RealizedPL = %v, want 500", trade.RealizedPL)
	}
	if trade.ID == "" {
		t.Error("trade ID is empty")
	}
	if !trade.Valid() {
		t.Error("new trade should be valid")
	}
}

func TestNewTradeValidation(t *testing.T) {
	ts := time.Now()

	tests := []struct {
		name      string
		ticker    string
		direction Direction
		quantity  int
		entry     float64
		exit      float64
		timestamp time.Time
	}{
		{"empty ticker", "", Long, 100, 150, 155, ts},
		{"bad direction", "AAPL", Direction("buy"), 100, 150, 155, ts},
		{"zero quantity", "AAPL", Long, 0, 150, 155, ts},
		{"negative quantity", "AAPL", Long, -5, 150, 155, ts},
		{"zero entry", "AAPL", Long, 100, 0, 155, ts},
		{"negative exit", "AAPL", Long, 100, 150, -1, ts},
		{"zero timestamp", "AAPL", Long, 100, 150, 155, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTrade(tt.ticker, tt.direction, tt.quantity, tt.entry, tt.exit, tt.timestamp, ""); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestTradeIDUniqueness(t *testing.T) {
	ts := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTradeID(ts)
		if seen[id] {
			t.Fatalf("duplicate trade ID after %d generations: %s", i, id)
		}
		seen[id] = true
	}
}

func TestTradeValid(t *testing.T) {
	valid := Trade{Timestamp: time.Now(), RealizedPL: 100}
	if !valid.Valid() {
		t.Error("trade with timestamp and finite PL should be valid")
	}

	noTime := Trade{RealizedPL: 100}
	if noTime.Valid() {
		t.Error("trade without timestamp should be invalid")
	}
}
