// Package models defines the core domain entities for the trade journal.
package models

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Direction indicates whether a trade was opened long or short.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// Trade represents a closed round-trip trade. Trades are immutable once
// created; RealizedPL is derived at creation time and treated as
// authoritative afterwards, even if price fields are later edited by hand
// in the database.
type Trade struct {
	ID         string
	Ticker     string
	Direction  Direction
	Quantity   int
	EntryPrice float64
	ExitPrice  float64
	Timestamp  time.Time
	RealizedPL float64
	Notes      string
}

// NewTrade creates a trade, normalizing the ticker to uppercase and
// deriving RealizedPL from direction, quantity and prices.
func NewTrade(ticker string, direction Direction, quantity int, entryPrice, exitPrice float64, timestamp time.Time, notes string) (*Trade, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("ticker is required")
	}
	if direction != Long && direction != Short {
		return nil, fmt.Errorf("invalid direction: %q (must be %q or %q)", direction, Long, Short)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if entryPrice <= 0 || exitPrice <= 0 {
		return nil, fmt.Errorf("prices must be positive, got entry=%.2f exit=%.2f", entryPrice, exitPrice)
	}
	if timestamp.IsZero() {
		return nil, fmt.Errorf("timestamp is required")
	}

	return &Trade{
		ID:         NewTradeID(timestamp),
		Ticker:     ticker,
		Direction:  direction,
		Quantity:   quantity,
		EntryPrice: entryPrice,
		ExitPrice:  exitPrice,
		Timestamp:  timestamp,
		RealizedPL: RealizedPL(direction, quantity, entryPrice, exitPrice),
		Notes:      notes,
	}, nil
}

// RealizedPL computes the round-trip P&L for a trade:
// (exit - entry) * qty for longs, (entry - exit) * qty for shorts.
func RealizedPL(direction Direction, quantity int, entryPrice, exitPrice float64) float64 {
	if direction == Short {
		return (entryPrice - exitPrice) * float64(quantity)
	}
	return (exitPrice - entryPrice) * float64(quantity)
}

// NewTradeID generates a unique trade ID from the timestamp plus a random
// suffix. Uniqueness matters, format does not.
func NewTradeID(timestamp time.Time) string {
	return fmt.Sprintf("T%d-%06d", timestamp.UnixNano(), rand.Intn(1000000))
}

// Valid reports whether a trade can enter the analytics pipeline: a
// non-zero timestamp and a finite RealizedPL.
func (t *Trade) Valid() bool {
	if t.Timestamp.IsZero() {
		return false
	}
	return !math.IsNaN(t.RealizedPL) && !math.IsInf(t.RealizedPL, 0)
}
