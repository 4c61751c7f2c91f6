// Package store provides data persistence for trades and journal notes.
package store

import (
	"context"
	"time"

	"daytrade-tracker/internal/models"
)

// DataStore defines the persistence interface. The analytics engine
// never touches the store directly: callers fetch trades and hand the
// slice to the engine.
type DataStore interface {
	SaveTrade(ctx context.Context, trade *models.Trade) error
	SaveTrades(ctx context.Context, trades []models.Trade) error
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	SaveJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	GetJournal(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error)

	Close() error
}

// TradeFilter represents filters for querying trades. Zero values mean
// "no constraint".
type TradeFilter struct {
	Ticker    string
	Direction models.Direction
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// JournalFilter represents filters for querying journal entries.
type JournalFilter struct {
	TradeID   string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
