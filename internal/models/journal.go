package models

import "time"

// JournalEntry represents a free-text note attached to a trade or a
// trading day.
type JournalEntry struct {
	ID        string
	TradeID   string
	Date      time.Time
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
