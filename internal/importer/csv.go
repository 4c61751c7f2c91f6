// Package importer converts external trade exports into valid Trade
// records. Rows that cannot be coerced are reported and skipped; they
// never reach the store or the analytics engine.
package importer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"daytrade-tracker/internal/models"
)

// tradeRow mirrors one CSV line. All fields are read as strings so a
// single malformed cell poisons only its own row.
type tradeRow struct {
	Ticker     string `csv:"ticker"`
	Direction  string `csv:"direction"`
	Quantity   string `csv:"quantity"`
	EntryPrice string `csv:"entry_price"`
	ExitPrice  string `csv:"exit_price"`
	Timestamp  string `csv:"timestamp"`
	Notes      string `csv:"notes"`
}

// RowError describes a skipped row.
type RowError struct {
	Line   int // 1-based data row number, excluding the header
	Reason string
}

// Result holds the outcome of an import: coerced trades plus the rows
// that were skipped.
type Result struct {
	Trades  []models.Trade
	Skipped []RowError
}

// timestampLayouts are tried in order when parsing the timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ReadFile imports trades from a CSV file on disk.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read imports trades from CSV data. The header row must name the
// columns: ticker, direction, quantity, entry_price, exit_price,
// timestamp, and optionally notes.
func Read(r io.Reader) (*Result, error) {
	var rows []*tradeRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	result := &Result{}
	for i, row := range rows {
		trade, err := coerce(row)
		if err != nil {
			result.Skipped = append(result.Skipped, RowError{Line: i + 1, Reason: err.Error()})
			continue
		}
		result.Trades = append(result.Trades, *trade)
	}
	return result, nil
}

// coerce converts a raw row into a Trade, running the same validation
// manual entry goes through.
func coerce(row *tradeRow) (*models.Trade, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q", row.Quantity)
	}
	entry, err := strconv.ParseFloat(strings.TrimSpace(row.EntryPrice), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid entry price %q", row.EntryPrice)
	}
	exit, err := strconv.ParseFloat(strings.TrimSpace(row.ExitPrice), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid exit price %q", row.ExitPrice)
	}
	ts, err := parseTimestamp(row.Timestamp)
	if err != nil {
		return nil, err
	}

	direction := models.Direction(strings.ToLower(strings.TrimSpace(row.Direction)))
	return models.NewTrade(row.Ticker, direction, quantity, entry, exit, ts, row.Notes)
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}
