package analytics

import (
	"testing"
	"time"

	"daytrade-tracker/internal/models"
)

func TestAggregateByTicker(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 100, 150, 155, day(0, 10)), // +500
		mustTrade(t, "AAPL", models.Long, 50, 150, 145, day(1, 11)),  // -250
		mustTrade(t, "MSFT", models.Long, 10, 300, 310, day(2, 12)),  // +100
		mustTrade(t, "TSLA", models.Short, 10, 200, 210, day(3, 13)), // -100
	}

	stats := AggregateByTicker(trades)
	if len(stats) != 3 {
		t.Fatalf("expected 3 tickers, got %d", len(stats))
	}

	// Ranked by total P&L descending.
	if stats[0].Ticker != "AAPL" || stats[1].Ticker != "MSFT" || stats[2].Ticker != "TSLA" {
		t.Fatalf("ranking wrong: %s, %s, %s", stats[0].Ticker, stats[1].Ticker, stats[2].Ticker)
	}

	aapl := stats[0]
	if aapl.Trades != 2 || aapl.TotalPL != 250 || aapl.Wins != 1 {
		t.Errorf("AAPL stats = %+v", aapl)
	}
	if aapl.WinRate != 50 {
		t.Errorf("AAPL win rate = %v, want 50", aapl.WinRate)
	}
	if aapl.AvgWin != 500 || aapl.AvgLoss != -250 {
		t.Errorf("AAPL avg win/loss = %v/%v, want 500/-250", aapl.AvgWin, aapl.AvgLoss)
	}
	if aapl.BestTrade != 500 || aapl.WorstTrade != -250 {
		t.Errorf("AAPL best/worst = %v/%v", aapl.BestTrade, aapl.WorstTrade)
	}
	if !aapl.LastTraded.Equal(day(1, 11)) {
		t.Errorf("AAPL last traded = %v, want %v", aapl.LastTraded, day(1, 11))
	}

	// All-loss group: best trade is the least bad loss, not zero.
	tsla := stats[2]
	if tsla.BestTrade != -100 || tsla.WorstTrade != -100 {
		t.Errorf("TSLA best/worst = %v/%v, want -100/-100", tsla.BestTrade, tsla.WorstTrade)
	}
}

func TestAggregateByBucketChronological(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 1, 100, 110, time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local)),
		mustTrade(t, "AAPL", models.Long, 1, 100, 90, time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)),
		mustTrade(t, "AAPL", models.Long, 1, 100, 120, time.Date(2025, 1, 20, 10, 0, 0, 0, time.Local)),
	}

	stats := AggregateByBucket(trades, ByMonth)
	if len(stats) != 2 {
		t.Fatalf("expected 2 month buckets, got %d", len(stats))
	}
	if stats[0].Bucket != "2025-01" || stats[1].Bucket != "2025-03" {
		t.Errorf("bucket order: %s, %s", stats[0].Bucket, stats[1].Bucket)
	}
	if stats[0].TotalPL != 10 || stats[0].Trades != 2 {
		t.Errorf("2025-01 stats = %+v", stats[0])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := AggregateByTicker(nil); len(got) != 0 {
		t.Errorf("nil input: got %d ticker groups", len(got))
	}
	if got := AggregateByBucket(nil, ByWeek); len(got) != 0 {
		t.Errorf("nil input: got %d bucket groups", len(got))
	}
}
