package analytics

import (
	"math"
	"testing"
	"time"

	"daytrade-tracker/internal/models"
)

func TestBuildSeriesNoTrades(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	s := BuildSeries(nil, Range7D, now, BaselineZero, 0)
	if len(s.Points) != 1 {
		t.Fatalf("expected only the origin point, got %d points", len(s.Points))
	}
	if s.Points[0].Value != 0 {
		t.Errorf("origin value = %v, want 0", s.Points[0].Value)
	}
	if !s.Points[0].Date.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("origin date = %v, want window start", s.Points[0].Date)
	}

	p := BuildSeries(nil, Range7D, now, BaselinePortfolio, 10000)
	if p.Points[0].Value != 10000 {
		t.Errorf("portfolio origin = %v, want initial capital", p.Points[0].Value)
	}
	if p.Stats.Change != 0 || !p.Stats.IsPositive {
		t.Errorf("no-trade stats should report zero positive change, got %+v", p.Stats)
	}
}

func TestBuildSeriesZeroBaseline(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	trades := []models.Trade{
		// Before the 7d window: must not affect zero-baseline running sum.
		mustTrade(t, "AAPL", models.Long, 10, 100, 150, now.AddDate(0, 0, -20)),
		mustTrade(t, "AAPL", models.Long, 10, 100, 120, now.AddDate(0, 0, -5)),
		mustTrade(t, "AAPL", models.Long, 10, 100, 90, now.AddDate(0, 0, -2)),
	}

	s := BuildSeries(trades, Range7D, now, BaselineZero, 0)
	if len(s.Points) != 3 {
		t.Fatalf("expected origin + 2 in-window points, got %d", len(s.Points))
	}
	if s.Points[0].Value != 0 {
		t.Errorf("zero-baseline origin = %v, want 0", s.Points[0].Value)
	}
	if s.Points[1].Value != 200 || s.Points[2].Value != 100 {
		t.Errorf("running values = %v, %v; want 200, 100", s.Points[1].Value, s.Points[2].Value)
	}
	if s.Stats.CurrentValue != 100 || s.Stats.Change != 100 {
		t.Errorf("stats = %+v, want current 100 change 100", s.Stats)
	}
}

func TestBuildSeriesPortfolioCarriesPriorPL(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 10, 100, 150, now.AddDate(0, 0, -20)), // +500 before window
		mustTrade(t, "AAPL", models.Long, 10, 100, 120, now.AddDate(0, 0, -5)),  // +200 in window
	}

	s := BuildSeries(trades, Range7D, now, BaselinePortfolio, 10000)
	if s.Points[0].Value != 10500 {
		t.Errorf("window-start value = %v, want 10500 (capital + prior P&L)", s.Points[0].Value)
	}
	if s.Stats.CurrentValue != 10700 {
		t.Errorf("current value = %v, want 10700", s.Stats.CurrentValue)
	}
	if s.Stats.Change != 200 {
		t.Errorf("change = %v, want 200 (vs window start, not capital)", s.Stats.Change)
	}
	// Percent change against the period-start value, not initial capital.
	want := 200.0 / 10500 * 100
	if math.Abs(s.Stats.ChangePercent-want) > 1e-9 {
		t.Errorf("changePercent = %v, want %v", s.Stats.ChangePercent, want)
	}
}

func TestBuildSeriesMonotonicDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	// Deliberately unsorted input.
	trades := []models.Trade{
		mustTrade(t, "B", models.Long, 1, 10, 20, now.AddDate(0, 0, -1)),
		mustTrade(t, "A", models.Long, 1, 10, 20, now.AddDate(0, 0, -6)),
		mustTrade(t, "C", models.Long, 1, 10, 20, now.AddDate(0, 0, -3)),
	}
	s := BuildSeries(trades, Range7D, now, BaselineZero, 0)
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Date.Before(s.Points[i-1].Date) {
			t.Fatalf("dates not monotonic at %d: %v after %v", i, s.Points[i].Date, s.Points[i-1].Date)
		}
	}
}

func TestBuildSeriesRangeAll(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	earliest := now.AddDate(-2, 0, 0)
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 1, 100, 110, earliest),
		mustTrade(t, "AAPL", models.Long, 1, 100, 120, now.AddDate(0, 0, -1)),
	}
	s := BuildSeries(trades, RangeAll, now, BaselineZero, 0)
	if !s.Points[0].Date.Equal(earliest) {
		t.Errorf("all-range origin = %v, want earliest trade %v", s.Points[0].Date, earliest)
	}
	if s.Stats.CurrentValue != 30 {
		t.Errorf("current = %v, want 30", s.Stats.CurrentValue)
	}
}

func TestBuildSeriesToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 1, 100, 110, now.Add(-2*time.Hour)),
		mustTrade(t, "AAPL", models.Long, 1, 100, 120, now.AddDate(0, 0, -1)), // yesterday
	}
	s := BuildSeries(trades, RangeToday, now, BaselineZero, 0)
	if len(s.Points) != 2 {
		t.Fatalf("expected origin + today's trade, got %d points", len(s.Points))
	}
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	if !s.Points[0].Date.Equal(midnight) {
		t.Errorf("today window starts at %v, want local midnight %v", s.Points[0].Date, midnight)
	}
}

func TestBuildSeriesNegativeCapitalClamped(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)
	trades := []models.Trade{mustTrade(t, "AAPL", models.Long, 1, 100, 110, now.Add(-time.Hour))}

	s := BuildSeries(trades, Range7D, now, BaselinePortfolio, -5000)
	if s.Points[0].Value != 0 {
		t.Errorf("negative capital should clamp to 0, origin = %v", s.Points[0].Value)
	}
	if s.Stats.ChangePercent != 0 {
		t.Errorf("zero reference must yield 0 percent, got %v", s.Stats.ChangePercent)
	}
}
