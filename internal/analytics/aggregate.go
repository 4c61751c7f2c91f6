package analytics

import (
	"sort"
	"time"

	"daytrade-tracker/internal/models"
)

// GroupStats holds the per-group aggregates shared by the ticker and
// calendar-bucket views.
type GroupStats struct {
	Trades     int
	TotalPL    float64
	Wins       int
	WinRate    float64 // percent
	AvgWin     float64
	AvgLoss    float64 // negative or zero
	BestTrade  float64
	WorstTrade float64
	LastTraded time.Time
}

// TickerStats are per-ticker aggregates, ranked by total P&L when
// returned from AggregateByTicker.
type TickerStats struct {
	Ticker string
	GroupStats
}

// BucketStats are per-calendar-bucket aggregates in chronological order.
type BucketStats struct {
	Bucket string
	GroupStats
}

// AggregateByTicker groups trades by ticker and computes per-group stats,
// sorted by total P&L descending. Drives the stock search and heatmap
// sizing views.
func AggregateByTicker(trades []models.Trade) []TickerStats {
	groups := make(map[string][]models.Trade)
	for _, t := range Valid(trades) {
		groups[t.Ticker] = append(groups[t.Ticker], t)
	}

	stats := make([]TickerStats, 0, len(groups))
	for ticker, group := range groups {
		stats = append(stats, TickerStats{Ticker: ticker, GroupStats: groupStats(group)})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalPL != stats[j].TotalPL {
			return stats[i].TotalPL > stats[j].TotalPL
		}
		return stats[i].Ticker < stats[j].Ticker
	})
	return stats
}

// AggregateByBucket groups trades by calendar bucket (week/month/year,
// plus day for the calendar view) in chronological order.
func AggregateByBucket(trades []models.Trade, g Granularity) []BucketStats {
	groups := make(map[string][]models.Trade)
	for _, t := range Valid(trades) {
		key := BucketKey(t.Timestamp, g)
		groups[key] = append(groups[key], t)
	}

	stats := make([]BucketStats, 0, len(groups))
	for bucket, group := range groups {
		stats = append(stats, BucketStats{Bucket: bucket, GroupStats: groupStats(group)})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Bucket < stats[j].Bucket })
	return stats
}

func groupStats(group []models.Trade) GroupStats {
	s := GroupStats{Trades: len(group)}
	if len(group) > 0 {
		s.BestTrade = group[0].RealizedPL
		s.WorstTrade = group[0].RealizedPL
	}
	var winSum, lossSum float64
	var losses int
	for _, t := range group {
		s.TotalPL += t.RealizedPL
		if t.RealizedPL > 0 {
			s.Wins++
			winSum += t.RealizedPL
		} else if t.RealizedPL < 0 {
			losses++
			lossSum += t.RealizedPL
		}
		if t.RealizedPL > s.BestTrade {
			s.BestTrade = t.RealizedPL
		}
		if t.RealizedPL < s.WorstTrade {
			s.WorstTrade = t.RealizedPL
		}
		if t.Timestamp.After(s.LastTraded) {
			s.LastTraded = t.Timestamp
		}
	}
	if s.Trades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Trades) * 100
	}
	if s.Wins > 0 {
		s.AvgWin = winSum / float64(s.Wins)
	}
	if losses > 0 {
		s.AvgLoss = lossSum / float64(losses)
	}
	return s
}
