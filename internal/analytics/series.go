package analytics

import (
	"math"
	"time"

	"daytrade-tracker/internal/models"
)

// TimeRange selects the trailing window for the cumulative series.
type TimeRange string

const (
	RangeToday TimeRange = "today"
	Range7D    TimeRange = "7d"
	Range1M    TimeRange = "1m"
	Range3M    TimeRange = "3m"
	Range1Y    TimeRange = "1y"
	RangeAll   TimeRange = "all"
)

// TimeRanges lists the supported window selectors in display order.
var TimeRanges = []TimeRange{RangeToday, Range7D, Range1M, Range3M, Range1Y, RangeAll}

// BaselineMode controls what the series accumulates from.
type BaselineMode int

const (
	// BaselineZero starts the running sum at 0: trading P&L only.
	BaselineZero BaselineMode = iota
	// BaselinePortfolio starts from initial capital plus all P&L realized
	// before the window, producing a portfolio-value curve.
	BaselinePortfolio
)

// SeriesPoint is one point on the equity/P&L curve.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// SeriesStats are the change statistics derived from a built series.
// ChangePercent is measured against the window-start value, not the
// static initial capital, so periodic percentage changes stay honest.
type SeriesStats struct {
	CurrentValue  float64
	Change        float64
	ChangePercent float64
	IsPositive    bool
}

// Series is the ordered cumulative curve plus its summary stats.
type Series struct {
	Points []SeriesPoint
	Stats  SeriesStats
}

// BuildSeries produces the cumulative curve for the selected window. The
// result always begins with an explicit origin point at the window start,
// even when no trade falls exactly there, and point dates never decrease.
func BuildSeries(trades []models.Trade, r TimeRange, now time.Time, mode BaselineMode, initialCapital float64) Series {
	initialCapital = clampNonNegative(initialCapital)
	valid := sortedByTime(trades)

	start := windowStart(valid, r, now)

	base := 0.0
	if mode == BaselinePortfolio {
		base = initialCapital
		for _, t := range valid {
			if t.Timestamp.Before(start) {
				base += t.RealizedPL
			}
		}
	}

	points := []SeriesPoint{{Date: start, Value: base}}
	running := base
	for _, t := range valid {
		if t.Timestamp.Before(start) {
			continue
		}
		running += t.RealizedPL
		points = append(points, SeriesPoint{Date: t.Timestamp, Value: running})
	}

	last := points[len(points)-1].Value
	change := last - base
	changePercent := 0.0
	if base != 0 {
		changePercent = change / math.Abs(base) * 100
	}

	return Series{
		Points: points,
		Stats: SeriesStats{
			CurrentValue:  last,
			Change:        change,
			ChangePercent: changePercent,
			IsPositive:    change >= 0,
		},
	}
}

// windowStart resolves the window's opening instant from "now" and the
// selector. For RangeAll the window opens at the earliest valid trade.
func windowStart(sorted []models.Trade, r TimeRange, now time.Time) time.Time {
	switch r {
	case RangeToday:
		return startOfDay(now)
	case Range7D:
		return now.AddDate(0, 0, -7)
	case Range1M:
		return now.AddDate(0, -1, 0)
	case Range3M:
		return now.AddDate(0, -3, 0)
	case Range1Y:
		return now.AddDate(-1, 0, 0)
	case RangeAll:
		if len(sorted) > 0 {
			return sorted[0].Timestamp
		}
		return now
	default:
		if len(sorted) > 0 {
			return sorted[0].Timestamp
		}
		return now
	}
}
