package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"daytrade-tracker/internal/models"
)

// Properties pinned down here:
// - maxDrawdown >= 0 for any trade collection
// - series point dates are non-decreasing for any input and window
// - 0 <= winRate <= 100 always
// - metrics are idempotent over an unmutated collection

var propertyNow = time.Date(2025, 6, 15, 16, 0, 0, 0, time.Local)

// tradeGen generates valid trades with timestamps spread over the year
// before propertyNow.
func tradeGen() gopter.Gen {
	tickers := []string{"AAPL", "MSFT", "TSLA", "NVDA", "SPY"}
	return gopter.CombineGens(
		gen.IntRange(0, len(tickers)-1),
		gen.Bool(),
		gen.IntRange(1, 1000),
		gen.Float64Range(1, 500),
		gen.Float64Range(1, 500),
		gen.Int64Range(0, 365*24*3600),
	).Map(func(values []interface{}) models.Trade {
		direction := models.Long
		if values[1].(bool) {
			direction = models.Short
		}
		ts := propertyNow.Add(-time.Duration(values[5].(int64)) * time.Second)
		trade, _ := models.NewTrade(
			tickers[values[0].(int)],
			direction,
			values[2].(int),
			values[3].(float64),
			values[4].(float64),
			ts,
			"",
		)
		return *trade
	})
}

func tradeSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, tradeGen())
}

func TestAnalyticsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("max drawdown is never negative", prop.ForAll(
		func(trades []models.Trade) bool {
			return ComputeMetrics(trades, 10000).MaxDrawdown >= 0
		},
		tradeSliceGen(50),
	))

	properties.Property("win rate stays within 0..100", prop.ForAll(
		func(trades []models.Trade) bool {
			wr := ComputeMetrics(trades, 10000).WinRate
			return wr >= 0 && wr <= 100
		},
		tradeSliceGen(50),
	))

	properties.Property("series dates are non-decreasing", prop.ForAll(
		func(trades []models.Trade, rangeIdx int, portfolio bool) bool {
			mode := BaselineZero
			if portfolio {
				mode = BaselinePortfolio
			}
			s := BuildSeries(trades, TimeRanges[rangeIdx], propertyNow, mode, 10000)
			for i := 1; i < len(s.Points); i++ {
				if s.Points[i].Date.Before(s.Points[i-1].Date) {
					return false
				}
			}
			return len(s.Points) >= 1
		},
		tradeSliceGen(50),
		gen.IntRange(0, len(TimeRanges)-1),
		gen.Bool(),
	))

	properties.Property("metrics are idempotent", prop.ForAll(
		func(trades []models.Trade) bool {
			return reflect.DeepEqual(
				ComputeMetrics(trades, 10000),
				ComputeMetrics(trades, 10000),
			)
		},
		tradeSliceGen(30),
	))

	properties.Property("consistency stays within 0..100", prop.ForAll(
		func(trades []models.Trade) bool {
			c := ComputeMetrics(trades, 10000).Consistency
			return c >= 0 && c <= 100
		},
		tradeSliceGen(50),
	))

	properties.Property("pattern confidences stay within 0..1 and capped at five", prop.ForAll(
		func(trades []models.Trade) bool {
			findings := DetectPatterns(trades, propertyNow)
			if len(findings) > 5 {
				return false
			}
			for _, p := range findings {
				if p.Confidence < 0 || p.Confidence > 1 {
					return false
				}
			}
			return true
		},
		tradeSliceGen(80),
	))

	properties.TestingRun(t)
}
