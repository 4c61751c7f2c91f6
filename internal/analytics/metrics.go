package analytics

import (
	"math"

	"daytrade-tracker/internal/models"
)

const (
	// riskFreeRatePercent is the constant risk-free rate used in the
	// Sharpe-style ratio.
	riskFreeRatePercent = 2.0

	// profitFactorCap substitutes for infinity when a trade set has
	// winners but no losers.
	profitFactorCap = 999.0

	tradingDaysPerYear  = 252.0
	tradingDaysPerMonth = 21.0
	calendarDaysPerYear = 365.25
)

// PerformanceMetrics summarizes a trade collection. All fields are finite
// for any input, including empty, single-trade, all-win and all-loss sets.
type PerformanceMetrics struct {
	TotalPL    float64
	TradeCount int
	WinCount   int
	WinRate    float64 // percent, 0..100

	TradingDays  int     // distinct calendar days with at least one trade
	AvgDailyPL   float64 // per trading day
	AvgMonthlyPL float64
	AvgAnnualPL  float64 // simple arithmetic rate over the trade span

	// AnnualReturnRate is AvgAnnualPL expressed as a percentage of
	// initial capital. Downstream projections consume this rate, never
	// the raw dollar figure.
	AnnualReturnRate float64

	DailyVolatility   float64 // population stddev of daily P&L
	MonthlyVolatility float64
	SharpeRatio       float64
	MaxDrawdown       float64 // peak-to-trough of cumulative P&L, in currency
	ProfitFactor      float64
	Consistency       float64 // percent of traded months with positive P&L
}

// ComputeMetrics derives summary statistics over a trade collection.
// The caller applies any time-window filtering beforehand; initialCapital
// is only used to normalize return rates and is clamped at 0.
func ComputeMetrics(trades []models.Trade, initialCapital float64) PerformanceMetrics {
	initialCapital = clampNonNegative(initialCapital)

	valid := sortedByTime(trades)
	if len(valid) == 0 {
		return PerformanceMetrics{}
	}

	m := PerformanceMetrics{TradeCount: len(valid)}

	var winSum, lossSum float64
	for _, t := range valid {
		m.TotalPL += t.RealizedPL
		if t.RealizedPL > 0 {
			m.WinCount++
			winSum += t.RealizedPL
		} else if t.RealizedPL < 0 {
			lossSum += t.RealizedPL
		}
	}
	m.WinRate = float64(m.WinCount) / float64(m.TradeCount) * 100

	first := valid[0].Timestamp
	last := valid[len(valid)-1].Timestamp
	totalDays := last.Sub(first).Hours() / 24
	if totalDays < 1 {
		totalDays = 1
	}
	totalYears := totalDays / calendarDaysPerYear
	m.AvgAnnualPL = m.TotalPL / totalYears

	if initialCapital > 0 {
		m.AnnualReturnRate = m.AvgAnnualPL / initialCapital * 100
	}

	daily := BucketPL(valid, ByDay)
	m.TradingDays = len(daily)
	m.AvgDailyPL = m.TotalPL / float64(m.TradingDays)
	m.AvgMonthlyPL = m.AvgDailyPL * tradingDaysPerMonth

	m.DailyVolatility = populationStdDev(mapValues(daily))
	m.MonthlyVolatility = m.DailyVolatility * math.Sqrt(tradingDaysPerMonth)

	if initialCapital > 0 {
		annualVolPct := m.DailyVolatility * math.Sqrt(tradingDaysPerYear) / initialCapital * 100
		if annualVolPct != 0 {
			m.SharpeRatio = (m.AnnualReturnRate - riskFreeRatePercent) / annualVolPct
		}
	}

	m.MaxDrawdown = maxDrawdown(valid)

	switch {
	case lossSum != 0:
		m.ProfitFactor = winSum / math.Abs(lossSum)
	case winSum > 0:
		m.ProfitFactor = profitFactorCap
	}

	monthly := BucketPL(valid, ByMonth)
	positiveMonths := 0
	for _, pl := range monthly {
		if pl > 0 {
			positiveMonths++
		}
	}
	m.Consistency = float64(positiveMonths) / float64(len(monthly)) * 100

	return m
}

// maxDrawdown walks trades in timestamp order accumulating running P&L
// and tracking the running peak. The result is the largest peak-to-trough
// fall observed, in currency, never negative. Trades must be sorted.
func maxDrawdown(sorted []models.Trade) float64 {
	var running, peak, maxDD float64
	for _, t := range sorted {
		running += t.RealizedPL
		if running > peak {
			peak = running
		}
		if dd := peak - running; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// populationStdDev computes the population (not sample) standard
// deviation. Returns 0 for fewer than one value.
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sqSum float64
	for _, v := range values {
		d := v - mean
		sqSum += d * d
	}
	return math.Sqrt(sqSum / float64(len(values)))
}

func mapValues(m map[string]float64) []float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}
