package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"daytrade-tracker/internal/models"
)

func mustTrade(t *testing.T, ticker string, dir models.Direction, qty int, entry, exit float64, ts time.Time) models.Trade {
	t.Helper()
	trade, err := models.NewTrade(ticker, dir, qty, entry, exit, ts, "")
	if err != nil {
		t.Fatalf("NewTrade: %v", err)
	}
	return *trade
}

func day(yearDay int, hour int) time.Time {
	return time.Date(2025, 1, 1, hour, 0, 0, 0, time.Local).AddDate(0, 0, yearDay)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil, 10000)
	if !reflect.DeepEqual(m, PerformanceMetrics{}) {
		t.Errorf("empty input should yield all-zero metrics, got %+v", m)
	}

	// Negative capital must not change the empty-input law.
	m = ComputeMetrics([]models.Trade{}, -500)
	if !reflect.DeepEqual(m, PerformanceMetrics{}) {
		t.Errorf("empty input with negative capital should yield zero metrics, got %+v", m)
	}
}

func TestComputeMetricsThreeTrades(t *testing.T) {
	// Three long AAPL trades: +500, -250, +1000.
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 100, 150, 155, day(0, 10)),
		mustTrade(t, "AAPL", models.Long, 50, 150, 145, day(1, 10)),
		mustTrade(t, "AAPL", models.Long, 100, 100, 110, day(2, 10)),
	}

	m := ComputeMetrics(trades, 10000)

	if m.TotalPL != 1250 {
		t.Errorf("TotalPL = %v, want 1250", m.TotalPL)
	}
	if m.WinCount != 2 {
		t.Errorf("WinCount = %v, want 2", m.WinCount)
	}
	if math.Abs(m.WinRate-200.0/3) > 1e-9 {
		t.Errorf("WinRate = %v, want 66.67", m.WinRate)
	}
	if m.TradeCount != 3 || m.TradingDays != 3 {
		t.Errorf("TradeCount/TradingDays = %d/%d, want 3/3", m.TradeCount, m.TradingDays)
	}
	// Walk: +500 (peak 500), -250 (drawdown 250), +1000.
	if m.MaxDrawdown != 250 {
		t.Errorf("MaxDrawdown = %v, want 250", m.MaxDrawdown)
	}
	// 1500 / 250.
	if math.Abs(m.ProfitFactor-6) > 1e-9 {
		t.Errorf("ProfitFactor = %v, want 6", m.ProfitFactor)
	}
	// Single month, positive.
	if m.Consistency != 100 {
		t.Errorf("Consistency = %v, want 100", m.Consistency)
	}
}

func TestComputeMetricsInvalidTimestampsExcluded(t *testing.T) {
	valid := []models.Trade{
		mustTrade(t, "MSFT", models.Long, 10, 100, 110, day(0, 10)),
		mustTrade(t, "MSFT", models.Long, 10, 100, 90, day(1, 10)),
	}
	dirty := append([]models.Trade{
		{ID: "bad1", Ticker: "MSFT", RealizedPL: 9999},                        // zero timestamp
		{ID: "bad2", Ticker: "MSFT", Timestamp: day(2, 10), RealizedPL: math.NaN()}, // non-finite PL
	}, valid...)

	if got, want := ComputeMetrics(dirty, 5000), ComputeMetrics(valid, 5000); !reflect.DeepEqual(got, want) {
		t.Errorf("metrics over dirty collection differ from valid subset:\n got %+v\nwant %+v", got, want)
	}
}

func TestComputeMetricsAllWins(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "NVDA", models.Long, 10, 100, 110, day(0, 10)),
		mustTrade(t, "NVDA", models.Long, 10, 100, 120, day(1, 10)),
	}
	m := ComputeMetrics(trades, 10000)
	if m.ProfitFactor != profitFactorCap {
		t.Errorf("ProfitFactor with no losses = %v, want sentinel %v", m.ProfitFactor, profitFactorCap)
	}
	if m.MaxDrawdown != 0 {
		t.Errorf("MaxDrawdown for all-wins = %v, want 0", m.MaxDrawdown)
	}
	if m.WinRate != 100 {
		t.Errorf("WinRate = %v, want 100", m.WinRate)
	}
}

func TestComputeMetricsAllLosses(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "TSLA", models.Long, 10, 100, 90, day(0, 10)),
		mustTrade(t, "TSLA", models.Long, 10, 100, 80, day(1, 10)),
	}
	m := ComputeMetrics(trades, 10000)
	if m.ProfitFactor != 0 {
		t.Errorf("ProfitFactor for all-losses = %v, want 0", m.ProfitFactor)
	}
	if m.WinRate != 0 {
		t.Errorf("WinRate = %v, want 0", m.WinRate)
	}
	if m.MaxDrawdown != 300 {
		t.Errorf("MaxDrawdown = %v, want 300", m.MaxDrawdown)
	}
	if m.Consistency != 0 {
		t.Errorf("Consistency = %v, want 0", m.Consistency)
	}
	assertFinite(t, m)
}

func TestComputeMetricsSingleTrade(t *testing.T) {
	trades := []models.Trade{mustTrade(t, "AMD", models.Short, 10, 50, 40, day(0, 14))}
	m := ComputeMetrics(trades, 10000)
	if m.TotalPL != 100 {
		t.Errorf("TotalPL = %v, want 100 for short 10@50->40", m.TotalPL)
	}
	// Sub-day span clamps to one day: 100 * 365.25 annualized.
	if math.Abs(m.AvgAnnualPL-100*calendarDaysPerYear) > 1e-6 {
		t.Errorf("AvgAnnualPL = %v, want %v", m.AvgAnnualPL, 100*calendarDaysPerYear)
	}
	if m.DailyVolatility != 0 {
		t.Errorf("DailyVolatility for one day = %v, want 0", m.DailyVolatility)
	}
	// Zero variance: ratio must degrade to 0, not NaN.
	if m.SharpeRatio != 0 {
		t.Errorf("SharpeRatio with zero variance = %v, want 0", m.SharpeRatio)
	}
	assertFinite(t, m)
}

func TestComputeMetricsZeroCapital(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "SPY", models.Long, 1, 400, 410, day(0, 10)),
		mustTrade(t, "SPY", models.Long, 1, 400, 390, day(1, 10)),
	}
	for _, capital := range []float64{0, -10000} {
		m := ComputeMetrics(trades, capital)
		if m.AnnualReturnRate != 0 {
			t.Errorf("AnnualReturnRate with capital %v = %v, want 0", capital, m.AnnualReturnRate)
		}
		if m.SharpeRatio != 0 {
			t.Errorf("SharpeRatio with capital %v = %v, want 0", capital, m.SharpeRatio)
		}
		assertFinite(t, m)
	}
}

func TestComputeMetricsConsistency(t *testing.T) {
	// Jan positive, Feb negative, Mar positive: 2 of 3 months.
	trades := []models.Trade{
		mustTrade(t, "QQQ", models.Long, 1, 100, 150, time.Date(2025, 1, 10, 10, 0, 0, 0, time.Local)),
		mustTrade(t, "QQQ", models.Long, 1, 100, 60, time.Date(2025, 2, 10, 10, 0, 0, 0, time.Local)),
		mustTrade(t, "QQQ", models.Long, 1, 100, 130, time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)),
	}
	m := ComputeMetrics(trades, 10000)
	if math.Abs(m.Consistency-200.0/3) > 1e-9 {
		t.Errorf("Consistency = %v, want 66.67", m.Consistency)
	}
}

func TestComputeMetricsIdempotent(t *testing.T) {
	trades := []models.Trade{
		mustTrade(t, "AAPL", models.Long, 100, 150, 155, day(0, 10)),
		mustTrade(t, "AAPL", models.Long, 50, 150, 145, day(1, 10)),
	}
	a := ComputeMetrics(trades, 25000)
	b := ComputeMetrics(trades, 25000)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated computation differs:\n a=%+v\n b=%+v", a, b)
	}
}

func assertFinite(t *testing.T, m PerformanceMetrics) {
	t.Helper()
	v := reflect.ValueOf(m)
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.Float64 {
			continue
		}
		if math.IsNaN(f.Float()) || math.IsInf(f.Float(), 0) {
			t.Errorf("field %s is not finite: %v", v.Type().Field(i).Name, f.Float())
		}
	}
}
