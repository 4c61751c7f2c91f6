package analytics

import (
	"fmt"
	"sync"
	"time"

	"daytrade-tracker/internal/models"
)

// Engine wraps the pure computations with memoization keyed on a version
// counter for the trade collection plus the parameter tuple. Replacing
// the trade set bumps the version and drops every cached result; cached
// values are never mutated after being returned, so callers may hold
// references across recomputations.
type Engine struct {
	mu      sync.Mutex
	version uint64
	trades  []models.Trade
	cache   map[string]any
}

// Version reports how many times the trade collection has been replaced.
// Callers can use it to detect staleness of results they are holding.
func (e *Engine) Version() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version
}

// NewEngine creates an engine with an empty trade collection.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]any)}
}

// SetTrades replaces the trade collection. The slice is copied so later
// caller mutations cannot poison cached results.
func (e *Engine) SetTrades(trades []models.Trade) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.trades = make([]models.Trade, len(trades))
	copy(e.trades, trades)
	e.version++
	e.cache = make(map[string]any)
}

// Metrics returns memoized summary statistics.
func (e *Engine) Metrics(initialCapital float64) PerformanceMetrics {
	key := fmt.Sprintf("metrics|%g", initialCapital)
	return memo(e, key, func(trades []models.Trade) PerformanceMetrics {
		return ComputeMetrics(trades, initialCapital)
	})
}

// Series returns the memoized cumulative curve for the given window.
func (e *Engine) Series(r TimeRange, now time.Time, mode BaselineMode, initialCapital float64) Series {
	key := fmt.Sprintf("series|%s|%d|%d|%g", r, now.UnixNano(), mode, initialCapital)
	return memo(e, key, func(trades []models.Trade) Series {
		return BuildSeries(trades, r, now, mode, initialCapital)
	})
}

// Projections compounds the historical annual return rate forward. The
// rate comes from Metrics, keeping the capital-relative-percentage form
// end to end.
func (e *Engine) Projections(initialCapital, monthlyContribution float64, conservative bool) []ProjectionPeriod {
	rate := e.Metrics(initialCapital).AnnualReturnRate
	key := fmt.Sprintf("projection|%g|%g|%g|%t", rate, initialCapital, monthlyContribution, conservative)
	return memo(e, key, func([]models.Trade) []ProjectionPeriod {
		return ProjectPortfolio(rate, initialCapital, monthlyContribution, conservative)
	})
}

// Patterns returns the memoized heuristic findings for the four weeks
// ending at ref.
func (e *Engine) Patterns(ref time.Time) []Pattern {
	key := fmt.Sprintf("patterns|%d", ref.UnixNano())
	return memo(e, key, func(trades []models.Trade) []Pattern {
		return DetectPatterns(trades, ref)
	})
}

// Tickers returns memoized per-ticker aggregates.
func (e *Engine) Tickers() []TickerStats {
	return memo(e, "tickers", AggregateByTicker)
}

// Buckets returns memoized per-bucket aggregates.
func (e *Engine) Buckets(g Granularity) []BucketStats {
	key := fmt.Sprintf("buckets|%d", g)
	return memo(e, key, func(trades []models.Trade) []BucketStats {
		return AggregateByBucket(trades, g)
	})
}

// memo looks up key in the engine's cache, computing and storing the
// value on a miss. The cache is cleared whenever the collection version
// changes, so keys only need to encode parameters.
func memo[T any](e *Engine, key string, compute func([]models.Trade) T) T {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.cache[key]; ok {
		return cached.(T)
	}
	value := compute(e.trades)
	e.cache[key] = value
	return value
}
