package analytics

import (
	"fmt"
	"sort"
	"time"

	"daytrade-tracker/internal/models"
)

// PatternType classifies a heuristic finding.
type PatternType string

const (
	PatternSuccess PatternType = "success"
	PatternWarning PatternType = "warning"
	PatternDanger  PatternType = "danger"
	PatternInfo    PatternType = "info"
)

// Pattern is a confidence-scored heuristic finding over recent trades.
// Patterns are ephemeral: recomputed on every input change, never stored.
type Pattern struct {
	Type           PatternType
	Title          string
	Description    string
	Confidence     float64 // 0..1
	Recommendation string
}

// Detector thresholds. These are fixed heuristics, not user-configurable:
// changing any of them changes the product's behavior, so they live here
// as named constants and the tests pin them down.
const (
	patternWindowDays = 28 // 4 calendar weeks
	minWindowTrades   = 5
	maxPatterns       = 5

	overtradeMaxPerDay     = 20
	overtradeSevereMax     = 25
	overtradeAvgPerDay     = 10.0
	minBucketTrades        = 3
	worstHourLossThreshold = -100.0
	worstDayLossThreshold  = -200.0
	bestTickerPLThreshold  = 500.0
	worstTickerPLThreshold = -500.0
	worstTickerMinTrades   = 5
	goodWinRatePercent     = 60.0
	poorWinRatePercent     = 40.0
	losingStreakLength     = 3
	poorProfitFactor       = 1.2
	goodProfitFactor       = 2.0
)

// DetectPatterns runs the rule-based detectors over the trailing four
// calendar weeks ending at ref and returns the top findings ranked by
// confidence, at most five. Fewer than five trades in the window yields
// no findings.
func DetectPatterns(trades []models.Trade, ref time.Time) []Pattern {
	windowStart := ref.AddDate(0, 0, -patternWindowDays)
	var window []models.Trade
	for _, t := range sortedByTime(trades) {
		if t.Timestamp.After(windowStart) && !t.Timestamp.After(ref) {
			window = append(window, t)
		}
	}
	if len(window) < minWindowTrades {
		return []Pattern{}
	}

	detectors := []func([]models.Trade) []Pattern{
		detectOvertrading,
		detectHourPerformance,
		detectWeekdayPerformance,
		detectTickerPerformance,
		detectLosingStreak,
		detectQuality,
	}

	var findings []Pattern
	for _, detect := range detectors {
		findings = append(findings, detect(window)...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Confidence > findings[j].Confidence
	})
	if len(findings) > maxPatterns {
		findings = findings[:maxPatterns]
	}
	return findings
}

// detectOvertrading flags unusually high daily trade counts.
func detectOvertrading(window []models.Trade) []Pattern {
	counts := bucketCounts(window, ByDay)
	maxPerDay := 0
	total := 0
	for _, c := range counts {
		total += c
		if c > maxPerDay {
			maxPerDay = c
		}
	}
	avgPerDay := float64(total) / float64(len(counts))

	if maxPerDay <= overtradeMaxPerDay && avgPerDay <= overtradeAvgPerDay {
		return nil
	}

	confidence := 0.7
	if maxPerDay > overtradeSevereMax {
		confidence = 0.9
	}
	return []Pattern{{
		Type:           PatternWarning,
		Title:          "Possible overtrading",
		Description:    fmt.Sprintf("Up to %d trades in a single day (%.1f/day average). High frequency often erodes edge through fees and fatigue.", maxPerDay, avgPerDay),
		Confidence:     confidence,
		Recommendation: "Set a daily trade cap and review whether the extra trades added anything.",
	}}
}

// detectHourPerformance surfaces the strongest and weakest hours of the
// day, requiring at least three trades in an hour to call it significant.
func detectHourPerformance(window []models.Trade) []Pattern {
	type hourStat struct {
		key string
		pl  float64
	}
	pl := BucketPL(window, ByHour)
	counts := bucketCounts(window, ByHour)

	var significant []hourStat
	for key, sum := range pl {
		if counts[key] >= minBucketTrades {
			significant = append(significant, hourStat{key, sum})
		}
	}
	if len(significant) == 0 {
		return nil
	}
	sort.Slice(significant, func(i, j int) bool { return significant[i].pl > significant[j].pl })

	var findings []Pattern
	best := significant[0]
	if best.pl > 0 {
		findings = append(findings, Pattern{
			Type:           PatternSuccess,
			Title:          fmt.Sprintf("Strong hour: %s:00", best.key),
			Description:    fmt.Sprintf("Trades around %s:00 earned %+.2f over the last four weeks.", best.key, best.pl),
			Confidence:     0.8,
			Recommendation: fmt.Sprintf("Concentrate activity near %s:00 where your results are best.", best.key),
		})
	}
	worst := significant[len(significant)-1]
	if worst.pl < worstHourLossThreshold {
		findings = append(findings, Pattern{
			Type:           PatternDanger,
			Title:          fmt.Sprintf("Weak hour: %s:00", worst.key),
			Description:    fmt.Sprintf("Trades around %s:00 lost %.2f over the last four weeks.", worst.key, -worst.pl),
			Confidence:     0.8,
			Recommendation: fmt.Sprintf("Consider sitting out around %s:00.", worst.key),
		})
	}
	return findings
}

// detectWeekdayPerformance does the hour analysis by day of week.
func detectWeekdayPerformance(window []models.Trade) []Pattern {
	type dayStat struct {
		day    time.Weekday
		pl     float64
		trades int
		wins   int
	}
	stats := make(map[time.Weekday]*dayStat)
	for _, t := range window {
		day := t.Timestamp.Weekday()
		s, ok := stats[day]
		if !ok {
			s = &dayStat{day: day}
			stats[day] = s
		}
		s.pl += t.RealizedPL
		s.trades++
		if t.RealizedPL > 0 {
			s.wins++
		}
	}

	var significant []*dayStat
	for _, s := range stats {
		if s.trades >= minBucketTrades {
			significant = append(significant, s)
		}
	}
	if len(significant) == 0 {
		return nil
	}
	sort.Slice(significant, func(i, j int) bool { return significant[i].pl > significant[j].pl })

	var findings []Pattern
	best := significant[0]
	bestWinRate := float64(best.wins) / float64(best.trades) * 100
	if best.pl > 0 && bestWinRate > goodWinRatePercent {
		findings = append(findings, Pattern{
			Type:           PatternSuccess,
			Title:          fmt.Sprintf("Best weekday: %s", best.day),
			Description:    fmt.Sprintf("%ss returned %+.2f with a %.0f%% win rate over the last four weeks.", best.day, best.pl, bestWinRate),
			Confidence:     0.7,
			Recommendation: fmt.Sprintf("Lean into %s setups; the day has been working for you.", best.day),
		})
	}
	worst := significant[len(significant)-1]
	if worst.pl < worstDayLossThreshold {
		findings = append(findings, Pattern{
			Type:           PatternWarning,
			Title:          fmt.Sprintf("Worst weekday: %s", worst.day),
			Description:    fmt.Sprintf("%ss lost %.2f over the last four weeks.", worst.day, -worst.pl),
			Confidence:     0.7,
			Recommendation: fmt.Sprintf("Trade smaller or skip %ss until the pattern improves.", worst.day),
		})
	}
	return findings
}

// detectTickerPerformance surfaces the best and worst symbols.
func detectTickerPerformance(window []models.Trade) []Pattern {
	type tickerStat struct {
		ticker string
		pl     float64
		trades int
		wins   int
	}
	stats := make(map[string]*tickerStat)
	for _, t := range window {
		s, ok := stats[t.Ticker]
		if !ok {
			s = &tickerStat{ticker: t.Ticker}
			stats[t.Ticker] = s
		}
		s.pl += t.RealizedPL
		s.trades++
		if t.RealizedPL > 0 {
			s.wins++
		}
	}

	var significant []*tickerStat
	for _, s := range stats {
		if s.trades >= minBucketTrades {
			significant = append(significant, s)
		}
	}
	if len(significant) == 0 {
		return nil
	}
	sort.Slice(significant, func(i, j int) bool { return significant[i].pl > significant[j].pl })

	var findings []Pattern
	best := significant[0]
	bestWinRate := float64(best.wins) / float64(best.trades) * 100
	if best.pl > bestTickerPLThreshold && bestWinRate > goodWinRatePercent {
		findings = append(findings, Pattern{
			Type:           PatternSuccess,
			Title:          fmt.Sprintf("Hot ticker: %s", best.ticker),
			Description:    fmt.Sprintf("%s earned %+.2f across %d trades (%.0f%% win rate).", best.ticker, best.pl, best.trades, bestWinRate),
			Confidence:     0.8,
			Recommendation: fmt.Sprintf("You read %s well; keep it on the primary watchlist.", best.ticker),
		})
	}
	worst := significant[len(significant)-1]
	if worst.pl < worstTickerPLThreshold && worst.trades >= worstTickerMinTrades {
		findings = append(findings, Pattern{
			Type:           PatternDanger,
			Title:          fmt.Sprintf("Cold ticker: %s", worst.ticker),
			Description:    fmt.Sprintf("%s lost %.2f across %d trades.", worst.ticker, -worst.pl, worst.trades),
			Confidence:     0.8,
			Recommendation: fmt.Sprintf("Step away from %s for a while; it is not paying you.", worst.ticker),
		})
	}
	return findings
}

// detectLosingStreak counts consecutive losers from the most recent trade
// backward.
func detectLosingStreak(window []models.Trade) []Pattern {
	streak := 0
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].RealizedPL >= 0 {
			break
		}
		streak++
	}
	if streak < losingStreakLength {
		return nil
	}
	return []Pattern{{
		Type:           PatternWarning,
		Title:          fmt.Sprintf("%d losing trades in a row", streak),
		Description:    fmt.Sprintf("Your last %d trades all closed at a loss.", streak),
		Confidence:     0.9,
		Recommendation: "Take a break, cut size, and review the last few entries before resuming.",
	}}
}

// detectQuality scores the window's overall win rate / profit factor mix.
func detectQuality(window []models.Trade) []Pattern {
	var wins int
	var winSum, lossSum float64
	for _, t := range window {
		if t.RealizedPL > 0 {
			wins++
			winSum += t.RealizedPL
		} else if t.RealizedPL < 0 {
			lossSum += t.RealizedPL
		}
	}
	winRate := float64(wins) / float64(len(window)) * 100

	profitFactor := 0.0
	switch {
	case lossSum != 0:
		profitFactor = winSum / -lossSum
	case winSum > 0:
		profitFactor = profitFactorCap
	}

	if winRate < poorWinRatePercent && profitFactor < poorProfitFactor {
		return []Pattern{{
			Type:           PatternDanger,
			Title:          "Edge is negative",
			Description:    fmt.Sprintf("Win rate %.0f%% with profit factor %.2f over the last four weeks.", winRate, profitFactor),
			Confidence:     0.8,
			Recommendation: "Tighten entry criteria: the current mix of hit rate and payoff is losing money.",
		}}
	}
	if winRate > goodWinRatePercent && profitFactor > goodProfitFactor {
		return []Pattern{{
			Type:           PatternSuccess,
			Title:          "Strong trading edge",
			Description:    fmt.Sprintf("Win rate %.0f%% with profit factor %.2f over the last four weeks.", winRate, profitFactor),
			Confidence:     0.8,
			Recommendation: "Whatever you changed recently, keep doing it. Consider sizing up gradually.",
		}}
	}
	return nil
}
