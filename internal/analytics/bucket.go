package analytics

import (
	"fmt"
	"time"

	"daytrade-tracker/internal/models"
)

// Granularity selects the calendar bucket used when grouping trades.
type Granularity int

const (
	ByHour Granularity = iota
	ByDay
	ByWeek
	ByMonth
	ByYear
)

func (g Granularity) String() string {
	switch g {
	case ByHour:
		return "hour"
	case ByDay:
		return "day"
	case ByWeek:
		return "week"
	case ByMonth:
		return "month"
	case ByYear:
		return "year"
	default:
		return "unknown"
	}
}

// BucketPL groups trades by local calendar bucket and sums RealizedPL per
// bucket. Day boundaries fall at local midnight, weeks start on Monday,
// months and years follow the calendar. Invalid trades are excluded.
func BucketPL(trades []models.Trade, g Granularity) map[string]float64 {
	buckets := make(map[string]float64)
	for _, t := range Valid(trades) {
		buckets[BucketKey(t.Timestamp, g)] += t.RealizedPL
	}
	return buckets
}

// bucketCounts groups trades by bucket and counts them.
func bucketCounts(trades []models.Trade, g Granularity) map[string]int {
	counts := make(map[string]int)
	for _, t := range Valid(trades) {
		counts[BucketKey(t.Timestamp, g)]++
	}
	return counts
}

// BucketKey returns the canonical key for the bucket containing ts.
// Keys sort lexicographically in chronological order within a granularity.
func BucketKey(ts time.Time, g Granularity) string {
	switch g {
	case ByHour:
		return fmt.Sprintf("%02d", ts.Hour())
	case ByDay:
		return ts.Format("2006-01-02")
	case ByWeek:
		return WeekStart(ts).Format("2006-01-02")
	case ByMonth:
		return ts.Format("2006-01")
	case ByYear:
		return ts.Format("2006")
	default:
		return ts.Format("2006-01-02")
	}
}

// WeekStart returns local midnight of the Monday of ts's week.
func WeekStart(ts time.Time) time.Time {
	day := startOfDay(ts)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return day.AddDate(0, 0, -offset)
}

func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
