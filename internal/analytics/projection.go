package analytics

import "math"

// conservativeFactor scales the historical annual return rate down when
// the user asks for conservative projections.
const conservativeFactor = 0.6

// projectionHorizons are the fixed forward horizons, in years.
var projectionHorizons = []int{1, 3, 5, 10, 15}

// ProjectionPeriod is the compounded outcome for one horizon.
type ProjectionPeriod struct {
	Years            int
	ProjectedValue   float64
	TotalGrowth      float64 // value minus everything paid in
	GrowthPercentage float64
	CAGR             float64 // percent
}

// ProjectPortfolio compounds capital forward over the fixed horizons.
// The simulation runs month by month: each month the contribution is
// added first, then the balance grows by annualRate/12. A single annual
// lump-sum step would misprice recurring contributions, so it is not
// used. annualReturnRate is a percentage (from ComputeMetrics); negative
// capital and contribution clamp to 0.
func ProjectPortfolio(annualReturnRate, initialCapital, monthlyContribution float64, conservative bool) []ProjectionPeriod {
	initialCapital = clampNonNegative(initialCapital)
	monthlyContribution = clampNonNegative(monthlyContribution)

	rate := annualReturnRate / 100
	if conservative {
		rate *= conservativeFactor
	}
	monthlyRate := rate / 12

	periods := make([]ProjectionPeriod, 0, len(projectionHorizons))
	for _, years := range projectionHorizons {
		value := initialCapital
		contributions := initialCapital
		for month := 0; month < years*12; month++ {
			value += monthlyContribution
			contributions += monthlyContribution
			value *= 1 + monthlyRate
		}

		p := ProjectionPeriod{
			Years:          years,
			ProjectedValue: value,
			TotalGrowth:    value - contributions,
		}
		if contributions > 0 {
			p.GrowthPercentage = p.TotalGrowth / contributions * 100
			if value > 0 {
				p.CAGR = (math.Pow(value/contributions, 1/float64(years)) - 1) * 100
			}
		}
		periods = append(periods, p)
	}
	return periods
}
