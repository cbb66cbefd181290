package calc

import (
	"math"
	"time"

	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// Round2 rounds to two decimals, half away from zero, and never returns
// negative zero.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

// Cumulatives folds the row list into running actual/plan totals, one point
// per row in row order. A row is future when todayDate is set and the row's
// calendar date is strictly after it; future rows do not advance the actual
// sum. Both sums are rounded to two decimals after each update. An empty
// todayDate means no row is future.
func Cumulatives(rows []types.DataRow, todayDate string) []types.CumulativePoint {
	cutoff, hasCutoff := parseCutoff(todayDate)

	points := make([]types.CumulativePoint, 0, len(rows))
	var actualSum, planSum float64
	for _, row := range rows {
		future := hasCutoff && dateAfter(row.Date, cutoff)
		if !future {
			actualSum = Round2(actualSum + row.Actual)
		}
		planSum = Round2(planSum + row.Plan)
		points = append(points, types.CumulativePoint{
			ActualCumulative: actualSum,
			PlanCumulative:   planSum,
			IsFuture:         future,
		})
	}
	return points
}

// Convert maps a cumulative raw total to the requested unit. Percentage mode
// needs a positive totalItems denominator; otherwise it silently degrades to
// value mode.
func Convert(raw float64, ut types.UnitType, totalItems float64) float64 {
	if ut == types.UnitPercentage && totalItems > 0 {
		return Round2(raw / totalItems * 100)
	}
	return Round2(raw)
}

// ChartData builds the chart point sequence: one point per row, planned
// always converted, actual converted when realized and NotYetDue past the
// today cutoff.
func ChartData(rows []types.DataRow, ut types.UnitType, totalItems float64, todayDate string) []types.SCurveDataPoint {
	cumulatives := Cumulatives(rows, todayDate)

	points := make([]types.SCurveDataPoint, 0, len(rows))
	for i, row := range rows {
		c := cumulatives[i]
		actual := types.NotYetDue()
		if !c.IsFuture {
			actual = types.Realized(Convert(c.ActualCumulative, ut, totalItems))
		}
		points = append(points, types.SCurveDataPoint{
			Date:    row.Date,
			Planned: Convert(c.PlanCumulative, ut, totalItems),
			Actual:  actual,
		})
	}
	return points
}

func parseCutoff(todayDate string) (time.Time, bool) {
	if todayDate == "" {
		return time.Time{}, false
	}
	t, err := ParseDate(todayDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateAfter compares calendar dates; an unparseable row date is never future.
func dateAfter(date string, cutoff time.Time) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return d.After(cutoff)
}
