package types

import "strconv"

// IntervalType selects the period granularity of a generated timeline.
type IntervalType string

const (
	IntervalDaily   IntervalType = "daily"
	IntervalWeekly  IntervalType = "weekly"
	IntervalMonthly IntervalType = "monthly"
)

// ParseIntervalType matches the exact lowercase name only.
func ParseIntervalType(s string) (IntervalType, bool) {
	switch IntervalType(s) {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return IntervalType(s), true
	}
	return "", false
}

// UnitType selects how cumulative totals are presented: raw values or
// percentage of the project's total item count.
type UnitType string

const (
	UnitValue      UnitType = "value"
	UnitPercentage UnitType = "percentage"
)

// ParseUnitType matches the exact lowercase name only.
func ParseUnitType(s string) (UnitType, bool) {
	switch UnitType(s) {
	case UnitValue, UnitPercentage:
		return UnitType(s), true
	}
	return "", false
}

// DataRow is one period's input. Date is "YYYY-MM-DD" and unique within a
// row list; lexicographic order on Date equals chronological order.
type DataRow struct {
	Date   string  `json:"date"`
	Actual float64 `json:"actual"`
	Plan   float64 `json:"plan"`
}

// ProjectConfig holds the project timeline bounds and the percentage
// denominator. StartDate <= EndDate is expected but not enforced.
// TotalItems <= 0 disables percentage conversion.
type ProjectConfig struct {
	ProjectName string  `json:"projectName"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TodayDate   string  `json:"todayDate"`
	TotalItems  float64 `json:"totalItems"`
}

// ConfigPatch is a partial ProjectConfig update. A nil field means "no
// change"; there is no way to express clearing a field.
type ConfigPatch struct {
	ProjectName *string
	StartDate   *string
	EndDate     *string
	TodayDate   *string
	TotalItems  *float64
}

// CumulativePoint carries the running totals for one row. When IsFuture is
// set the actual sum is frozen at its last pre-cutoff value and must not be
// read as entered data.
type CumulativePoint struct {
	ActualCumulative float64
	PlanCumulative   float64
	IsFuture         bool
}

// Actual is the tri-state cumulative actual of a chart point: realized with
// a value, or not yet due because the row date is past the today cutoff.
type Actual struct {
	value    float64
	realized bool
}

// Realized wraps a realized cumulative value.
func Realized(v float64) Actual { return Actual{value: v, realized: true} }

// NotYetDue marks a point past the today cutoff.
func NotYetDue() Actual { return Actual{} }

// Value returns the realized value; ok is false when the point is not yet due.
func (a Actual) Value() (v float64, ok bool) { return a.value, a.realized }

// IsRealized reports whether the point carries an entered value.
func (a Actual) IsRealized() bool { return a.realized }

// MarshalJSON emits null for a not-yet-due point so line renderers can skip
// it while connecting the surrounding points.
func (a Actual) MarshalJSON() ([]byte, error) {
	if !a.realized {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, a.value, 'f', -1, 64), nil
}

// SCurveDataPoint is one chart point: planned is always present, actual is
// absent for future rows.
type SCurveDataPoint struct {
	Date    string  `json:"date"`
	Planned float64 `json:"planned"`
	Actual  Actual  `json:"actual"`
}

// ChartSeries describes one rendered line. Visible only affects rendering,
// never the underlying data.
type ChartSeries struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}

// Series keys.
const (
	SeriesPlanned = "planned"
	SeriesActual  = "actual"
)

// XRange is a display-only date window; empty bounds mean unbounded.
type XRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SeriesColors holds the line colors as hex strings.
type SeriesColors struct {
	Planned string `json:"planned"`
	Actual  string `json:"actual"`
}

// ChartSettings holds the chart title, axis labels, display range and colors.
type ChartSettings struct {
	Title  string       `json:"title"`
	XLabel string       `json:"xLabel"`
	YLabel string       `json:"yLabel"`
	XRange XRange       `json:"xRange"`
	Colors SeriesColors `json:"colors"`
}

// ColorsPatch is a partial SeriesColors update.
type ColorsPatch struct {
	Planned *string
	Actual  *string
}

// SettingsPatch is a partial ChartSettings update. Colors merge one level
// deep; everything else replaces wholesale when non-nil.
type SettingsPatch struct {
	Title  *string
	XLabel *string
	YLabel *string
	XRange *XRange
	Colors ColorsPatch
}
