package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

func validSheet() [][]any {
	return [][]any{
		{"Date", "Actual", "Plan"},
		{"2026-02-02", 8, 10},
		{"2026-02-08", 18, 20},
	}
}

func requireValidation(t *testing.T, err error, reason string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, reason, verr.Reason)
}

func TestNormalize_Valid(t *testing.T) {
	res, err := Normalize(validSheet())
	require.NoError(t, err)
	assert.Equal(t, []types.DataRow{
		{Date: "2026-02-02", Actual: 8, Plan: 10},
		{Date: "2026-02-08", Actual: 18, Plan: 20},
	}, res.Rows)
	assert.Equal(t, "2026-02-02", res.StartDate)
	assert.Equal(t, "2026-02-08", res.EndDate)
}

func TestNormalize_ValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		sheet  [][]any
		reason string
	}{
		{"empty sheet", nil, ReasonNoDataRows},
		{"header only", [][]any{{"date", "actual", "plan"}}, ReasonNoDataRows},
		{"no date column", [][]any{{"actual", "plan"}, {1, 2}}, ReasonNoDateColumn},
		{"no actual column", [][]any{{"date", "plan"}, {"2026-02-02", 2}}, ReasonNoActualColumn},
		{"no plan column", [][]any{{"date", "actual"}, {"2026-02-02", 2}}, ReasonNoPlanColumn},
		{"no parseable dates", [][]any{{"date", "actual", "plan"}, {"soon", 1, 2}, {"", 3, 4}}, ReasonNoValidDates},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.sheet)
			requireValidation(t, err, tc.reason)
		})
	}
}

func TestNormalize_HeaderAliases(t *testing.T) {
	sheet := [][]any{
		{" DAY ", "Actuals", "Plan_Value"},
		{"2026-02-02", 1, 2},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)
	assert.Equal(t, []types.DataRow{{Date: "2026-02-02", Actual: 1, Plan: 2}}, res.Rows)
}

func TestNormalize_CumulativeDifferencing(t *testing.T) {
	sheet := [][]any{
		{"date", "Actual Cumulative", "Planned Cum."},
		{"2026-02-02", 10, 12},
		{"2026-02-09", 25, 30},
		{"2026-02-16", 25, 50},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)

	actuals := []float64{res.Rows[0].Actual, res.Rows[1].Actual, res.Rows[2].Actual}
	assert.Equal(t, []float64{10, 15, 0}, actuals)
	plans := []float64{res.Rows[0].Plan, res.Rows[1].Plan, res.Rows[2].Plan}
	assert.Equal(t, []float64{12, 18, 20}, plans)
}

func TestNormalize_DifferencingRoundTrips(t *testing.T) {
	cumulative := []float64{10, 25.5, 25.5, 40.25}
	sheet := [][]any{{"date", "actual cum", "plan"}}
	dates := []string{"2026-02-02", "2026-02-09", "2026-02-16", "2026-02-23"}
	for i, c := range cumulative {
		sheet = append(sheet, []any{dates[i], c, 0})
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)

	points := calc.Cumulatives(res.Rows, "")
	for i, p := range points {
		assert.InDelta(t, cumulative[i], p.ActualCumulative, 0.01)
	}
}

func TestNormalize_DropsUnparseableDates(t *testing.T) {
	sheet := [][]any{
		{"date", "actual", "plan"},
		{"2026-02-08", 2, 2},
		{"???", 99, 99},
		{"2026-02-02", 1, 1},
		{nil, 98, 98},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)
	// Bad rows are gone and survivors are sorted by date.
	assert.Equal(t, []types.DataRow{
		{Date: "2026-02-02", Actual: 1, Plan: 1},
		{Date: "2026-02-08", Actual: 2, Plan: 2},
	}, res.Rows)
}

func TestNormalize_TolerantNumbers(t *testing.T) {
	sheet := [][]any{
		{"date", "actual", "plan"},
		{"2026-02-02", "1,234 pcs", " 5 "},
		{"2026-02-03", "n/a", ""},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, res.Rows[0].Actual)
	assert.Equal(t, 5.0, res.Rows[0].Plan)
	assert.Equal(t, 0.0, res.Rows[1].Actual)
	assert.Equal(t, 0.0, res.Rows[1].Plan)
}

func TestNormalize_SerialDates(t *testing.T) {
	// 44927 is the Excel serial for 2023-01-01; raw workbook reads surface
	// it as either a number or a numeric string.
	sheet := [][]any{
		{"date", "actual", "plan"},
		{44927, 1, 2},
		{"44928", 3, 4},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", res.Rows[0].Date)
	assert.Equal(t, "2023-01-02", res.Rows[1].Date)
}

func TestNormalize_RoundsValues(t *testing.T) {
	sheet := [][]any{
		{"date", "actual", "plan"},
		{"2026-02-02", 1.2345, 2.9999},
	}
	res, err := Normalize(sheet)
	require.NoError(t, err)
	assert.Equal(t, 1.23, res.Rows[0].Actual)
	assert.Equal(t, 3.0, res.Rows[0].Plan)
}

func TestParseConfigSheet(t *testing.T) {
	sheet := [][]any{
		{"key", "value"},
		{"projectName", "  Remediation  "},
		{"totalItems", "250"},
		{"startDate", "2026-02-02"},
		{"endDate", "invalid"},
		{"todayDate", "2026-02-15"},
		{"unitType", "percentage"},
		{"intervalType", "weekly"},
		{"somethingElse", "ignored"},
	}
	o := ParseConfigSheet(sheet)

	require.NotNil(t, o.Config.ProjectName)
	assert.Equal(t, "Remediation", *o.Config.ProjectName)
	require.NotNil(t, o.Config.TotalItems)
	assert.Equal(t, 250.0, *o.Config.TotalItems)
	require.NotNil(t, o.Config.StartDate)
	assert.Equal(t, "2026-02-02", *o.Config.StartDate)
	assert.Nil(t, o.Config.EndDate, "unparseable date is dropped")
	require.NotNil(t, o.Config.TodayDate)
	assert.Equal(t, "2026-02-15", *o.Config.TodayDate)
	require.NotNil(t, o.UnitType)
	assert.Equal(t, types.UnitPercentage, *o.UnitType)
	require.NotNil(t, o.IntervalType)
	assert.Equal(t, types.IntervalWeekly, *o.IntervalType)
}

func TestParseConfigSheet_RejectsMixedCaseEnums(t *testing.T) {
	sheet := [][]any{
		{"key", "value"},
		{"unitType", "Percentage"},
		{"intervalType", "Weekly"},
	}
	o := ParseConfigSheet(sheet)
	assert.Nil(t, o.UnitType)
	assert.Nil(t, o.IntervalType)
}

func TestParseConfigSheet_Empty(t *testing.T) {
	o := ParseConfigSheet(nil)
	assert.Nil(t, o.Config.ProjectName)
	assert.Nil(t, o.IntervalType)
	assert.Nil(t, o.UnitType)
}

func TestValidationError_IsDistinguishable(t *testing.T) {
	_, err := Normalize(nil)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "no data rows")
}
