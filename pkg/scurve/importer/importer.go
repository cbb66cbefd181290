package importer

import (
	"sort"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// Result is a normalized import: the per-period row list sorted by date,
// the timeline bounds inferred from the first and last row, and any
// overrides carried by the config sheet.
type Result struct {
	Rows      []types.DataRow
	StartDate string
	EndDate   string
	Overrides Overrides
}

// Overrides are optional settings extracted from the config sheet. Nil
// pointer fields mean the sheet did not carry a usable value.
type Overrides struct {
	Config       types.ConfigPatch
	IntervalType *types.IntervalType
	UnitType     *types.UnitType
}

type rawRow struct {
	date      string
	actual    float64
	plan      float64
	actualCum float64
	planCum   float64
}

// Normalize turns a raw data sheet (first row = headers, untyped cells) into
// a Result. Header matching is alias-based and punctuation-insensitive. Rows
// with unparseable dates are silently dropped; unparseable numbers read as
// zero. Per-period values are derived from cumulative columns by successive
// differencing when no direct column exists. Structural problems return a
// *ValidationError and nothing else is touched.
func Normalize(sheet [][]any) (*Result, error) {
	if len(sheet) < 2 {
		return nil, &ValidationError{Reason: ReasonNoDataRows}
	}

	headers := make([]string, len(sheet[0]))
	for i, cell := range sheet[0] {
		headers[i] = normalizeHeader(cell)
	}

	dateIdx := findColumn(headers, dateAliases)
	actualIdx := findColumn(headers, actualAliases)
	actualCumIdx := findColumn(headers, actualCumAliases)
	planIdx := findColumn(headers, planAliases)
	planCumIdx := findColumn(headers, planCumAliases)

	if dateIdx == -1 {
		return nil, &ValidationError{Reason: ReasonNoDateColumn}
	}
	if actualIdx == -1 && actualCumIdx == -1 {
		return nil, &ValidationError{Reason: ReasonNoActualColumn}
	}
	if planIdx == -1 && planCumIdx == -1 {
		return nil, &ValidationError{Reason: ReasonNoPlanColumn}
	}

	rows := make([]rawRow, 0, len(sheet)-1)
	for _, cells := range sheet[1:] {
		date, ok := parseDateCell(cellAt(cells, dateIdx))
		if !ok {
			continue
		}
		rows = append(rows, rawRow{
			date:      date,
			actual:    parseNumber(cellAt(cells, actualIdx)),
			plan:      parseNumber(cellAt(cells, planIdx)),
			actualCum: parseNumber(cellAt(cells, actualCumIdx)),
			planCum:   parseNumber(cellAt(cells, planCumIdx)),
		})
	}
	if len(rows) == 0 {
		return nil, &ValidationError{Reason: ReasonNoValidDates}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].date < rows[j].date })

	actuals := make([]float64, len(rows))
	plans := make([]float64, len(rows))
	for i, r := range rows {
		actuals[i] = r.actual
		plans[i] = r.plan
	}
	if actualIdx == -1 {
		actuals = diffFromCumulative(rows, func(r rawRow) float64 { return r.actualCum })
	}
	if planIdx == -1 {
		plans = diffFromCumulative(rows, func(r rawRow) float64 { return r.planCum })
	}

	out := make([]types.DataRow, len(rows))
	for i, r := range rows {
		out[i] = types.DataRow{
			Date:   r.date,
			Actual: calc.Round2(actuals[i]),
			Plan:   calc.Round2(plans[i]),
		}
	}

	return &Result{
		Rows:      out,
		StartDate: out[0].Date,
		EndDate:   out[len(out)-1].Date,
	}, nil
}

// diffFromCumulative recovers per-period values from a cumulative column:
// the first row keeps its cumulative, later rows take successive differences.
func diffFromCumulative(rows []rawRow, value func(rawRow) float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = value(r)
		if i > 0 {
			out[i] -= value(rows[i-1])
		}
	}
	return out
}

// ParseConfigSheet extracts overrides from a row-major key/value sheet. The
// header row is skipped; keys are case-sensitive and unknown keys are
// ignored. Date values that fail to parse are dropped; unitType and
// intervalType must normalize to an exact enum name or they are ignored.
func ParseConfigSheet(sheet [][]any) Overrides {
	var o Overrides
	if len(sheet) < 2 {
		return o
	}
	for _, cells := range sheet[1:] {
		key := trimString(cellAt(cells, 0))
		value := cellAt(cells, 1)
		switch key {
		case "projectName":
			name := trimString(value)
			o.Config.ProjectName = &name
		case "totalItems":
			total := parseNumber(value)
			o.Config.TotalItems = &total
		case "startDate":
			if d, ok := parseDateCell(value); ok {
				o.Config.StartDate = &d
			}
		case "endDate":
			if d, ok := parseDateCell(value); ok {
				o.Config.EndDate = &d
			}
		case "todayDate":
			if d, ok := parseDateCell(value); ok {
				o.Config.TodayDate = &d
			}
		case "unitType":
			if ut, ok := types.ParseUnitType(trimString(value)); ok {
				o.UnitType = &ut
			}
		case "intervalType":
			if it, ok := types.ParseIntervalType(trimString(value)); ok {
				o.IntervalType = &it
			}
		}
	}
	return o
}

func cellAt(cells []any, idx int) any {
	if idx < 0 || idx >= len(cells) {
		return nil
	}
	return cells[idx]
}
