// Package store holds the canonical project state and is the only place the
// pure calculation functions are invoked. Every mutation is applied
// atomically: state changes, the chart data is re-derived when an input of
// the derivation changed, and subscribers see the finished snapshot.
package store

import (
	"math"
	"sync"
	"time"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
	"github.com/khairul247/s-curve/pkg/scurve/importer"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// Field names a DataRow value editable through UpdateRow.
type Field string

const (
	FieldActual Field = "actual"
	FieldPlan   Field = "plan"
)

// State is a snapshot of everything the store holds. Slices are copies; a
// snapshot never aliases live state.
type State struct {
	Config       types.ProjectConfig
	Rows         []types.DataRow
	ChartData    []types.SCurveDataPoint
	Series       []types.ChartSeries
	Settings     types.ChartSettings
	IntervalType types.IntervalType
	UnitType     types.UnitType
}

// Store serializes mutations behind a mutex so one mutation and its
// re-derivation complete before the next is accepted.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []func(State)
}

// New seeds a store with the default sample project and derives its chart
// data. The today cutoff defaults to the current UTC date.
func New() *Store {
	s := &Store{state: defaultState(calc.FormatDate(time.Now().UTC()))}
	s.rederive()
	return s
}

func defaultState(today string) State {
	return State{
		Config: types.ProjectConfig{
			ProjectName: "Audit Findings Remediation",
			StartDate:   "2026-02-02",
			EndDate:     "2026-03-02",
			TodayDate:   today,
			TotalItems:  200,
		},
		// Plan forms an S-curve: slow start, ramp up, taper off. Total = 200.
		Rows: []types.DataRow{
			{Date: "2026-02-02", Actual: 8, Plan: 10},
			{Date: "2026-02-08", Actual: 18, Plan: 20},
			{Date: "2026-02-09", Actual: 30, Plan: 35},
			{Date: "2026-02-16", Actual: 0, Plan: 45},
			{Date: "2026-02-23", Actual: 0, Plan: 40},
			{Date: "2026-03-01", Actual: 0, Plan: 30},
			{Date: "2026-03-02", Actual: 0, Plan: 20},
		},
		Series: []types.ChartSeries{
			{Key: types.SeriesPlanned, Label: "Planned", Color: "#f59e0b", Visible: true},
			{Key: types.SeriesActual, Label: "Actual", Color: "#0ea5a4", Visible: true},
		},
		Settings: types.ChartSettings{
			Title:  "S-Curve",
			XLabel: "Date",
			YLabel: "Cumulative Progress",
			Colors: types.SeriesColors{Planned: "#f59e0b", Actual: "#0ea5a4"},
		},
		IntervalType: types.IntervalWeekly,
		UnitType:     types.UnitValue,
	}
}

// Subscribe registers a callback invoked with a snapshot after every
// mutation.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// ApplyConfig shallow-merges a partial config update. Nil fields are left
// unchanged. Touching TotalItems or TodayDate re-derives the chart data.
func (s *Store) ApplyConfig(patch types.ConfigPatch) {
	s.mutate(func() bool {
		cfg := &s.state.Config
		if patch.ProjectName != nil {
			cfg.ProjectName = *patch.ProjectName
		}
		if patch.StartDate != nil {
			cfg.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			cfg.EndDate = *patch.EndDate
		}
		if patch.TodayDate != nil {
			cfg.TodayDate = *patch.TodayDate
		}
		if patch.TotalItems != nil {
			cfg.TotalItems = *patch.TotalItems
		}
		return patch.TodayDate != nil || patch.TotalItems != nil
	})
}

// SetRows replaces the entire row list, e.g. after an import.
func (s *Store) SetRows(rows []types.DataRow) {
	s.mutate(func() bool {
		s.state.Rows = append([]types.DataRow(nil), rows...)
		return true
	})
}

// UpdateRow sets a single row's actual or plan value by position. Non-finite
// values, unknown fields and out-of-range indices are ignored and the prior
// state is retained.
func (s *Store) UpdateRow(index int, field Field, value float64) {
	s.mutate(func() bool {
		if index < 0 || index >= len(s.state.Rows) {
			return false
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
		switch field {
		case FieldActual:
			s.state.Rows[index].Actual = value
		case FieldPlan:
			s.state.Rows[index].Plan = value
		default:
			return false
		}
		return true
	})
}

// SetIntervalType replaces the interval type. Row dates only change on the
// next Regenerate, so chart data is untouched.
func (s *Store) SetIntervalType(it types.IntervalType) {
	s.mutate(func() bool {
		s.state.IntervalType = it
		return false
	})
}

// SetUnitType replaces the unit type and re-derives the chart data.
func (s *Store) SetUnitType(ut types.UnitType) {
	s.mutate(func() bool {
		s.state.UnitType = ut
		return true
	})
}

// ApplySettings shallow-merges a partial chart settings update; colors merge
// one level deep.
func (s *Store) ApplySettings(patch types.SettingsPatch) {
	s.mutate(func() bool {
		set := &s.state.Settings
		if patch.Title != nil {
			set.Title = *patch.Title
		}
		if patch.XLabel != nil {
			set.XLabel = *patch.XLabel
		}
		if patch.YLabel != nil {
			set.YLabel = *patch.YLabel
		}
		if patch.XRange != nil {
			set.XRange = *patch.XRange
		}
		if patch.Colors.Planned != nil {
			set.Colors.Planned = *patch.Colors.Planned
		}
		if patch.Colors.Actual != nil {
			set.Colors.Actual = *patch.Colors.Actual
		}
		return false
	})
}

// Regenerate rebuilds the row list from the current timeline bounds and
// interval type: values survive for dates still in range, new dates are
// zero-filled, dropped dates disappear. Running it twice with unchanged
// config yields identical rows.
func (s *Store) Regenerate() {
	s.mutate(func() bool {
		dates := calc.Intervals(s.state.Config.StartDate, s.state.Config.EndDate, s.state.IntervalType)
		existing := make(map[string]types.DataRow, len(s.state.Rows))
		for _, r := range s.state.Rows {
			existing[r.Date] = r
		}
		rows := make([]types.DataRow, 0, len(dates))
		for _, d := range dates {
			if r, ok := existing[d]; ok {
				rows = append(rows, r)
				continue
			}
			rows = append(rows, types.DataRow{Date: d})
		}
		s.state.Rows = rows
		return true
	})
}

// ToggleSeries flips the visibility of the named series; unknown keys are a
// no-op. Visibility never affects chart data.
func (s *Store) ToggleSeries(key string) {
	s.mutate(func() bool {
		for i := range s.state.Series {
			if s.state.Series[i].Key == key {
				s.state.Series[i].Visible = !s.state.Series[i].Visible
			}
		}
		return false
	})
}

// ApplyImport replaces the row list and merges the import's config and
// interval/unit overrides in one atomic mutation.
func (s *Store) ApplyImport(res *importer.Result) {
	s.mutate(func() bool {
		s.state.Rows = append([]types.DataRow(nil), res.Rows...)

		cfg := &s.state.Config
		cfg.StartDate = res.StartDate
		cfg.EndDate = res.EndDate
		o := res.Overrides
		if o.Config.ProjectName != nil {
			cfg.ProjectName = *o.Config.ProjectName
		}
		if o.Config.StartDate != nil {
			cfg.StartDate = *o.Config.StartDate
		}
		if o.Config.EndDate != nil {
			cfg.EndDate = *o.Config.EndDate
		}
		if o.Config.TodayDate != nil {
			cfg.TodayDate = *o.Config.TodayDate
		}
		if o.Config.TotalItems != nil {
			cfg.TotalItems = *o.Config.TotalItems
		}
		if o.IntervalType != nil {
			s.state.IntervalType = *o.IntervalType
		}
		if o.UnitType != nil {
			s.state.UnitType = *o.UnitType
		}
		return true
	})
}

// mutate runs fn under the lock, re-derives chart data when fn reports a
// derivation input changed, and notifies subscribers with the finished
// snapshot.
func (s *Store) mutate(fn func() (rederive bool)) {
	s.mu.Lock()
	if fn() {
		s.rederive()
	}
	snap := s.snapshot()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// rederive recomputes chart data from current rows and config. Every
// mutation that touches rows, unit type, totalItems or todayDate funnels
// through this same path.
func (s *Store) rederive() {
	s.state.ChartData = calc.ChartData(
		s.state.Rows,
		s.state.UnitType,
		s.state.Config.TotalItems,
		s.state.Config.TodayDate,
	)
}

func (s *Store) snapshot() State {
	snap := s.state
	snap.Rows = append([]types.DataRow(nil), s.state.Rows...)
	snap.ChartData = append([]types.SCurveDataPoint(nil), s.state.ChartData...)
	snap.Series = append([]types.ChartSeries(nil), s.state.Series...)
	return snap
}
