// Package pipeline wires a workbook reader, the state store and a renderer
// into one run: read, normalize, apply, render.
package pipeline

import (
	"fmt"
	"io"

	"github.com/khairul247/s-curve/pkg/scurve/importer"
	"github.com/khairul247/s-curve/pkg/scurve/render"
	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

type Runner struct {
	Reader   importer.Reader
	Store    *store.Store
	Renderer render.Renderer
	Writer   io.Writer
}

// ExecuteOptions carry run overrides applied after a successful import.
// Nil fields leave the store value unchanged.
type ExecuteOptions struct {
	IntervalType *types.IntervalType
	UnitType     *types.UnitType
	TodayDate    *string
	TotalItems   *float64
	Settings     *types.SettingsPatch
	SeriesOff    []string
	Regenerate   bool
	Render       render.Options
}

// Execute imports the workbook at path (skipped when empty, leaving the
// seeded defaults), applies overrides and renders the resulting state. An
// import failure leaves the store untouched.
func (r *Runner) Execute(path string, opts ExecuteOptions) error {
	st, err := r.Load(path, opts)
	if err != nil {
		return err
	}
	return r.Renderer.Render(r.Writer, st.State(), opts.Render)
}

// Load imports the workbook and applies the run overrides without
// rendering, returning the populated store.
func (r *Runner) Load(path string, opts ExecuteOptions) (*store.Store, error) {
	st := r.Store
	if st == nil {
		st = store.New()
	}

	if path != "" {
		wb, err := r.Reader.Read(path)
		if err != nil {
			return nil, err
		}
		res, err := importer.Normalize(wb.Data)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", path, err)
		}
		if wb.Config != nil {
			res.Overrides = importer.ParseConfigSheet(wb.Config)
		}
		st.ApplyImport(res)
	}

	if opts.IntervalType != nil {
		st.SetIntervalType(*opts.IntervalType)
	}
	if opts.UnitType != nil {
		st.SetUnitType(*opts.UnitType)
	}
	if opts.TodayDate != nil || opts.TotalItems != nil {
		st.ApplyConfig(types.ConfigPatch{TodayDate: opts.TodayDate, TotalItems: opts.TotalItems})
	}
	if opts.Settings != nil {
		st.ApplySettings(*opts.Settings)
	}
	for _, key := range opts.SeriesOff {
		st.ToggleSeries(key)
	}
	if opts.Regenerate {
		st.Regenerate()
	}

	return st, nil
}
