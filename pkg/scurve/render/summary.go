package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// summaryRenderer prints a one-line progress summary.
type summaryRenderer struct{}

func NewSummaryRenderer() Renderer {
	return summaryRenderer{}
}

func (summaryRenderer) Render(w io.Writer, st store.State, _ Options) error {
	name := strings.TrimSpace(st.Config.ProjectName)
	if name == "" {
		name = "project"
	}

	unit := ""
	if st.UnitType == types.UnitPercentage && st.Config.TotalItems > 0 {
		unit = "%"
	}

	lastActual, lastDate := 0.0, ""
	finalPlan := 0.0
	for _, p := range st.ChartData {
		if v, ok := p.Actual.Value(); ok {
			lastActual, lastDate = v, p.Date
		}
		finalPlan = p.Planned
	}

	if lastDate == "" {
		_, err := fmt.Fprintf(w, "%s: no realized progress, plan total %s%s\n",
			name, formatValue(finalPlan), unit)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: actual %s%s through %s vs plan total %s%s\n",
		name, formatValue(lastActual), unit, lastDate, formatValue(finalPlan), unit)
	return err
}
