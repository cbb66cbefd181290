package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// TableRenderer prints the row list with its cumulative S-curve columns.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, st store.State, opts Options) error {
	if name := strings.TrimSpace(st.Config.ProjectName); name != "" {
		fmt.Fprintln(w, text.Bold.Sprint(strings.ToUpper(name)))
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false

	unit := ""
	if st.UnitType == types.UnitPercentage && st.Config.TotalItems > 0 {
		unit = " %"
	}
	tw.AppendHeader(table.Row{
		"DATE", "PLAN", "ACTUAL", "PLAN CUM" + unit, "ACTUAL CUM" + unit,
	})

	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	cfgs := make([]table.ColumnConfig, 0, 5)
	for i := 0; i < 5; i++ {
		cfg := table.ColumnConfig{Number: i + 1, WidthMax: maxWidth}
		if i > 0 {
			cfg.Align = text.AlignRight
			cfg.AlignHeader = text.AlignRight
		}
		cfgs = append(cfgs, cfg)
	}
	tw.SetColumnConfigs(cfgs)

	for i, row := range st.Rows {
		planCum, actualCum := "", ""
		if i < len(st.ChartData) {
			p := st.ChartData[i]
			planCum = formatValue(p.Planned)
			if v, ok := p.Actual.Value(); ok {
				actualCum = formatValue(v)
				if opts.Color {
					if v >= p.Planned {
						actualCum = text.Colors{text.FgGreen}.Sprint(actualCum)
					} else {
						actualCum = text.Colors{text.FgRed}.Sprint(actualCum)
					}
				}
			} else {
				actualCum = "-"
			}
		}
		tw.AppendRow(table.Row{
			row.Date,
			formatValue(row.Plan),
			formatValue(row.Actual),
			planCum,
			actualCum,
		})
	}

	tw.Render()
	return nil
}

// formatValue prints a 2-decimal value without trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
