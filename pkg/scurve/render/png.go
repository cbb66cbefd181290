package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// PNGRenderer draws the S-curve as a raster line chart. Future actual points
// are absent so the actual line ends at the today cutoff; the xRange window
// clips the display without touching the data.
type PNGRenderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
}

func (r *PNGRenderer) Render(w io.Writer, st store.State, _ Options) error {
	points := clipRange(st.ChartData, st.Settings.XRange)

	p := plot.New()
	p.Title.Text = st.Settings.Title
	p.X.Label.Text = st.Settings.XLabel
	p.Y.Label.Text = st.Settings.YLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: calc.DateLayout}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	if s, ok := seriesByKey(st.Series, types.SeriesPlanned); ok && s.Visible {
		xys := make(plotter.XYs, 0, len(points))
		for _, pt := range points {
			x, ok := dateX(pt.Date)
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: pt.Planned})
		}
		if err := addLine(p, s, xys, st.Settings.Colors.Planned); err != nil {
			return err
		}
	}

	if s, ok := seriesByKey(st.Series, types.SeriesActual); ok && s.Visible {
		xys := make(plotter.XYs, 0, len(points))
		for _, pt := range points {
			v, realized := pt.Actual.Value()
			if !realized {
				continue
			}
			x, ok := dateX(pt.Date)
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: v})
		}
		if err := addLine(p, s, xys, st.Settings.Colors.Actual); err != nil {
			return err
		}
	}

	wt, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

func addLine(p *plot.Plot, s types.ChartSeries, xys plotter.XYs, fallbackColor string) error {
	if len(xys) == 0 {
		return nil
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("series %s: %w", s.Key, err)
	}
	hex := s.Color
	if !strings.HasPrefix(hex, "#") {
		hex = fallbackColor
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = parseHexColor(hex)
	p.Add(line)
	p.Legend.Add(s.Label, line)
	return nil
}

func dateX(date string) (float64, bool) {
	t, err := calc.ParseDate(date)
	if err != nil {
		return 0, false
	}
	return float64(t.Unix()), true
}

// parseHexColor reads "#rrggbb"; anything else falls back to dark gray.
func parseHexColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
