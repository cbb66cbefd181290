package render

import (
	"io"
	"strings"

	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// Renderer renders a state snapshot to an output writer. Renderers only read
// derived data; they never touch the store.
type Renderer interface {
	Render(w io.Writer, st store.State, opts Options) error
}

type Options struct {
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// DefaultExportName is the chart export filename used when the project name
// is empty.
const DefaultExportName = "s-curve"

// ExportFileName derives a chart export filename from the project name:
// lowercased, non-alphanumeric runs collapsed to a single hyphen, ".png"
// appended.
func ExportFileName(projectName string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(projectName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	name := b.String()
	if name == "" {
		name = DefaultExportName
	}
	return name + ".png"
}

// clipRange applies the display-only xRange window to the point sequence.
// Empty bounds are unbounded; the underlying data is never touched.
func clipRange(points []types.SCurveDataPoint, r types.XRange) []types.SCurveDataPoint {
	if r.Start == "" && r.End == "" {
		return points
	}
	out := make([]types.SCurveDataPoint, 0, len(points))
	for _, p := range points {
		if r.Start != "" && p.Date < r.Start {
			continue
		}
		if r.End != "" && p.Date > r.End {
			continue
		}
		out = append(out, p)
	}
	return out
}

func seriesByKey(series []types.ChartSeries, key string) (types.ChartSeries, bool) {
	for _, s := range series {
		if s.Key == key {
			return s, true
		}
	}
	return types.ChartSeries{}, false
}
