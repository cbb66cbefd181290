package render

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// jsonModel is the output shape for JSONRenderer.
type jsonModel struct {
	Config       types.ProjectConfig     `json:"config"`
	IntervalType types.IntervalType      `json:"intervalType"`
	UnitType     types.UnitType          `json:"unitType"`
	Rows         []types.DataRow         `json:"rows"`
	ChartData    []types.SCurveDataPoint `json:"chartData"`
	Series       []types.ChartSeries     `json:"series"`
	Settings     types.ChartSettings     `json:"settings"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, st store.State, opts Options) error {
	out := jsonModel{
		Config:       st.Config,
		IntervalType: st.IntervalType,
		UnitType:     st.UnitType,
		Rows:         st.Rows,
		ChartData:    st.ChartData,
		Series:       st.Series,
		Settings:     st.Settings,
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
