package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairul247/s-curve/pkg/scurve/importer"
	"github.com/khairul247/s-curve/pkg/scurve/render"
	"github.com/khairul247/s-curve/pkg/scurve/store"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExecute_ImportsCSV(t *testing.T) {
	path := writeCSV(t, "date,actual,plan\n2026-05-01,1,2\n2026-05-02,3,4\n")
	st := store.New()
	var buf bytes.Buffer
	r := &Runner{
		Reader:   importer.FileReader{},
		Store:    st,
		Renderer: render.NewJSONRenderer(),
		Writer:   &buf,
	}

	require.NoError(t, r.Execute(path, ExecuteOptions{}))

	state := st.State()
	require.Len(t, state.Rows, 2)
	assert.Equal(t, "2026-05-01", state.Config.StartDate)
	assert.Equal(t, "2026-05-02", state.Config.EndDate)
	assert.Contains(t, buf.String(), `"2026-05-01"`)
}

func TestExecute_ValidationFailureLeavesStoreUntouched(t *testing.T) {
	path := writeCSV(t, "date,actual\n2026-05-01,1\n")
	st := store.New()
	before := st.State()
	r := &Runner{
		Reader:   importer.FileReader{},
		Store:    st,
		Renderer: render.NewJSONRenderer(),
		Writer:   &bytes.Buffer{},
	}

	err := r.Execute(path, ExecuteOptions{})
	var verr *importer.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, importer.ReasonNoPlanColumn, verr.Reason)

	after := st.State()
	assert.Equal(t, before.Rows, after.Rows)
	assert.Equal(t, before.Config, after.Config)
}

func TestExecute_ReadFailureIsNotValidation(t *testing.T) {
	r := &Runner{
		Reader:   importer.FileReader{},
		Renderer: render.NewJSONRenderer(),
		Writer:   &bytes.Buffer{},
	}
	err := r.Execute(filepath.Join(t.TempDir(), "missing.csv"), ExecuteOptions{})
	require.Error(t, err)
	var verr *importer.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestExecute_OverridesAndRegenerate(t *testing.T) {
	path := writeCSV(t, "date,actual,plan\n2026-05-01,1,2\n2026-05-04,3,4\n")
	st := store.New()
	it := types.IntervalDaily
	ut := types.UnitPercentage
	total := 10.0
	r := &Runner{
		Reader:   importer.FileReader{},
		Store:    st,
		Renderer: render.NewSummaryRenderer(),
		Writer:   &bytes.Buffer{},
	}

	require.NoError(t, r.Execute(path, ExecuteOptions{
		IntervalType: &it,
		UnitType:     &ut,
		TotalItems:   &total,
		Regenerate:   true,
	}))

	state := st.State()
	require.Len(t, state.Rows, 4, "daily regeneration fills 2026-05-02 and 2026-05-03")
	assert.Equal(t, types.DataRow{Date: "2026-05-02"}, state.Rows[1])
	assert.Equal(t, 10.0, state.Config.TotalItems)
	assert.Equal(t, types.UnitPercentage, state.UnitType)
}

func TestExecute_NoFileRendersDefaults(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{
		Reader:   importer.FileReader{},
		Renderer: render.NewSummaryRenderer(),
		Writer:   &buf,
	}
	require.NoError(t, r.Execute("", ExecuteOptions{}))
	assert.Contains(t, buf.String(), "Audit Findings Remediation")
}
