package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntervalType(t *testing.T) {
	it, ok := ParseIntervalType("weekly")
	require.True(t, ok)
	assert.Equal(t, IntervalWeekly, it)

	for _, bad := range []string{"Weekly", "WEEKLY", " weekly", "fortnightly", ""} {
		_, ok := ParseIntervalType(bad)
		assert.False(t, ok, "%q must not parse", bad)
	}
}

func TestParseUnitType(t *testing.T) {
	ut, ok := ParseUnitType("percentage")
	require.True(t, ok)
	assert.Equal(t, UnitPercentage, ut)

	for _, bad := range []string{"Percentage", "pct", "%", ""} {
		_, ok := ParseUnitType(bad)
		assert.False(t, ok, "%q must not parse", bad)
	}
}

func TestActual_TriState(t *testing.T) {
	r := Realized(12.5)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)
	assert.True(t, r.IsRealized())

	n := NotYetDue()
	_, ok = n.Value()
	assert.False(t, ok)
	assert.False(t, n.IsRealized())

	// A realized zero is distinct from not-yet-due.
	z := Realized(0)
	assert.True(t, z.IsRealized())
	assert.NotEqual(t, n, z)
}

func TestActual_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(SCurveDataPoint{Date: "2026-02-02", Planned: 10, Actual: Realized(8)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-02-02","planned":10,"actual":8}`, string(b))

	b, err = json.Marshal(SCurveDataPoint{Date: "2026-02-09", Planned: 30, Actual: NotYetDue()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-02-09","planned":30,"actual":null}`, string(b))
}
