package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `
title: Remediation Burnup
yLabel: Findings closed
xRange:
  start: 2026-02-01
  end: 2026-03-01
colors:
  actual: "#123456"
series:
  planned: false
  actual: true
`

func TestParse(t *testing.T) {
	patch, visible, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.NotNil(t, patch.Title)
	assert.Equal(t, "Remediation Burnup", *patch.Title)
	assert.Nil(t, patch.XLabel, "absent field means no change")
	require.NotNil(t, patch.YLabel)
	assert.Equal(t, "Findings closed", *patch.YLabel)
	require.NotNil(t, patch.XRange)
	assert.Equal(t, "2026-02-01", patch.XRange.Start)
	assert.Equal(t, "2026-03-01", patch.XRange.End)
	require.NotNil(t, patch.Colors.Actual)
	assert.Equal(t, "#123456", *patch.Colors.Actual)
	assert.Nil(t, patch.Colors.Planned)

	assert.Equal(t, map[string]bool{"planned": false, "actual": true}, visible)
}

func TestParse_EmptyDocument(t *testing.T) {
	patch, visible, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.XRange)
	assert.Nil(t, visible)
}

func TestParse_BadYAML(t *testing.T) {
	_, _, err := Parse([]byte("title: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	patch, _, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Remediation Burnup", *patch.Title)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
