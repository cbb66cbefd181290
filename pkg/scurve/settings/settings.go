// Package settings loads an optional YAML file of chart appearance
// overrides: title, axis labels, display range, colors and series
// visibility. Absent fields leave the current settings untouched.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/khairul247/s-curve/pkg/scurve/types"
)

// File mirrors the YAML document shape.
//
//	title: Remediation S-Curve
//	yLabel: Findings closed
//	xRange: {start: 2026-02-01, end: 2026-03-01}
//	colors: {planned: "#f59e0b", actual: "#0ea5a4"}
//	series: {planned: true, actual: false}
type File struct {
	Title  *string `yaml:"title"`
	XLabel *string `yaml:"xLabel"`
	YLabel *string `yaml:"yLabel"`
	XRange *struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"xRange"`
	Colors struct {
		Planned *string `yaml:"planned"`
		Actual  *string `yaml:"actual"`
	} `yaml:"colors"`
	Series map[string]bool `yaml:"series"`
}

// Load reads a settings file into a patch plus the desired per-series
// visibility (nil when the file does not mention series).
func Load(path string) (types.SettingsPatch, map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SettingsPatch{}, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a settings document.
func Parse(data []byte) (types.SettingsPatch, map[string]bool, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return types.SettingsPatch{}, nil, fmt.Errorf("parse settings yaml: %w", err)
	}

	patch := types.SettingsPatch{
		Title:  f.Title,
		XLabel: f.XLabel,
		YLabel: f.YLabel,
		Colors: types.ColorsPatch{Planned: f.Colors.Planned, Actual: f.Colors.Actual},
	}
	if f.XRange != nil {
		patch.XRange = &types.XRange{Start: f.XRange.Start, End: f.XRange.End}
	}
	return patch, f.Series, nil
}
