package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/khairul247/s-curve/pkg/scurve/calc"
	"github.com/khairul247/s-curve/pkg/scurve/importer"
	"github.com/khairul247/s-curve/pkg/scurve/pipeline"
	"github.com/khairul247/s-curve/pkg/scurve/render"
	"github.com/khairul247/s-curve/pkg/scurve/settings"
	"github.com/khairul247/s-curve/pkg/scurve/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runFlags collect the overrides shared by render and export.
type runFlags struct {
	interval     string
	unit         string
	today        string
	total        float64
	regenerate   bool
	settingsPath string
	hideSeries   []string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.interval, "interval", "", "interval type override (daily, weekly, monthly)")
	cmd.Flags().StringVar(&f.unit, "unit", "", "unit type override (value, percentage)")
	cmd.Flags().StringVar(&f.today, "today", "", "today cutoff override (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.total, "total", 0, "total items override (percentage denominator)")
	cmd.Flags().BoolVar(&f.regenerate, "regenerate", false, "regenerate rows from the timeline bounds and interval type")
	cmd.Flags().StringVar(&f.settingsPath, "settings", "", "chart settings YAML file")
	cmd.Flags().StringSliceVar(&f.hideSeries, "hide", nil, "series keys to hide (planned, actual)")
}

// options validates the flags into pipeline overrides.
func (f *runFlags) options(cmd *cobra.Command) (pipeline.ExecuteOptions, error) {
	var opts pipeline.ExecuteOptions

	if f.interval != "" {
		it, ok := types.ParseIntervalType(f.interval)
		if !ok {
			return opts, fmt.Errorf("invalid interval %q (expected daily, weekly or monthly)", f.interval)
		}
		opts.IntervalType = &it
	}
	if f.unit != "" {
		ut, ok := types.ParseUnitType(f.unit)
		if !ok {
			return opts, fmt.Errorf("invalid unit %q (expected value or percentage)", f.unit)
		}
		opts.UnitType = &ut
	}
	if f.today != "" {
		if _, err := calc.ParseDate(f.today); err != nil {
			return opts, fmt.Errorf("invalid today date %q (expected YYYY-MM-DD)", f.today)
		}
		opts.TodayDate = &f.today
	}
	if cmd.Flags().Changed("total") {
		opts.TotalItems = &f.total
	}
	if f.settingsPath != "" {
		patch, visible, err := settings.Load(f.settingsPath)
		if err != nil {
			return opts, err
		}
		opts.Settings = &patch
		opts.SeriesOff = append(opts.SeriesOff, hiddenKeys(visible)...)
	}
	opts.SeriesOff = append(opts.SeriesOff, f.hideSeries...)
	opts.Regenerate = f.regenerate
	return opts, nil
}

// hiddenKeys maps the settings-file visibility table to toggle keys; series
// default to visible, so only false entries need a toggle.
func hiddenKeys(visible map[string]bool) []string {
	var keys []string
	for k, v := range visible {
		if !v {
			keys = append(keys, k)
		}
	}
	return keys
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scurve",
		Short:         "Track planned vs. actual project progress as an S-curve",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRenderCmd())
	root.AddCommand(newExportCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var flags runFlags
	var format string
	var pretty, color bool
	var maxColWidth int

	cmd := &cobra.Command{
		Use:   "render [workbook.xlsx]",
		Short: "Render the S-curve data as a table, JSON or a one-line summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.SetEnvPrefix("SCURVE")
			viper.AutomaticEnv()
			_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
			_ = viper.BindPFlag("color", cmd.Flags().Lookup("color"))

			var renderer render.Renderer
			switch f := viper.GetString("format"); f {
			case "table":
				renderer = render.NewTableRenderer()
			case "json":
				renderer = render.NewJSONRenderer()
			case "summary":
				renderer = render.NewSummaryRenderer()
			default:
				return fmt.Errorf("unknown format %q (expected table, json or summary)", f)
			}

			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			if maxColWidth <= 0 {
				if w := detectTerminalWidth(); w > 0 {
					maxColWidth = w / 5
				}
			}
			opts.Render = render.Options{
				Color:       viper.GetBool("color"),
				PrettyJSON:  pretty,
				MaxColWidth: maxColWidth,
			}

			runner := &pipeline.Runner{
				Reader:   importer.FileReader{},
				Renderer: renderer,
				Writer:   cmd.OutOrStdout(),
			}
			return describeFailure(runner.Execute(pathArg(args), opts))
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json, summary)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&color, "color", true, "colorize table output")
	cmd.Flags().IntVar(&maxColWidth, "max-col-width", 0, "max table column width (0 = from terminal width)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var flags runFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export [workbook.xlsx]",
		Short: "Export the S-curve chart as a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			runner := &pipeline.Runner{Reader: importer.FileReader{}}
			st, err := runner.Load(pathArg(args), opts)
			if err != nil {
				return describeFailure(err)
			}
			state := st.State()

			if output == "" {
				output = render.ExportFileName(state.Config.ProjectName)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			defer f.Close()

			if err := render.NewPNGRenderer().Render(f, state, opts.Render); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&output, "output", "", "output file (default derived from the project name)")
	return cmd
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// describeFailure separates sheet validation problems from plain read
// failures so the user sees which side to fix.
func describeFailure(err error) error {
	if err == nil {
		return nil
	}
	var verr *importer.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("the workbook is not importable: %w", err)
	}
	return err
}
