package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgbar/pkg/chart/format"
	"github.com/matzehuels/svgbar/pkg/chart/scale"
	"github.com/matzehuels/svgbar/pkg/chartfile"
	"github.com/matzehuels/svgbar/pkg/errors"
)

// scaleReport is the scale command's output.
type scaleReport struct {
	Min          float64   `json:"min"`
	Max          float64   `json:"max"`
	Division     float64   `json:"division"`
	Ticks        []float64 `json:"ticks"`
	EffectiveMin float64   `json:"effective_min"`
}

type scaleOpts struct {
	min, max   float64
	division   float64
	integers   bool
	horizontal bool
	json       bool
}

// scaleCommand creates the scale command.
func (c *CLI) scaleCommand() *cobra.Command {
	var opts scaleOpts

	cmd := &cobra.Command{
		Use:   "scale [chart-file]",
		Short: "Print the value-axis scale for a chart or a value range",
		Long: `Print the scale division and tick values that a render would use.

With a chart file the range comes from its data and configuration. Without one,
give the range with --min and --max.`,
		Example: `  svgbar scale sales.toml
  svgbar scale --min -7 --max 23
  svgbar scale --max 230 --division 50 --json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeChartFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				report scaleReport
				err    error
			)
			if len(args) == 1 {
				report, err = scaleForFile(args[0], cmd, opts)
			} else {
				report, err = scaleForRange(opts)
			}
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("computed scale",
				"division", report.Division, "ticks", len(report.Ticks))
			if opts.json {
				return writeScaleJSON(cmd.OutOrStdout(), report)
			}
			printScale(report)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.min, "min", 0, "range minimum")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "range maximum")
	cmd.Flags().Float64Var(&opts.division, "division", 0, "fixed scale division")
	cmd.Flags().BoolVar(&opts.integers, "integers", false, "round the division to a whole number")
	cmd.Flags().BoolVar(&opts.horizontal, "horizontal", false, "do not extend the top tick past the maximum")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the scale as JSON")

	return cmd
}

// scaleForFile computes the scale of a chart file. --division and
// --integers override the file's configuration.
func scaleForFile(path string, cmd *cobra.Command, opts scaleOpts) (scaleReport, error) {
	def, err := chartfile.ReadFile(path)
	if err != nil {
		return scaleReport{}, err
	}
	if cmd.Flags().Changed("division") {
		def.ScaleDivision = &opts.division
	}
	if cmd.Flags().Changed("integers") {
		def.ScaleIntegers = opts.integers
	}
	if cmd.Flags().Changed("horizontal") && opts.horizontal {
		def.Orientation = "horizontal"
	}
	ch, err := def.Chart()
	if err != nil {
		return scaleReport{}, err
	}
	minValue, maxValue := ch.Range()
	return newScaleReport(minValue, maxValue, scale.ForChart(ch)), nil
}

// scaleForRange computes the scale of a raw range.
func scaleForRange(opts scaleOpts) (scaleReport, error) {
	for name, v := range map[string]float64{"min": opts.min, "max": opts.max} {
		if err := errors.ValidateFinite(errors.ErrCodeInvalidInput, name, v); err != nil {
			return scaleReport{}, err
		}
	}
	if opts.max < opts.min {
		return scaleReport{}, errors.New(errors.ErrCodeInvalidInput, "max (%v) is below min (%v)", opts.max, opts.min)
	}
	so := scale.Options{IntegersOnly: opts.integers, ExtendMax: !opts.horizontal}
	if opts.division != 0 {
		if err := errors.ValidatePositive(errors.ErrCodeInvalidInput, "division", opts.division); err != nil {
			return scaleReport{}, err
		}
		so.Division = &opts.division
	}
	return newScaleReport(opts.min, opts.max, scale.Compute(opts.min, opts.max, so)), nil
}

func newScaleReport(minValue, maxValue float64, res scale.Result) scaleReport {
	return scaleReport{
		Min:          minValue,
		Max:          maxValue,
		Division:     res.Division,
		Ticks:        res.Ticks,
		EffectiveMin: res.EffectiveMin(minValue),
	}
}

func writeScaleJSON(w io.Writer, r scaleReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func printScale(r scaleReport) {
	ticks := make([]string, len(r.Ticks))
	for i, t := range r.Ticks {
		ticks[i] = format.Raw(t)
	}
	printKeyValue("range", fmt.Sprintf("%s .. %s", format.Raw(r.Min), format.Raw(r.Max)))
	printKeyValue("division", format.Raw(r.Division))
	printKeyValue("min", format.Raw(r.EffectiveMin))
	printKeyValue("ticks", strings.Join(ticks, " "))
}
