// Package scale derives value-axis tick increments and tick values.
//
// The increment ("scale division") is the range divided by ten, rounded up
// to a whole multiple of the order of magnitude just below it, so a range of
// 0..23 yields a division of 3 and a range of 0..230 a division of 30.
// Callers may override the division, or ask for whole numbers only.
//
// Compute is pure. A render pass calls it once and threads the [Result]
// through geometry and axis labelling.
package scale

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/svgbar/pkg/chart"
)

// Options controls division selection and tick extent.
type Options struct {
	// Division replaces the computed division when non-nil. Must be > 0.
	Division *float64
	// IntegersOnly rounds the division to an integer >= 1.
	IntegersOnly bool
	// ExtendMax extends the tick range by one division when max is not an
	// exact multiple of it. Vertical charts set it; horizontal ones do not.
	ExtendMax bool
}

// Result is the value-axis scale for one render pass.
type Result struct {
	Division   float64   `json:"division"`
	Ticks      []float64 `json:"ticks"`
	ClampedMin *float64  `json:"clamped_min,omitempty"`
}

// EffectiveMin returns the clamped minimum when one was computed, else min.
func (r Result) EffectiveMin(min float64) float64 {
	if r.ClampedMin != nil {
		return *r.ClampedMin
	}
	return min
}

// Intervals returns the number of divisions between the first and last tick,
// never less than one.
func (r Result) Intervals() int {
	return max(1, len(r.Ticks)-1)
}

// Compute derives the scale for [minValue, maxValue].
//
// It panics on NaN or infinite bounds and on a non-positive override;
// [chart.Chart] rejects both before a pass starts.
func Compute(minValue, maxValue float64, opts Options) Result {
	mustFinite("min", minValue)
	mustFinite("max", maxValue)

	span := maxValue - minValue
	if span == 0 {
		return Result{Division: 1, Ticks: []float64{0}}
	}

	division := niceDivision(span)
	if opts.Division != nil {
		division = *opts.Division
		if !(division > 0) || math.IsInf(division, 0) {
			panic(fmt.Sprintf("scale: invalid division override %v", division))
		}
	}
	if opts.IntegersOnly {
		division = math.Max(1, math.Round(division))
	}
	division = tidy(division, significant)

	res := Result{Division: division}

	start := minValue
	if minValue < 0 {
		clamped := -(division * math.Ceil(math.Abs(minValue)/division))
		clamped = tidy(clamped, significant)
		res.ClampedMin = &clamped
		start = clamped
	}
	limit := maxValue
	if opts.ExtendMax && !isMultiple(maxValue-start, division) {
		limit += division
	}

	res.Ticks = steps(start, limit, division)
	return res
}

// ForChart computes the scale for c's value range using its configuration.
// Vertical charts extend the top tick past the maximum; horizontal charts do
// not.
func ForChart(c *chart.Chart) Result {
	cfg := c.Config()
	minValue, maxValue := c.Range()
	return Compute(minValue, maxValue, Options{
		Division:     cfg.ScaleDivision,
		IntegersOnly: cfg.ScaleIntegers,
		ExtendMax:    !cfg.IsHorizontal(),
	})
}

// niceDivision rounds span/10 up to a multiple of its own order of magnitude.
func niceDivision(span float64) float64 {
	rough := math.Abs(span) / 10
	x := math.Ceil(math.Log10(rough) - 1)
	pow10x := math.Pow(10, x)
	return math.Ceil(rough/pow10x) * pow10x
}

// steps returns start, start+d, ... up to and including limit. Ticks are
// computed as start + i*d and rounded to the decimals of start and d, so
// 0.1*3 comes out as 0.3.
func steps(start, limit, d float64) []float64 {
	prec := max(decimals(tidy(start, significant)), decimals(d))
	eps := d * 1e-9
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*d
		if v > limit+eps {
			break
		}
		out = append(out, round(v, prec))
	}
	if len(out) == 0 {
		// min above max, e.g. a min scale value past the data
		out = append(out, start)
	}
	return out
}

// significant is the number of significant digits kept by tidy.
const significant = 12

// tidy drops float noise past n significant digits.
func tidy(v float64, n int) float64 {
	t, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', n, 64), 64)
	if err != nil {
		return v
	}
	return t
}

// round rounds v to prec fraction digits.
func round(v float64, prec int) float64 {
	t, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
	if err != nil {
		return v
	}
	return t
}

// decimals counts the fraction digits of v's shortest decimal form.
func decimals(v float64) int {
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		return len(raw) - i - 1
	}
	return 0
}

// isMultiple reports whether v is a whole multiple of d, within float tolerance.
func isMultiple(v, d float64) bool {
	q := v / d
	return math.Abs(q-math.Round(q)) < 1e-9
}

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("scale: %s is not finite: %v", name, v))
	}
}
