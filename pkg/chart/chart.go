package chart

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/matzehuels/svgbar/pkg/errors"
)

// Dataset is one data series: exactly one value per field, in field order.
type Dataset struct {
	Title  string    `json:"title" toml:"title"`
	Values []float64 `json:"data" toml:"data"`
}

// Chart is the validated input of one render pass: the category domain
// (fields), the datasets in insertion order and the configuration.
//
// A Chart is not safe for concurrent mutation, but once built it is read-only
// for rendering and may be shared by concurrent passes.
type Chart struct {
	fields   []string
	datasets []Dataset
	config   Config
}

// New creates a chart over the given fields. The config is defaulted and
// validated; fields must be non-empty.
func New(fields []string, cfg Config) (*Chart, error) {
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "chart needs at least one field")
	}
	for _, f := range fields {
		if err := errors.ValidateLabel(f); err != nil {
			return nil, err
		}
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Chart{fields: slices.Clone(fields), config: cfg}, nil
}

// AddData appends a dataset. It fails if the dataset length differs from the
// field count or if any value is NaN or infinite.
func (c *Chart) AddData(d Dataset) error {
	if len(d.Values) != len(c.fields) {
		return errors.New(errors.ErrCodeInvalidDataset,
			"dataset %q has %d values, want %d (one per field)", d.Title, len(d.Values), len(c.fields))
	}
	if err := errors.ValidateLabel(d.Title); err != nil {
		return err
	}
	for i, v := range d.Values {
		if err := errors.ValidateFinite(errors.ErrCodeInvalidDataset, "value", v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDataset, err, "dataset %q field %q", d.Title, c.fields[i])
		}
	}
	c.datasets = append(c.datasets, Dataset{Title: d.Title, Values: slices.Clone(d.Values)})
	return nil
}

// Fields returns the category labels in declaration order.
func (c *Chart) Fields() []string { return c.fields }

// Datasets returns the datasets in insertion order.
func (c *Chart) Datasets() []Dataset { return c.datasets }

// Config returns the defaulted configuration.
func (c *Chart) Config() Config { return c.config }

// Ready reports an error when there is nothing to draw.
func (c *Chart) Ready() error {
	if len(c.datasets) == 0 {
		return errors.New(errors.ErrCodeInvalidDataset, "chart has no datasets")
	}
	return nil
}

// Range returns the value range the axis must cover.
//
// The maximum is the largest value (largest positive stack sum in stacked
// mode) and the minimum the smallest value (smallest negative stack sum).
// Both are pulled to zero when the data does not cross it, since every bar
// grows from the zero baseline.
// Config.MinScaleValue, when set, replaces the minimum.
func (c *Chart) Range() (minValue, maxValue float64) {
	if len(c.datasets) == 0 {
		return 0, 0
	}

	var lows, highs []float64
	if c.config.IsStacked() {
		lows, highs = c.stackExtents()
	} else {
		for _, d := range c.datasets {
			lows = append(lows, floats.Min(d.Values))
			highs = append(highs, floats.Max(d.Values))
		}
	}

	maxValue = math.Max(0, floats.Max(highs))
	minValue = math.Min(0, floats.Min(lows))
	if c.config.MinScaleValue != nil {
		minValue = *c.config.MinScaleValue
	}
	return minValue, maxValue
}

// stackExtents returns per-field negative and positive stack sums.
func (c *Chart) stackExtents() (lows, highs []float64) {
	lows = make([]float64, len(c.fields))
	highs = make([]float64, len(c.fields))
	for _, d := range c.datasets {
		for i, v := range d.Values {
			if v < 0 {
				lows[i] += v
			} else {
				highs[i] += v
			}
		}
	}
	return lows, highs
}
