package chartfile

import "github.com/matzehuels/svgbar/pkg/chart"

// Definition is the on-disk form of a chart.
type Definition struct {
	Title       string `json:"title,omitempty" toml:"title,omitempty" validate:"max=256"`
	Orientation string `json:"orientation,omitempty" toml:"orientation,omitempty" validate:"omitempty,oneof=vertical horizontal v h"`
	Stack       string `json:"stack,omitempty" toml:"stack,omitempty" validate:"omitempty,oneof=grouped stacked side top"`
	Style       string `json:"style,omitempty" toml:"style,omitempty"`

	ScaleDivision *float64 `json:"scale_divisions,omitempty" toml:"scale_divisions,omitempty" validate:"omitempty,gt=0"`
	ScaleIntegers bool     `json:"scale_integers,omitempty" toml:"scale_integers,omitempty"`
	MinScaleValue *float64 `json:"min_scale_value,omitempty" toml:"min_scale_value,omitempty"`
	// BarGap defaults to true when absent.
	BarGap   *bool   `json:"bar_gap,omitempty" toml:"bar_gap,omitempty"`
	FontSize float64 `json:"font_size,omitempty" toml:"font_size,omitempty" validate:"gte=0"`

	Width  int `json:"width,omitempty" toml:"width,omitempty" validate:"gte=0,lte=10000"`
	Height int `json:"height,omitempty" toml:"height,omitempty" validate:"gte=0,lte=10000"`

	Fields   []string        `json:"fields" toml:"fields" validate:"required,min=1,dive,max=256"`
	Datasets []chart.Dataset `json:"datasets" toml:"datasets" validate:"required,min=1"`
}

// Config returns the chart configuration the definition describes.
func (d *Definition) Config() (chart.Config, error) {
	o, err := chart.ParseOrientation(d.Orientation)
	if err != nil {
		return chart.Config{}, err
	}
	s, err := chart.ParseStackMode(d.Stack)
	if err != nil {
		return chart.Config{}, err
	}
	return chart.Config{
		Orientation:   o,
		StackMode:     s,
		ScaleDivision: d.ScaleDivision,
		ScaleIntegers: d.ScaleIntegers,
		NoBarGap:      d.BarGap != nil && !*d.BarGap,
		MinScaleValue: d.MinScaleValue,
		FontSize:      d.FontSize,
	}, nil
}

// Chart builds and validates the chart. Datasets are added in file order.
func (d *Definition) Chart() (*chart.Chart, error) {
	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	c, err := chart.New(d.Fields, cfg)
	if err != nil {
		return nil, err
	}
	for _, ds := range d.Datasets {
		if err := c.AddData(ds); err != nil {
			return nil, err
		}
	}
	if err := c.Ready(); err != nil {
		return nil, err
	}
	return c, nil
}
