package chart

import (
	"strings"

	"github.com/matzehuels/svgbar/pkg/errors"
)

// Orientation selects which screen axis carries the values.
type Orientation string

const (
	// Vertical bars grow upward; values run along the Y axis.
	Vertical Orientation = "vertical"
	// Horizontal bars grow rightward; values run along the X axis.
	Horizontal Orientation = "horizontal"
)

// StackMode selects how datasets share a category slot.
type StackMode string

const (
	// Grouped places sibling bars side by side within a slot.
	Grouped StackMode = "grouped"
	// Stacked layers sibling bars at the same category position.
	Stacked StackMode = "stacked"
)

// DefaultFontSize is the value-label font size used when Config.FontSize is 0.
const DefaultFontSize = 12.0

// Config holds construction-time chart options.
type Config struct {
	Orientation Orientation `json:"orientation,omitempty" toml:"orientation"`
	StackMode   StackMode   `json:"stack,omitempty" toml:"stack"`

	// ScaleDivision forces a fixed value-axis increment when non-nil.
	ScaleDivision *float64 `json:"scale_divisions,omitempty" toml:"scale_divisions"`
	// ScaleIntegers rounds the computed increment to an integer >= 1.
	ScaleIntegers bool `json:"scale_integers,omitempty" toml:"scale_integers"`
	// NoBarGap disables the small gap between bars of one slot.
	NoBarGap bool `json:"no_bar_gap,omitempty" toml:"no_bar_gap"`
	// MinScaleValue replaces the data-derived axis minimum when non-nil.
	MinScaleValue *float64 `json:"min_scale_value,omitempty" toml:"min_scale_value"`

	FontSize float64 `json:"font_size,omitempty" toml:"font_size"`
}

// BarGap reports whether the inter-bar gap is enabled.
func (c Config) BarGap() bool { return !c.NoBarGap }

// IsHorizontal returns true for horizontal orientation.
func (c Config) IsHorizontal() bool { return c.Orientation == Horizontal }

// IsStacked returns true for stacked mode.
func (c Config) IsStacked() bool { return c.StackMode == Stacked }

// SetDefaults fills zero values with their defaults.
func (c *Config) SetDefaults() {
	if c.Orientation == "" {
		c.Orientation = Vertical
	}
	if c.StackMode == "" {
		c.StackMode = Grouped
	}
	if c.FontSize == 0 {
		c.FontSize = DefaultFontSize
	}
}

// Validate checks the configuration. It expects SetDefaults to have run.
func (c Config) Validate() error {
	switch c.Orientation {
	case Vertical, Horizontal:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid orientation: %q (must be vertical or horizontal)", c.Orientation)
	}
	switch c.StackMode {
	case Grouped, Stacked:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid stack mode: %q (must be grouped or stacked)", c.StackMode)
	}
	if c.ScaleDivision != nil {
		if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "scale division", *c.ScaleDivision); err != nil {
			return err
		}
	}
	if c.MinScaleValue != nil {
		if err := errors.ValidateFinite(errors.ErrCodeInvalidConfig, "min scale value", *c.MinScaleValue); err != nil {
			return err
		}
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "font size", c.FontSize); err != nil {
		return err
	}
	return nil
}

// ParseOrientation parses an orientation name, case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "invalid orientation: %q (must be vertical or horizontal)", s)
}

// ParseStackMode parses a stack mode name. The legacy names "side" and "top"
// map to Grouped and Stacked.
func ParseStackMode(s string) (StackMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grouped", "side":
		return Grouped, nil
	case "stacked", "top":
		return Stacked, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "invalid stack mode: %q (must be grouped or stacked)", s)
}
