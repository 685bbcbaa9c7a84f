// Package axis exposes the field labels of a chart as its category axis.
package axis

import (
	"slices"

	"github.com/matzehuels/svgbar/pkg/chart"
)

// Category is the discrete axis enumerating field labels. On vertical charts
// it runs along X; on horizontal charts along Y.
type Category struct {
	fields      []string
	orientation chart.Orientation
}

// NewCategory returns the category axis over fields.
func NewCategory(fields []string, o chart.Orientation) Category {
	return Category{fields: slices.Clone(fields), orientation: o}
}

// Labels returns the field labels in declaration order.
func (c Category) Labels() []string { return slices.Clone(c.fields) }

// Len returns the number of fields.
func (c Category) Len() int { return len(c.fields) }

// LabelOffset returns the signed half-slot offset that centres a label in its
// band. Vertical charts grow X rightward from the slot start, so the offset is
// positive; horizontal charts grow Y upward against the pixel origin, so it is
// negative.
func (c Category) LabelOffset(slot float64) float64 {
	if c.orientation == chart.Horizontal {
		return -slot / 2
	}
	return slot / 2
}
