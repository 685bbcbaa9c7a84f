package geometry

import "github.com/matzehuels/svgbar/pkg/chart"

// Axis names a screen axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Strategy describes how one orientation maps the shared layout onto screen
// coordinates.
//
// An axis with sign +1 grows from 0 toward its extent; one with sign -1 grows
// from its extent back toward 0 (SVG Y grows downward, so "up" is -1).
type Strategy struct {
	Orientation chart.Orientation

	ValueAxis    Axis
	ValueSign    float64
	CategorySign float64

	// LabelPad pushes the value label past the bar end:
	// LabelPadFixed + LabelPadFont*fontSize.
	LabelPadFixed float64
	LabelPadFont  float64
	// CrossShiftFont moves label and hover anchors along the category axis
	// by CrossShiftFont*fontSize, to sit text on the bar's midline.
	CrossShiftFont float64
	LabelStyle     string
}

// Vertical bars grow up from the bottom of the graph; fields run left to right.
var Vertical = Strategy{
	Orientation:  chart.Vertical,
	ValueAxis:    AxisY,
	ValueSign:    -1,
	CategorySign: 1,
	LabelPadFont: 0.5,
}

// Horizontal bars grow right from the left edge; fields run bottom to top.
var Horizontal = Strategy{
	Orientation:    chart.Horizontal,
	ValueAxis:      AxisX,
	ValueSign:      1,
	CategorySign:   -1,
	LabelPadFixed:  5,
	CrossShiftFont: 0.5,
	LabelStyle:     "text-anchor: start; ",
}

// StrategyFor returns the strategy for an orientation.
func StrategyFor(o chart.Orientation) Strategy {
	if o == chart.Horizontal {
		return Horizontal
	}
	return Vertical
}

// CategoryAxis returns the axis perpendicular to the value axis.
func (s Strategy) CategoryAxis() Axis {
	if s.ValueAxis == AxisX {
		return AxisY
	}
	return AxisX
}

// extent is the pixel length of axis a in frame f.
func extent(f Frame, a Axis) float64 {
	if a == AxisX {
		return f.GraphWidth
	}
	return f.GraphHeight
}

// project maps the logical interval [lo, hi] along axis a, growing with sign
// from its baseline, to a screen start and length.
func project(f Frame, a Axis, sign, lo, hi float64) (start, length float64) {
	length = hi - lo
	if sign < 0 {
		return extent(f, a) - hi, length
	}
	return lo, length
}

// screen maps a single logical position along axis a to a screen coordinate.
func screen(f Frame, a Axis, sign, p float64) float64 {
	if sign < 0 {
		return extent(f, a) - p
	}
	return p
}
