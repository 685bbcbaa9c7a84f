package geometry

import (
	"fmt"
	"math"

	"github.com/matzehuels/svgbar/pkg/chart"
)

const (
	// usableFraction is the share of a category slot available to bars.
	usableFraction = 0.8
	// groupMargin is the share of a slot, split by dataset count, used as
	// leading margin inside a group.
	groupMargin = 0.2
	maxBarGap   = 10.0
)

// Frame holds the pixel dimensions a render pass is laid out in.
type Frame struct {
	GraphWidth  float64 `json:"graph_width"`
	GraphHeight float64 `json:"graph_height"`
	// FieldSlot is the category-axis length of one field.
	FieldSlot float64 `json:"field_slot"`
	// UnitSize is the value-axis length of one scale division.
	UnitSize float64 `json:"unit_size"`
	FontSize float64 `json:"font_size"`
}

// Rect is the screen geometry of one bar. Width and Height are never negative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a screen coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Request describes one (field, dataset) cell.
type Request struct {
	Value        float64
	DatasetIndex int
	DatasetCount int
	FieldIndex   int
	EffectiveMin float64
	Division     float64
	Mode         chart.StackMode
	// StackOffset is the sum of preceding same-sign values in the field.
	// Always 0 in grouped mode.
	StackOffset float64
}

// Engine computes bar rectangles for one orientation and frame.
type Engine struct {
	Strategy Strategy
	Frame    Frame
	BarGap   bool
}

// New returns an engine for cfg's orientation and bar gap setting.
func New(cfg chart.Config, f Frame) Engine {
	return Engine{Strategy: StrategyFor(cfg.Orientation), Frame: f, BarGap: cfg.BarGap()}
}

// Usable returns the category-axis length bars of one field may occupy.
func (e Engine) Usable() float64 {
	slot := e.Frame.FieldSlot * usableFraction
	gap := 0.0
	if e.BarGap {
		gap = math.Min(maxBarGap, slot/2)
	}
	return slot - gap
}

// Thickness returns the category-axis size of a single bar.
func (e Engine) Thickness(datasetCount int, mode chart.StackMode) float64 {
	usable := e.Usable()
	if mode == chart.Stacked {
		return usable
	}
	return usable / float64(max(1, datasetCount))
}

// Bar returns the rectangle for r. It panics if r.Division is not positive.
//
// Stacked bars take the leading group margin of the first dataset, so every
// layer of a field starts at the same category position. Grouped bars shift
// by one margin step and one bar thickness per dataset.
func (e Engine) Bar(r Request) Rect {
	if !(r.Division > 0) {
		panic(fmt.Sprintf("geometry: scale division must be positive, got %v", r.Division))
	}
	n := max(1, r.DatasetCount)
	thick := e.Thickness(n, r.Mode)

	k := r.DatasetIndex
	if r.Mode == chart.Stacked {
		k = 0
	}
	cat := e.Frame.FieldSlot*float64(r.FieldIndex) + groupMargin*(e.Frame.FieldSlot/float64(n))*float64(k+1)
	if r.Mode != chart.Stacked {
		cat += thick * float64(r.DatasetIndex)
	}

	lo, hi := e.span(r)

	s := e.Strategy
	vStart, vLen := project(e.Frame, s.ValueAxis, s.ValueSign, lo, hi)
	cStart, cLen := project(e.Frame, s.CategoryAxis(), s.CategorySign, cat, cat+thick)

	if s.ValueAxis == AxisX {
		return Rect{X: vStart, Y: cStart, Width: vLen, Height: cLen}
	}
	return Rect{X: cStart, Y: vStart, Width: cLen, Height: vLen}
}

// span returns the value-axis interval of the bar in pixels from the axis
// start. Bars never reach below the effective minimum.
func (e Engine) span(r Request) (lo, hi float64) {
	offset := 0.0
	if r.Mode == chart.Stacked {
		offset = r.StackOffset
	}
	from := math.Max(r.EffectiveMin, offset+math.Min(r.Value, 0))
	to := math.Max(from, offset+math.Max(r.Value, 0))

	px := func(v float64) float64 {
		return (v - r.EffectiveMin) / r.Division * e.Frame.UnitSize
	}
	return px(from), px(to)
}

// Anchors returns where the value label and the hover target of bar b sit.
// Both are at the bar's far end along the value axis (its top for vertical
// charts, its right edge for horizontal ones); the label is pushed further
// out by the strategy's padding.
func (e Engine) Anchors(b Rect) (label, hover Point) {
	s := e.Strategy
	font := e.Frame.FontSize
	pad := s.LabelPadFixed + s.LabelPadFont*font
	cross := s.CrossShiftFont * font

	if s.ValueAxis == AxisX {
		end := b.X + b.Width
		mid := b.Y + b.Height/2 + cross
		return Point{end + pad, mid}, Point{end, mid}
	}
	end := b.Y
	mid := b.X + b.Width/2 + cross
	return Point{mid, end - pad}, Point{mid, end}
}

// ValuePosition returns the screen coordinate on the value axis of v.
func (e Engine) ValuePosition(v, effectiveMin, division float64) float64 {
	p := (v - effectiveMin) / division * e.Frame.UnitSize
	return screen(e.Frame, e.Strategy.ValueAxis, e.Strategy.ValueSign, p)
}

// FieldPosition returns the screen coordinate on the category axis where
// field i's slot starts.
func (e Engine) FieldPosition(i int) float64 {
	return screen(e.Frame, e.Strategy.CategoryAxis(), e.Strategy.CategorySign, e.Frame.FieldSlot*float64(i))
}
