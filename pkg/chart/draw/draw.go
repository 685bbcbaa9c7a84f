// Package draw runs one render pass over a chart.
//
// A pass computes the scale once, then walks fields in declaration order and,
// for each field, datasets in insertion order. For every cell it emits, in
// order, a rectangle, a value label carrying the grouped value text, and a
// hover target carrying the raw value text. Output goes to a [Sink]; the
// package draws nothing itself.
//
//	plan, err := draw.Prepare(c, draw.Size{Width: 400, Height: 240})
//	if err != nil {
//	    return err
//	}
//	rec := &draw.Recorder{}
//	if err := plan.Run(ctx, rec); err != nil {
//	    return err
//	}
//
// A Plan is read-only once prepared. Independent passes may run concurrently.
package draw

import (
	"context"
	"fmt"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chart/axis"
	"github.com/matzehuels/svgbar/pkg/chart/format"
	"github.com/matzehuels/svgbar/pkg/chart/geometry"
	"github.com/matzehuels/svgbar/pkg/chart/scale"
	"github.com/matzehuels/svgbar/pkg/errors"
)

// Palette is the number of fill classes the default stylesheet defines.
// Datasets past it still get fillN classes; styling them is up to the caller.
const Palette = 12

// Size is the pixel size of the graph area, excluding axes labels and key.
type Size struct {
	Width  float64
	Height float64
}

// Bar is one rectangle emitted by a pass.
type Bar struct {
	geometry.Rect
	Class   string  `json:"class"`
	Field   int     `json:"field"`
	Dataset int     `json:"dataset"`
	Value   float64 `json:"value"`
}

// Sink receives the primitives of a render pass.
type Sink interface {
	Rect(b Bar)
	ValueLabel(x, y float64, text, style string)
	HoverTarget(x, y float64, text string)
}

// Plan is a prepared render pass: the scale, the frame slots, the geometry
// engine and the category axis, all derived from one chart and size.
type Plan struct {
	Chart        *chart.Chart
	Scale        scale.Result
	EffectiveMin float64
	Engine       geometry.Engine
	Category     axis.Category
}

// Prepare computes the scale and lays out the frame for c within size.
//
// The category axis length is divided evenly between fields; the value axis
// length between scale divisions.
func Prepare(c *chart.Chart, size Size) (*Plan, error) {
	return PrepareScaled(c, size, scale.ForChart(c))
}

// PrepareScaled is Prepare with a scale the caller already computed for c,
// typically to size axis labels before the graph area is known.
func PrepareScaled(c *chart.Chart, size Size, res scale.Result) (*Plan, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "graph width", size.Width); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidConfig, "graph height", size.Height); err != nil {
		return nil, err
	}

	if len(res.Ticks) == 0 || !(res.Division > 0) {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "scale has no ticks or a non-positive division")
	}

	cfg := c.Config()
	categoryLen, valueLen := size.Width, size.Height
	if cfg.IsHorizontal() {
		categoryLen, valueLen = size.Height, size.Width
	}

	frame := geometry.Frame{
		GraphWidth:  size.Width,
		GraphHeight: size.Height,
		FieldSlot:   categoryLen / float64(len(c.Fields())),
		UnitSize:    valueLen / float64(res.Intervals()),
		FontSize:    cfg.FontSize,
	}

	// The first tick is the effective minimum, clamped or not.
	effectiveMin := res.Ticks[0]

	return &Plan{
		Chart:        c,
		Scale:        res,
		EffectiveMin: effectiveMin,
		Engine:       geometry.New(cfg, frame),
		Category:     axis.NewCategory(c.Fields(), cfg.Orientation),
	}, nil
}

// Frame returns the pixel frame of the pass.
func (p *Plan) Frame() geometry.Frame { return p.Engine.Frame }

// ValuePosition returns the screen coordinate of v on the value axis.
func (p *Plan) ValuePosition(v float64) float64 {
	return p.Engine.ValuePosition(v, p.EffectiveMin, p.Scale.Division)
}

// FieldPosition returns the screen coordinate where field i's slot starts.
func (p *Plan) FieldPosition(i int) float64 { return p.Engine.FieldPosition(i) }

// Run emits every bar of the pass to sink. It checks ctx between fields and
// returns ctx.Err() if it was cancelled; nothing needs undoing.
func (p *Plan) Run(ctx context.Context, sink Sink) error {
	cfg := p.Chart.Config()
	datasets := p.Chart.Datasets()
	style := p.Engine.Strategy.LabelStyle

	for fi := range p.Chart.Fields() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var pos, neg float64
		for di, d := range datasets {
			v := d.Values[fi]

			var offset float64
			if cfg.IsStacked() {
				if v < 0 {
					offset, neg = neg, neg+v
				} else {
					offset, pos = pos, pos+v
				}
			}

			rect := p.Engine.Bar(geometry.Request{
				Value:        v,
				DatasetIndex: di,
				DatasetCount: len(datasets),
				FieldIndex:   fi,
				EffectiveMin: p.EffectiveMin,
				Division:     p.Scale.Division,
				Mode:         cfg.StackMode,
				StackOffset:  offset,
			})
			sink.Rect(Bar{Rect: rect, Class: FillClass(di), Field: fi, Dataset: di, Value: v})

			at, hover := p.Engine.Anchors(rect)
			sink.ValueLabel(at.X, at.Y, format.Grouped(v), style)
			sink.HoverTarget(hover.X, hover.Y, format.Raw(v))
		}
	}
	return nil
}

// Run prepares and runs a pass in one step.
func Run(ctx context.Context, c *chart.Chart, size Size, sink Sink) (*Plan, error) {
	p, err := Prepare(c, size)
	if err != nil {
		return nil, err
	}
	if err := p.Run(ctx, sink); err != nil {
		return nil, err
	}
	return p, nil
}

// FillClass returns the style class of dataset i (0-based): fill1, fill2, ...
func FillClass(i int) string { return fmt.Sprintf("fill%d", i+1) }
