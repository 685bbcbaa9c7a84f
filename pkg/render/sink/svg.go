package sink

import (
	"bytes"
	"context"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chart/draw"
	"github.com/matzehuels/svgbar/pkg/render/styles"
)

const popupCSS = `
    .hoverTarget { fill-opacity: 0; cursor: pointer; }
    .popup { pointer-events: none; transition: opacity 0.15s ease; }
    .popup[visibility="hidden"] { opacity: 0; }
    .popup[visibility="visible"] { opacity: 1; }
    .popupText { fill: #000000; text-anchor: middle; font-family: sans-serif; font-weight: bold; }`

const popupJS = `
    document.querySelectorAll('.hoverTarget').forEach(el => {
      const popup = document.getElementById(el.dataset.popup);
      if (!popup) return;
      el.addEventListener('mouseenter', () => popup.setAttribute('visibility', 'visible'));
      el.addEventListener('mouseleave', () => popup.setAttribute('visibility', 'hidden'));
    });`

// hoverRadius is the radius of the invisible circle that triggers a popup.
const hoverRadius = 10

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height int
	title         string
	style         styles.Style
	popups        bool
	key           bool
	values        bool
	guidelines    bool
}

func WithSize(w, h int) SVGOption        { return func(r *svgRenderer) { r.width, r.height = w, h } }
func WithTitle(t string) SVGOption       { return func(r *svgRenderer) { r.title = t } }
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithPopups() SVGOption              { return func(r *svgRenderer) { r.popups = true } }
func WithKey(on bool) SVGOption          { return func(r *svgRenderer) { r.key = on } }
func WithValues(on bool) SVGOption       { return func(r *svgRenderer) { r.values = on } }
func WithGuidelines(on bool) SVGOption   { return func(r *svgRenderer) { r.guidelines = on } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:      DefaultWidth,
		height:     DefaultHeight,
		style:      styles.Classic{},
		key:        true,
		values:     true,
		guidelines: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.height <= 0 {
		r.height = DefaultHeight
	}
	return r
}

// RenderSVG draws c as a complete SVG document: background, title, axes,
// guidelines, tick and field labels, bars with value labels, key and, with
// [WithPopups], hover popups showing raw values.
func RenderSVG(ctx context.Context, c *chart.Chart, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	f, err := layout(c, &r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	font := c.Config().FontSize

	canvas.Start(f.width, f.height)
	if r.title != "" {
		canvas.Title(r.title)
	}
	css := styles.Stylesheet(r.style, font)
	if r.popups {
		css += popupCSS
	}
	canvas.Style("text/css", css)
	canvas.Rect(0, 0, f.width, f.height, `class="svgBackground"`)
	if r.title != "" {
		canvas.Text(f.width/2, int(border+font*titleScale), r.title, `class="mainTitle"`)
	}

	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", f.left, f.top))
	fmt.Fprintf(canvas.Writer, `<rect x="0" y="0" width="%s" height="%s" class="graphBackground"/>`+"\n",
		num(f.graph.Width), num(f.graph.Height))
	if r.guidelines {
		renderGuidelines(canvas, f)
	}

	bars := &svgSink{canvas: canvas, values: r.values, popups: r.popups}
	if err := f.plan.Run(ctx, bars); err != nil {
		return nil, err
	}

	renderAxes(canvas, f)
	renderLabels(canvas, f, font)
	if r.popups {
		bars.renderPopups(font)
	}
	canvas.Gend()

	if r.key {
		renderKey(canvas, f, c, font)
	}
	if r.popups {
		canvas.Script("text/javascript", popupJS)
	}
	canvas.End()
	return buf.Bytes(), nil
}

// svgSink writes the primitives of a render pass into the graph group.
type svgSink struct {
	canvas *svg.SVG
	values bool
	popups bool

	hovers []draw.Hover
}

func (s *svgSink) Rect(b draw.Bar) {
	fmt.Fprintf(s.canvas.Writer, `<rect x="%s" y="%s" width="%s" height="%s" class="%s"/>`+"\n",
		num(b.X), num(b.Y), num(b.Width), num(b.Height), b.Class)
}

func (s *svgSink) ValueLabel(x, y float64, text, style string) {
	if !s.values {
		return
	}
	attrs := []string{`class="dataPointLabel"`}
	if style != "" {
		attrs = append(attrs, style)
	}
	s.canvas.Text(px(x), px(y), text, attrs...)
}

func (s *svgSink) HoverTarget(x, y float64, text string) {
	if !s.popups {
		return
	}
	id := fmt.Sprintf("popup-%d", len(s.hovers)+1)
	s.canvas.Circle(px(x), px(y), hoverRadius, `class="hoverTarget"`, fmt.Sprintf(`data-popup="%s"`, id))
	s.hovers = append(s.hovers, draw.Hover{X: x, Y: y, Text: text})
}

// renderPopups writes the hidden popup groups after the bars so they paint
// on top.
func (s *svgSink) renderPopups(font float64) {
	for i, h := range s.hovers {
		s.canvas.Group(`class="popup"`, fmt.Sprintf(`id="popup-%d"`, i+1), `visibility="hidden"`)
		s.canvas.Text(px(h.X), px(h.Y-font-labelGap), h.Text, `class="popupText"`, fmt.Sprintf("font-size:%spx", num(font)))
		s.canvas.Gend()
	}
}

func renderGuidelines(canvas *svg.SVG, f *frame) {
	w, h := int(f.graph.Width), int(f.graph.Height)
	horizontal := f.plan.Chart.Config().IsHorizontal()
	for _, t := range f.plan.Scale.Ticks[1:] {
		p := px(f.plan.ValuePosition(t))
		if horizontal {
			canvas.Line(p, 0, p, h, `class="guideLines"`)
		} else {
			canvas.Line(0, p, w, p, `class="guideLines"`)
		}
	}
}

func renderAxes(canvas *svg.SVG, f *frame) {
	w, h := int(f.graph.Width), int(f.graph.Height)
	canvas.Line(0, h, w, h, `class="axis"`)
	canvas.Line(0, 0, 0, h, `class="axis"`)

	if f.plan.EffectiveMin >= 0 {
		return
	}
	zero := px(f.plan.ValuePosition(0))
	if f.plan.Chart.Config().IsHorizontal() {
		canvas.Line(zero, 0, zero, h, `class="zeroLine"`)
	} else {
		canvas.Line(0, zero, w, zero, `class="zeroLine"`)
	}
}

// renderLabels writes the tick labels along the value axis and the field
// labels, centred in their slots, along the category axis.
func renderLabels(canvas *svg.SVG, f *frame, font float64) {
	h := f.graph.Height
	below := px(h + font + labelGap)
	slot := f.plan.Frame().FieldSlot
	offset := f.plan.Category.LabelOffset(slot)
	// baseline shift that centres text vertically on a coordinate
	mid := font / 3

	if f.plan.Chart.Config().IsHorizontal() {
		for i, t := range f.plan.Scale.Ticks {
			canvas.Text(px(f.plan.ValuePosition(t)), below, f.valueLabels[i], `class="xAxisLabels"`)
		}
		for i, label := range f.plan.Category.Labels() {
			y := f.plan.FieldPosition(i) + offset + mid
			canvas.Text(-int(labelGap), px(y), label, `class="yAxisLabels"`)
		}
		return
	}

	for i, t := range f.plan.Scale.Ticks {
		y := f.plan.ValuePosition(t) + mid
		canvas.Text(-int(labelGap), px(y), f.valueLabels[i], `class="yAxisLabels"`)
	}
	for i, label := range f.plan.Category.Labels() {
		x := f.plan.FieldPosition(i) + offset
		canvas.Text(px(x), below, styles.TruncateLabel(label, slot, font), `class="xAxisLabels"`)
	}
}

// renderKey writes one swatch and title per dataset, top to bottom in
// insertion order.
func renderKey(canvas *svg.SVG, f *frame, c *chart.Chart, font float64) {
	y := f.top
	step := int(keyBox + keySpacing)
	for i, d := range c.Datasets() {
		canvas.Rect(f.keyX, y+i*step, int(keyBox), int(keyBox), fmt.Sprintf(`class="key%d"`, i+1))
		canvas.Text(f.keyX+int(keyBox+keySpacing), y+i*step+int(keyBox), d.Title, `class="keyText"`)
	}
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// px rounds a coordinate to the integer grid svgo draws on.
func px(v float64) int {
	return int(math.Round(v))
}
