package sink

import (
	"math"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chart/draw"
	"github.com/matzehuels/svgbar/pkg/chart/format"
	"github.com/matzehuels/svgbar/pkg/chart/scale"
	"github.com/matzehuels/svgbar/pkg/errors"
	"github.com/matzehuels/svgbar/pkg/render/styles"
)

const (
	DefaultWidth  = 500
	DefaultHeight = 300

	border     = 10.0
	labelGap   = 5.0
	keyBox     = 12.0
	keySpacing = 5.0
	titleScale = 1.5
)

// frame is the canvas split into margins and a graph area, with the render
// pass prepared for that area.
type frame struct {
	width, height int
	left, top     int
	keyX          int
	graph         draw.Size
	plan          *draw.Plan

	valueLabels []string
}

// layout sizes the margins around the graph area from the tick labels, the
// field labels, the title and the key, then prepares the pass for what is
// left.
func layout(c *chart.Chart, r *svgRenderer) (*frame, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}
	cfg := c.Config()
	font := cfg.FontSize

	res := scale.ForChart(c)
	valueLabels := make([]string, len(res.Ticks))
	for i, t := range res.Ticks {
		valueLabels[i] = format.Grouped(t)
	}

	yLabels, xLabels := valueLabels, c.Fields()
	if cfg.IsHorizontal() {
		yLabels, xLabels = c.Fields(), valueLabels
	}

	left := border + styles.MaxTextWidth(yLabels, font) + labelGap
	top := border + font
	if r.title != "" {
		top += font*titleScale + border
	}
	bottom := border + font + labelGap
	right := border
	if cfg.IsHorizontal() {
		// last tick label is centred on the right edge; value labels sit past bar ends
		right += math.Max(styles.TextWidth(xLabels[len(xLabels)-1], font)/2, styles.MaxTextWidth(valueLabels, font)+labelGap)
	}
	var keyWidth float64
	if r.key {
		titles := make([]string, len(c.Datasets()))
		for i, d := range c.Datasets() {
			titles[i] = d.Title
		}
		keyWidth = keyBox + keySpacing + styles.MaxTextWidth(titles, font) + border
		right += keyWidth
	}

	f := &frame{
		width:       r.width,
		height:      r.height,
		left:        int(math.Ceil(left)),
		top:         int(math.Ceil(top)),
		valueLabels: valueLabels,
	}
	f.graph = draw.Size{
		Width:  math.Floor(float64(r.width) - float64(f.left) - right),
		Height: math.Floor(float64(r.height) - float64(f.top) - bottom),
	}
	if f.graph.Width <= 0 || f.graph.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas %dx%d is too small for the chart labels", r.width, r.height)
	}
	f.keyX = r.width - int(math.Ceil(keyWidth))

	plan, err := draw.PrepareScaled(c, f.graph, res)
	if err != nil {
		return nil, err
	}
	f.plan = plan
	return f, nil
}
