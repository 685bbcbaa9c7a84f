package sink

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chart/draw"
	"github.com/matzehuels/svgbar/pkg/chart/geometry"
	"github.com/matzehuels/svgbar/pkg/chart/scale"
)

type jsonOutput struct {
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	Title        string         `json:"title,omitempty"`
	Style        string         `json:"style"`
	Orientation  string         `json:"orientation"`
	Stack        string         `json:"stack"`
	Origin       geometry.Point `json:"origin"`
	Frame        geometry.Frame `json:"frame"`
	Scale        scale.Result   `json:"scale"`
	EffectiveMin float64        `json:"effective_min"`
	Fields       []string       `json:"fields"`
	Datasets     []string       `json:"datasets"`
	Bars         []draw.Bar     `json:"bars"`
	Labels       []draw.Label   `json:"labels"`
	Hovers       []draw.Hover   `json:"hovers"`
}

// RenderJSON exports the geometry of c as a pretty-printed JSON document.
//
// It takes the SVG options so that the frame, and with it every coordinate,
// matches what [RenderSVG] would draw. Coordinates are relative to the graph
// origin, which is reported separately.
func RenderJSON(ctx context.Context, c *chart.Chart, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	f, err := layout(c, &r)
	if err != nil {
		return nil, err
	}

	rec := &draw.Recorder{}
	if err := f.plan.Run(ctx, rec); err != nil {
		return nil, err
	}

	cfg := c.Config()
	out := jsonOutput{
		Width:        f.width,
		Height:       f.height,
		Title:        r.title,
		Style:        r.style.Name(),
		Orientation:  string(cfg.Orientation),
		Stack:        string(cfg.StackMode),
		Origin:       geometry.Point{X: float64(f.left), Y: float64(f.top)},
		Frame:        f.plan.Frame(),
		Scale:        f.plan.Scale,
		EffectiveMin: f.plan.EffectiveMin,
		Fields:       c.Fields(),
		Datasets:     make([]string, len(c.Datasets())),
		Bars:         rec.Bars,
		Labels:       rec.Labels,
		Hovers:       rec.Hovers,
	}
	for i, d := range c.Datasets() {
		out.Datasets[i] = d.Title
	}
	return json.MarshalIndent(out, "", "  ")
}
