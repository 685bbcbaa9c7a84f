// Package styles provides the stylesheet and text helpers for chart SVGs.
//
// A [Style] supplies the dataset palette. [Stylesheet] turns it into CSS with
// one fillN and keyN class per palette entry; bars carry the fillN class and
// legend swatches the matching keyN class. Datasets past the end of the
// palette are left unstyled and render black.
package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/svgbar/pkg/errors"
)

// Style defines the visual appearance of a chart.
type Style interface {
	// Name identifies the style on the command line and in JSON output.
	Name() string
	// Palette returns the dataset colours, in dataset order.
	Palette() []string
	// FillOpacity is applied to every bar.
	FillOpacity() float64
}

// Classic is the translucent primary-colour palette of the SVG::Graph
// default stylesheet. It styles 12 datasets.
type Classic struct{}

func (Classic) Name() string         { return "classic" }
func (Classic) FillOpacity() float64 { return 0.5 }
func (Classic) Palette() []string {
	return []string{
		"#ff0000", "#0000ff", "#00ff00", "#ffcc00",
		"#00ccff", "#ff00ff", "#00ffff", "#ffff00",
		"#cc6666", "#663399", "#339900", "#9966ff",
	}
}

// Simple is an opaque, muted palette.
type Simple struct{}

func (Simple) Name() string         { return "simple" }
func (Simple) FillOpacity() float64 { return 1 }
func (Simple) Palette() []string {
	return []string{
		"#4e79a7", "#f28e2b", "#e15759", "#76b7b2",
		"#59a14f", "#edc948", "#b07aa1", "#ff9da7",
		"#9c755f", "#bab0ac", "#86bcb6", "#d37295",
	}
}

// Names lists the built-in style names.
func Names() []string { return []string{Classic{}.Name(), Simple{}.Name()} }

// ByName returns the built-in style called name. An empty name selects Classic.
func ByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", "classic":
		return Classic{}, nil
	case "simple":
		return Simple{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown style %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Color returns the colour of dataset i (0-based) and whether the palette
// covers it.
func Color(s Style, i int) (string, bool) {
	p := s.Palette()
	if i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

// Stylesheet returns the CSS for a chart drawn with s at the given value-label
// font size.
func Stylesheet(s Style, fontSize float64) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `
    .svgBackground { fill: #ffffff; }
    .graphBackground { fill: #f0f0f0; }
    .mainTitle { text-anchor: middle; fill: #000000; font-size: %.1fpx; font-family: sans-serif; font-weight: normal; }
    .xAxisLabels, .yAxisLabels { fill: #000000; font-size: %.1fpx; font-family: sans-serif; font-weight: normal; }
    .xAxisLabels { text-anchor: middle; }
    .yAxisLabels { text-anchor: end; }
    .axis { stroke: #000000; stroke-width: 1px; }
    .zeroLine { stroke: #000000; stroke-width: 1px; stroke-dasharray: 4, 2; }
    .guideLines { stroke: #666666; stroke-width: 1px; stroke-dasharray: 5, 5; }
    .dataPointLabel { fill: #000000; text-anchor: middle; font-size: %.1fpx; font-family: sans-serif; font-weight: normal; }
    .keyText { fill: #000000; text-anchor: start; font-size: %.1fpx; font-family: sans-serif; font-weight: normal; }
`, fontSize*1.5, fontSize, fontSize, fontSize)

	for i, c := range s.Palette() {
		fmt.Fprintf(&buf, "    .key%d, .fill%d { fill: %s; fill-opacity: %.2f; stroke: none; stroke-width: 0.5px; }\n",
			i+1, i+1, c, s.FillOpacity())
	}
	return buf.String()
}
