// Package render turns prepared charts into output documents.
//
// # Overview
//
// The chart core ([draw]) computes geometry and calls a sink; this package
// tree provides the sinks and their styling:
//
//   - [sink]: the chart frame (axes, labels, key, popups) as SVG, plus JSON,
//     PNG and PDF output
//   - [styles]: palettes, the stylesheet and text helpers
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg).
//
//	svg, err := sink.RenderSVG(ctx, c)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When the tool is missing both return an [errors.ErrCodeUnsupported] error.
//
// [draw]: github.com/matzehuels/svgbar/pkg/chart/draw
// [sink]: github.com/matzehuels/svgbar/pkg/render/sink
// [styles]: github.com/matzehuels/svgbar/pkg/render/styles
// [errors.ErrCodeUnsupported]: github.com/matzehuels/svgbar/pkg/errors
package render
