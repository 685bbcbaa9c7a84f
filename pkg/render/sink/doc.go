// Package sink provides output format renderers for bar charts.
//
// # Overview
//
// A "sink" receives the bars, value labels and hover targets of a render
// pass and turns them into a document. This package provides renderers for:
//
//   - SVG: the full chart frame with axes, labels, key and popups
//   - JSON: geometry export for external tools and tests
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] lays the canvas out in margins and a graph area, sized from the
// tick labels, field labels, title and key, then runs the pass with itself as
// the sink:
//
//	svg, err := sink.RenderSVG(ctx, c,
//	    sink.WithSize(640, 400),
//	    sink.WithTitle("Sales"),
//	    sink.WithPopups(),
//	)
//
// # SVG Options
//
//   - [WithSize]: canvas size in pixels (default 500x300)
//   - [WithTitle]: chart title above the graph
//   - [WithStyle]: palette ([styles.Classic] or [styles.Simple])
//   - [WithPopups]: show the raw value when hovering a bar
//   - [WithKey], [WithValues], [WithGuidelines]: toggle the legend, value
//     labels and guidelines (all on by default)
//
// Bars carry fill1, fill2, ... classes in dataset order. The built-in
// stylesheets define 12 of them; further datasets render unstyled.
//
// # JSON Output
//
// [RenderJSON] runs the same layout and records the pass instead of drawing
// it, so its coordinates match the SVG.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first, then convert via
// [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(ctx, c, sink.WithPDFSVGOptions(opts...))
//	png, err := sink.RenderPNG(ctx, c, sink.WithScale(2), sink.WithPNGSVGOptions(opts...))
//
// [styles.Classic]: github.com/matzehuels/svgbar/pkg/render/styles.Classic
// [styles.Simple]: github.com/matzehuels/svgbar/pkg/render/styles.Simple
// [render.ToPDF]: github.com/matzehuels/svgbar/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/svgbar/pkg/render.ToPNG
package sink
