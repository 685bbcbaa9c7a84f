// Package pkg holds the svgbar libraries.
//
// # Overview
//
// svgbar renders bar charts (vertical or horizontal, grouped or stacked) from
// a small JSON or TOML definition to SVG, with PNG, PDF and a JSON geometry
// dump as secondary outputs. The libraries are organised leaves first:
//
//  1. [chart] - the data model and validation
//  2. [chart/scale] - scale division and tick values
//  3. [chart/axis] - the category axis
//  4. [chart/geometry] - value-to-rectangle mapping per orientation and stack mode
//  5. [chart/draw] - the render pass driving a sink
//  6. [render/sink] - SVG, JSON, PNG and PDF sinks
//  7. [chartfile] - reading and writing chart definitions
//  8. [pipeline] - load → render → cache orchestration
//  9. [cache] - artifact caches (file, in-memory LRU, Redis)
//
// # Data Flow
//
//	sales.toml
//	    ↓
//	[chartfile] (decode + validate)
//	    ↓
//	[chart] (fields, datasets, config)
//	    ↓
//	[chart/scale] once per pass → [chart/draw] → [chart/geometry] per bar
//	    ↓
//	[render/sink] → SVG / JSON → PNG / PDF
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/svgbar/pkg/chart"
//	    "github.com/matzehuels/svgbar/pkg/render/sink"
//	)
//
//	c, _ := chart.New([]string{"Jan", "Feb", "Mar"}, chart.Config{})
//	_ = c.AddData(chart.Dataset{Title: "Sales 2002", Values: []float64{12, 45, 21}})
//	svg, err := sink.RenderSVG(ctx, c, sink.WithTitle("Sales"))
//
// The [pipeline] package adds file loading and caching on top, and is what
// the svgbar CLI and HTTP service use.
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chart
// [chart/scale]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chart/scale
// [chart/axis]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chart/axis
// [chart/geometry]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chart/geometry
// [chart/draw]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chart/draw
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/render/sink
// [chartfile]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/chartfile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/svgbar/pkg/cache
package pkg
