package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/render/sink"
	"github.com/matzehuels/svgbar/pkg/render/styles"
)

// Render draws c in every requested format. Options must be validated.
func Render(ctx context.Context, c *chart.Chart, opts Options) (map[string][]byte, error) {
	svgOpts, err := svgOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatSVG:
			data, err = sink.RenderSVG(ctx, c, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(ctx, c, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, c, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, c, sink.WithPDFSVGOptions(svgOpts...))
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func svgOptions(opts Options) ([]sink.SVGOption, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}
	out := []sink.SVGOption{
		sink.WithSize(opts.Width, opts.Height),
		sink.WithTitle(opts.Title),
		sink.WithStyle(style),
		sink.WithKey(!opts.NoKey),
		sink.WithValues(!opts.NoValues),
	}
	if opts.Popups {
		out = append(out, sink.WithPopups())
	}
	return out, nil
}
