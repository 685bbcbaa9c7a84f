package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgbar/pkg/observability"
	"github.com/matzehuels/svgbar/pkg/pipeline"
	"github.com/matzehuels/svgbar/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file, or "-" for stdout (single input only)
	outDir   string // directory for outputs; defaults to next to each input
	formats  []string
	width    int
	height   int
	title    string
	style    string
	popups   bool
	noKey    bool
	noValues bool
	scale    float64
	noCache  bool
	refresh  bool
	jobs     int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{jobs: 4}

	cmd := &cobra.Command{
		Use:   "render [chart-file...]",
		Short: "Render chart files to SVG, PNG, PDF or JSON",
		Long: `Render one or more chart definition files (.json or .toml).

Each input is rendered to every requested format. Outputs are written next to
the input (sales.toml → sales.svg) unless --output or --out-dir is given.
Inputs are rendered concurrently; results are cached locally.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeChartFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.style != "" {
				if err := pipeline.ValidateStyle(opts.style); err != nil {
					return err
				}
			}
			if opts.output != "" && len(args) > 1 {
				return fmt.Errorf("--output takes a single input; use --out-dir for %d inputs", len(args))
			}
			if opts.output == "-" && len(opts.formats) > 1 {
				return fmt.Errorf("--output - writes one format, got %d", len(opts.formats))
			}
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, or "-" for stdout`)
	cmd.Flags().StringVar(&opts.outDir, "out-dir", "", "directory for output files")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (default from file, else 500)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (default from file, else 300)")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title (overrides the file)")
	cmd.Flags().StringVar(&opts.style, "style", "", "colour style: classic (default), simple")
	cmd.Flags().BoolVar(&opts.popups, "popups", false, "show raw values on hover")
	cmd.Flags().BoolVar(&opts.noKey, "no-key", false, "omit the dataset key")
	cmd.Flags().BoolVar(&opts.noValues, "no-values", false, "omit value labels on bars")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render and overwrite cached artifacts")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of files rendered concurrently")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("style", completeStyles)

	return cmd
}

// renderedFile is the outcome of one input.
type renderedFile struct {
	input    string
	paths    []string
	fields   int
	datasets int
	cached   bool
}

// runRender renders every input concurrently and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, inputs []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	if needsConverter(opts.formats) && !render.Available() {
		printWarning("png and pdf output need rsvg-convert (librsvg)")
	}
	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	hooks := newStatsHooks(logger)
	hooks.install()
	defer observability.Reset()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d chart(s)...", len(inputs)))
	if opts.output != "-" {
		spinner.Start()
	}

	results := make([]renderedFile, len(inputs))
	var (
		mu       sync.Mutex // serializes output writes
		finished atomic.Int32
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.jobs))
	for i, input := range inputs {
		g.Go(func() error {
			res, err := runner.Execute(gctx, opts.pipelineOptions(input))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			out := renderedFile{
				input:    input,
				fields:   res.Stats.Fields,
				datasets: res.Stats.Datasets,
				cached:   res.CacheInfo.RenderHit,
			}
			mu.Lock()
			out.paths, err = writeArtifacts(res.Artifacts, input, opts)
			mu.Unlock()
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = out
			if n := finished.Add(1); int(n) < len(inputs) {
				spinner.SetMessage("Rendered %d/%d chart(s)...", n, len(inputs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if opts.output != "-" {
			spinner.StopWithError("Render failed")
		}
		return err
	}
	if opts.output == "-" {
		return nil
	}
	spinner.Stop()

	for _, r := range results {
		printSuccess("%s", r.input)
		for _, p := range r.paths {
			printFile(p)
		}
		printStats(r.fields, r.datasets, r.cached)
	}
	prog.done(fmt.Sprintf("Rendered %d chart(s), %d artifact(s) from cache", len(inputs), hooks.hits.Load()))
	return nil
}

func (o renderOpts) pipelineOptions(input string) pipeline.Options {
	return pipeline.Options{
		Path:     input,
		Formats:  o.formats,
		Width:    o.width,
		Height:   o.height,
		Title:    o.title,
		Style:    o.style,
		Popups:   o.popups,
		NoKey:    o.noKey,
		NoValues: o.noValues,
		Scale:    o.scale,
		Refresh:  o.refresh,
	}
}

// writeArtifacts writes each artifact to its output path, in format order,
// and returns the paths written.
func writeArtifacts(artifacts map[string][]byte, input string, opts renderOpts) ([]string, error) {
	formats := slices.Sorted(maps.Keys(artifacts))
	paths := outputPaths(input, opts.output, opts.outDir, formats)

	var written []string
	for _, format := range formats {
		path := paths[format]
		out, err := openOutput(path)
		if err != nil {
			return written, err
		}
		_, err = out.Write(artifacts[format])
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		if path != "-" {
			written = append(written, path)
		}
	}
	return written, nil
}

// outputPaths maps each format to its destination.
//
// With a single format and an explicit output, the output is used as is.
// Otherwise outputs are <base>.<format>, where base is the output (minus a
// known format extension) or the input minus its extension, placed in outDir
// when set.
func outputPaths(input, output, outDir string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(base))
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, or the extension of
// input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func needsConverter(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatPNG) || slices.Contains(formats, pipeline.FormatPDF)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "-" and creates the file at path otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
