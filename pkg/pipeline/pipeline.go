// Package pipeline runs the load → render → cache sequence shared by the CLI
// and the HTTP service.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "sales.toml",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Each format is cached separately under a key derived from the canonical
// chart definition and every option that changes the output bytes, so
// re-rendering an unchanged file is a cache read.
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgbar/pkg/cache"
	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chartfile"
	"github.com/matzehuels/svgbar/pkg/errors"
	"github.com/matzehuels/svgbar/pkg/render/sink"
	"github.com/matzehuels/svgbar/pkg/render/styles"
)

const (
	DefaultWidth  = sink.DefaultWidth
	DefaultHeight = sink.DefaultHeight
	DefaultStyle  = "classic"
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0
	// MaxDimension bounds width and height.
	MaxDimension = 10000
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures one pipeline run. Path, when set, is read into
// Definition by [Load].
type Options struct {
	Definition *chartfile.Definition `json:"definition,omitempty"`
	Path       string                `json:"-"`

	Formats  []string `json:"formats,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	Title    string   `json:"title,omitempty"`
	Style    string   `json:"style,omitempty"`
	Popups   bool     `json:"popups,omitempty"`
	NoKey    bool     `json:"no_key,omitempty"`
	NoValues bool     `json:"no_values,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Refresh  bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of one run.
type Result struct {
	Chart     *chart.Chart
	ChartHash string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	Fields     int
	Datasets   int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo reports which artifacts came from the cache.
type CacheInfo struct {
	// RenderHit is true when every requested format was cached.
	RenderHit bool
	Hits      []string
}

// ValidateFormat checks that format is supported. Names are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style name is registered.
func ValidateStyle(style string) error {
	_, err := styles.ByName(style)
	return err
}

// ValidateAndSetDefaults checks the options and fills defaults. Width,
// height, title and style fall back to the definition, then to the package
// defaults. The definition must be loaded. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Definition == nil {
		return errors.New(errors.ErrCodeInvalidInput, "chart definition is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = slices.Compact(slices.Sorted(slices.Values(o.Formats)))
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidInput, "scale", o.Scale); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 || o.Width > MaxDimension || o.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput, "size %dx%d out of range (0 to %d)", o.Width, o.Height, MaxDimension)
	}
	o.applyDefinition()
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// applyDefinition fills unset render options from the definition and then
// from the package defaults.
func (o *Options) applyDefinition() {
	d := o.Definition
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	if o.Style == "" {
		o.Style = d.Style
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:  format,
		Style:   o.Style,
		Title:   o.Title,
		Width:   o.Width,
		Height:  o.Height,
		Popups:  o.Popups,
		NoKey:   o.NoKey,
		NoValue: o.NoValues,
	}
	if format == FormatPNG {
		k.Scale = int(o.Scale * 100)
	}
	return k
}
