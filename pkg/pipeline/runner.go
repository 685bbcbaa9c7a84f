package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgbar/pkg/cache"
	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/observability"
)

const keyTypeArtifact = "artifact"

// Runner executes the pipeline against a cache.
//
// A Runner holds no per-run state; concurrent Execute calls with different
// options are safe as long as the cache is.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL is the artifact lifetime; zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// uses the default keyer and a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads, validates and renders the chart, serving cached artifacts
// where possible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	loadStart := time.Now()
	if err := Load(&opts); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	c, hash, err := Build(opts.Definition)
	if err != nil {
		return nil, err
	}
	result := &Result{
		Chart:     c,
		ChartHash: hash,
		Stats: Stats{
			Fields:   len(c.Fields()),
			Datasets: len(c.Datasets()),
			LoadTime: time.Since(loadStart),
		},
	}
	opts.Logger.Debug("loaded chart",
		"fields", result.Stats.Fields,
		"datasets", result.Stats.Datasets,
		"hash", hash[:12])

	renderStart := time.Now()
	artifacts, hits, err := r.RenderWithCacheInfo(ctx, c, hash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo = CacheInfo{RenderHit: len(hits) == len(opts.Formats), Hits: hits}

	opts.Logger.Info("rendered chart",
		"formats", opts.Formats,
		"cached", len(hits),
		"duration", result.Stats.RenderTime)
	return result, nil
}

// RenderWithCacheInfo renders the formats missing from the cache and stores
// them. It returns all artifacts and the formats served from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *chart.Chart, chartHash string, opts Options) (map[string][]byte, []string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var hits, missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				hooks.OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				hits = append(hits, format)
				continue
			}
			hooks.OnCacheMiss(ctx, keyTypeArtifact)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, hits, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := r.render(ctx, c, renderOpts)
	if err != nil {
		return nil, nil, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl()); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
	}
	return artifacts, hits, nil
}

// render wraps Render with the render hooks.
func (r *Runner) render(ctx context.Context, c *chart.Chart, opts Options) (map[string][]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, c, opts)

	bars := len(c.Fields()) * len(c.Datasets())
	hooks.OnRenderComplete(ctx, opts.Formats, bars, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug("rendered formats", "formats", opts.Formats, "bars", bars)
	return artifacts, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
