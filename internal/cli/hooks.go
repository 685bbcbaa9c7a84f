package cli

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgbar/pkg/observability"
)

// statsHooks counts render, cache and HTTP events and logs each render at
// debug level.
type statsHooks struct {
	logger *log.Logger

	renders  atomic.Int64
	failures atomic.Int64
	hits     atomic.Int64
	misses   atomic.Int64
	written  atomic.Int64 // bytes stored in the cache
	requests atomic.Int64
	errors5x atomic.Int64
}

func newStatsHooks(logger *log.Logger) *statsHooks {
	return &statsHooks{logger: logger}
}

// install registers h as the process-wide hooks.
func (h *statsHooks) install() {
	observability.SetRenderHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h *statsHooks) OnRenderStart(context.Context, []string) {}

func (h *statsHooks) OnRenderComplete(_ context.Context, formats []string, bars int, d time.Duration, err error) {
	h.renders.Add(1)
	if err != nil {
		h.failures.Add(1)
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("rendered", "formats", formats, "bars", bars, "took", d.Round(time.Microsecond))
}

func (h *statsHooks) OnCacheHit(context.Context, string)  { h.hits.Add(1) }
func (h *statsHooks) OnCacheMiss(context.Context, string) { h.misses.Add(1) }

func (h *statsHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.written.Add(int64(size))
}

func (h *statsHooks) OnRequest(context.Context, string, string) { h.requests.Add(1) }

func (h *statsHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.errors5x.Add(1)
		h.logger.Warn("server error", "method", method, "path", path, "status", status, "took", d)
	}
}

// logSummary logs the totals at info level.
func (h *statsHooks) logSummary() {
	h.logger.Info("render stats",
		"renders", h.renders.Load(),
		"failures", h.failures.Load(),
		"cache_hits", h.hits.Load(),
		"cache_misses", h.misses.Load(),
		"cached_bytes", h.written.Load(),
		"requests", h.requests.Load(),
		"server_errors", h.errors5x.Load())
}
