// Package observability lets the binary plug metrics or tracing into the
// render pipeline, the cache and the HTTP service without the libraries
// importing a backend.
//
// Hooks default to no-ops. Register replacements once at startup:
//
//	observability.SetRenderHooks(&promRenderHooks{})
//	observability.SetCacheHooks(&promCacheHooks{})
//
// Libraries emit events through the accessors:
//
//	observability.Render().OnRenderStart(ctx, formats)
//	// ... render ...
//	observability.Render().OnRenderComplete(ctx, formats, bars, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives pipeline render events.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	// OnRenderComplete reports the number of bars drawn per format.
	OnRenderComplete(ctx context.Context, formats []string, bars int, duration time.Duration, err error)
}

// CacheHooks receives cache events. keyType names the kind of entry, e.g.
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives inbound request events from the render service.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
}

// NoopRenderHooks ignores all events.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string) {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, int, time.Duration, error) {
}

// NoopCacheHooks ignores all events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores all events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

type registry struct {
	mu     sync.RWMutex
	render RenderHooks
	cache  CacheHooks
	http   HTTPHooks
}

var hooks = registry{render: NoopRenderHooks{}, cache: NoopCacheHooks{}, http: NoopHTTPHooks{}}

func set[H any](slot *H, h H, isNil bool) {
	if isNil {
		return
	}
	hooks.mu.Lock()
	*slot = h
	hooks.mu.Unlock()
}

func get[H any](slot *H) H {
	hooks.mu.RLock()
	defer hooks.mu.RUnlock()
	return *slot
}

// SetRenderHooks registers render hooks. nil is ignored.
func SetRenderHooks(h RenderHooks) { set(&hooks.render, h, h == nil) }

// SetCacheHooks registers cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) { set(&hooks.cache, h, h == nil) }

// SetHTTPHooks registers HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) { set(&hooks.http, h, h == nil) }

// Render returns the registered render hooks.
func Render() RenderHooks { return get(&hooks.render) }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return get(&hooks.cache) }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return get(&hooks.http) }

// Reset restores the no-op hooks.
func Reset() {
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	hooks.render, hooks.cache, hooks.http = NoopRenderHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}
}
