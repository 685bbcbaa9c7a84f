package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

type countingRender struct {
	NoopRenderHooks
	mu   sync.Mutex
	bars int
}

func (c *countingRender) OnRenderComplete(_ context.Context, _ []string, bars int, _ time.Duration, _ error) {
	c.mu.Lock()
	c.bars += bars
	c.mu.Unlock()
}

type countingCache struct {
	NoopCacheHooks
	hits int
}

func (c *countingCache) OnCacheHit(context.Context, string) { c.hits++ }

type countingHTTP struct {
	NoopHTTPHooks
	statuses []int
}

func (c *countingHTTP) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.statuses = append(c.statuses, status)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	Render().OnRenderStart(ctx, []string{"svg"})
	Render().OnRenderComplete(ctx, []string{"svg"}, 6, time.Second, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
	HTTP().OnRequest(ctx, "POST", "/v1/render")
	HTTP().OnResponse(ctx, "POST", "/v1/render", 200, time.Millisecond)

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Errorf("Render() = %T, want NoopRenderHooks", Render())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	t.Cleanup(Reset)
	ctx := context.Background()

	r, c, h := &countingRender{}, &countingCache{}, &countingHTTP{}
	SetRenderHooks(r)
	SetCacheHooks(c)
	SetHTTPHooks(h)

	Render().OnRenderComplete(ctx, []string{"svg", "json"}, 12, 0, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheHit(ctx, "artifact")
	HTTP().OnResponse(ctx, "GET", "/healthz", 200, 0)
	HTTP().OnResponse(ctx, "POST", "/v1/render", 400, 0)

	if r.bars != 12 {
		t.Errorf("bars = %d, want 12", r.bars)
	}
	if c.hits != 2 {
		t.Errorf("hits = %d, want 2", c.hits)
	}
	if len(h.statuses) != 2 || h.statuses[1] != 400 {
		t.Errorf("statuses = %v, want [200 400]", h.statuses)
	}

	Reset()
	Render().OnRenderComplete(ctx, nil, 5, 0, nil)
	if r.bars != 12 {
		t.Errorf("hooks still called after Reset: bars = %d", r.bars)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	r := &countingRender{}
	SetRenderHooks(r)
	SetRenderHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Render() != r {
		t.Errorf("Render() = %T, want the registered hooks", Render())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Cleanup(Reset)
	r := &countingRender{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetRenderHooks(r)
		}()
		go func() {
			defer wg.Done()
			Render().OnRenderStart(context.Background(), nil)
		}()
	}
	wg.Wait()
}
