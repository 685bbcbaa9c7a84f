package draw

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/errors"
)

func newChart(t *testing.T, cfg chart.Config, fields []string, values ...[]float64) *chart.Chart {
	t.Helper()
	c, err := chart.New(fields, cfg)
	if err != nil {
		t.Fatalf("chart.New: %v", err)
	}
	for i, v := range values {
		if err := c.AddData(chart.Dataset{Title: FillClass(i), Values: v}); err != nil {
			t.Fatalf("AddData: %v", err)
		}
	}
	return c
}

func TestRunOrder(t *testing.T) {
	c := newChart(t, chart.Config{}, []string{"Jan", "Feb"}, []float64{1, 2}, []float64{3, 4})
	rec := &Recorder{}
	if _, err := Run(context.Background(), c, Size{Width: 200, Height: 100}, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantCalls := []string{
		"rect", "label", "hover",
		"rect", "label", "hover",
		"rect", "label", "hover",
		"rect", "label", "hover",
	}
	if diff := cmp.Diff(wantCalls, rec.Calls); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}

	type cell struct{ Field, Dataset int }
	var got []cell
	for _, b := range rec.Bars {
		got = append(got, cell{b.Field, b.Dataset})
	}
	want := []cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cell order mismatch (-want +got):\n%s", diff)
	}
	if rec.Bars[1].Class != "fill2" || rec.Bars[2].Class != "fill1" {
		t.Errorf("classes = %q, %q, want fill2, fill1", rec.Bars[1].Class, rec.Bars[2].Class)
	}
}

func TestFillClassBeyondPalette(t *testing.T) {
	var values [][]float64
	for i := 0; i < Palette+1; i++ {
		values = append(values, []float64{float64(i + 1)})
	}
	c := newChart(t, chart.Config{}, []string{"only"}, values...)
	rec := &Recorder{}
	if _, err := Run(context.Background(), c, Size{Width: 500, Height: 300}, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rec.Bars[len(rec.Bars)-1].Class; got != "fill13" {
		t.Errorf("last class = %q, want fill13", got)
	}
}

func TestRawVsFormatted(t *testing.T) {
	c := newChart(t, chart.Config{}, []string{"Q1"}, []float64{1234})
	rec := &Recorder{}
	if _, err := Run(context.Background(), c, Size{Width: 100, Height: 100}, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rec.Labels[0].Text; got != "1,234" {
		t.Errorf("label text = %q, want %q", got, "1,234")
	}
	if got := rec.Hovers[0].Text; got != "1234" {
		t.Errorf("hover text = %q, want %q", got, "1234")
	}
}

func TestRunCancelled(t *testing.T) {
	c := newChart(t, chart.Config{}, []string{"a", "b"}, []float64{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &Recorder{}
	_, err := Run(ctx, c, Size{Width: 100, Height: 100}, rec)
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Run() made %d sink calls after cancellation", len(rec.Calls))
	}
}

func TestPrepareFrame(t *testing.T) {
	fields := []string{"Jan", "Feb", "Mar"}
	values := []float64{12, 23, 21}

	tests := []struct {
		name      string
		cfg       chart.Config
		size      Size
		wantTicks int
		wantSlot  float64
		wantUnit  float64
	}{
		{"vertical", chart.Config{}, Size{Width: 300, Height: 240}, 9, 100, 30},
		{"horizontal", chart.Config{Orientation: chart.Horizontal}, Size{Width: 210, Height: 300}, 8, 100, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Prepare(newChart(t, tt.cfg, fields, values), tt.size)
			if err != nil {
				t.Fatalf("Prepare: %v", err)
			}
			if len(p.Scale.Ticks) != tt.wantTicks {
				t.Errorf("ticks = %v, want %d of them", p.Scale.Ticks, tt.wantTicks)
			}
			if f := p.Frame(); f.FieldSlot != tt.wantSlot || f.UnitSize != tt.wantUnit {
				t.Errorf("FieldSlot, UnitSize = %v, %v, want %v, %v", f.FieldSlot, f.UnitSize, tt.wantSlot, tt.wantUnit)
			}
			if p.EffectiveMin != 0 {
				t.Errorf("EffectiveMin = %v, want 0", p.EffectiveMin)
			}
		})
	}
}

func TestPrepareErrors(t *testing.T) {
	empty, err := chart.New([]string{"a"}, chart.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Prepare(empty, Size{Width: 100, Height: 100}); !errors.Is(err, errors.ErrCodeInvalidDataset) {
		t.Errorf("Prepare(no datasets) error = %v, want INVALID_DATASET", err)
	}

	c := newChart(t, chart.Config{}, []string{"a"}, []float64{1})
	if _, err := Prepare(c, Size{Width: 0, Height: 100}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Prepare(width 0) error = %v, want INVALID_CONFIG", err)
	}
}

func TestRunStacked(t *testing.T) {
	c := newChart(t, chart.Config{StackMode: chart.Stacked}, []string{"a"}, []float64{10}, []float64{5}, []float64{-4})
	rec := &Recorder{}
	p, err := Run(context.Background(), c, Size{Width: 100, Height: 200}, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	first, second, neg := rec.Bars[0], rec.Bars[1], rec.Bars[2]
	if first.X != second.X || first.Width != second.Width {
		t.Errorf("stacked bars differ on category axis: %+v %+v", first.Rect, second.Rect)
	}
	if diff := second.Y + second.Height - first.Y; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("second bar bottom %v, want first bar top %v", second.Y+second.Height, first.Y)
	}
	zero := p.ValuePosition(0)
	if neg.Y != zero {
		t.Errorf("negative bar top = %v, want zero baseline %v", neg.Y, zero)
	}
}

func TestRunHorizontalLabelStyle(t *testing.T) {
	c := newChart(t, chart.Config{Orientation: chart.Horizontal}, []string{"a"}, []float64{3})
	rec := &Recorder{}
	if _, err := Run(context.Background(), c, Size{Width: 100, Height: 100}, rec); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rec.Labels[0].Style; got != "text-anchor: start; " {
		t.Errorf("label style = %q, want text-anchor: start", got)
	}
}

func TestRunDeterministic(t *testing.T) {
	c := newChart(t, chart.Config{}, []string{"a", "b", "c"}, []float64{1.5, -2.25, 7}, []float64{3, 4, -1})
	size := Size{Width: 317, Height: 211}

	a, b := &Recorder{}, &Recorder{}
	if _, err := Run(context.Background(), c, size, a); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), c, size, b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("passes differ (-first +second):\n%s", diff)
	}
}

func TestRunMinScaleValueOffGrid(t *testing.T) {
	minScale := 10.0
	c := newChart(t, chart.Config{MinScaleValue: &minScale}, []string{"a"}, []float64{48})
	rec := &Recorder{}
	p, err := Run(context.Background(), c, Size{Width: 100, Height: 100}, rec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	ticks := p.Scale.Ticks
	if last := ticks[len(ticks)-1]; last < 48 {
		t.Fatalf("last tick = %v, want >= 48 (ticks %v)", last, ticks)
	}
	bar := rec.Bars[0]
	if bar.Y < 0 {
		t.Errorf("bar Y = %v, want >= 0", bar.Y)
	}
	if top := p.ValuePosition(ticks[len(ticks)-1]); bar.Y < top-1e-9 {
		t.Errorf("bar Y = %v above top tick at %v", bar.Y, top)
	}
}
