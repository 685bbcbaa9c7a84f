package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/svgbar/pkg/chart"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestBarSignCases(t *testing.T) {
	// fields Jan, Feb; one dataset [12, -8]; division 5; effective min -10.
	req := func(v float64, field int) Request {
		return Request{Value: v, DatasetCount: 1, FieldIndex: field, EffectiveMin: -10, Division: 5, Mode: chart.Grouped}
	}

	t.Run("vertical", func(t *testing.T) {
		e := Engine{Strategy: Vertical, Frame: Frame{GraphWidth: 200, GraphHeight: 100, FieldSlot: 100, UnitSize: 10}, BarGap: true}
		zero := e.ValuePosition(0, -10, 5)
		if zero != 80 {
			t.Fatalf("zero baseline = %v, want 80", zero)
		}

		jan := e.Bar(req(12, 0))
		if diff := cmp.Diff(Rect{X: 20, Y: 56, Width: 70, Height: 24}, jan, approx); diff != "" {
			t.Errorf("Jan mismatch (-want +got):\n%s", diff)
		}
		if jan.Y+jan.Height != zero {
			t.Errorf("Jan bottom = %v, want zero baseline %v", jan.Y+jan.Height, zero)
		}

		feb := e.Bar(req(-8, 1))
		if diff := cmp.Diff(Rect{X: 120, Y: 80, Width: 70, Height: 16}, feb, approx); diff != "" {
			t.Errorf("Feb mismatch (-want +got):\n%s", diff)
		}
		if feb.Y != zero {
			t.Errorf("Feb top = %v, want zero baseline %v", feb.Y, zero)
		}
	})

	t.Run("horizontal", func(t *testing.T) {
		e := Engine{Strategy: Horizontal, Frame: Frame{GraphWidth: 200, GraphHeight: 200, FieldSlot: 100, UnitSize: 10}, BarGap: true}
		zero := e.ValuePosition(0, -10, 5)
		if zero != 20 {
			t.Fatalf("zero origin = %v, want 20", zero)
		}

		jan := e.Bar(req(12, 0))
		if diff := cmp.Diff(Rect{X: 20, Y: 110, Width: 24, Height: 70}, jan, approx); diff != "" {
			t.Errorf("Jan mismatch (-want +got):\n%s", diff)
		}

		feb := e.Bar(req(-8, 1))
		if diff := cmp.Diff(Rect{X: 4, Y: 10, Width: 16, Height: 70}, feb, approx); diff != "" {
			t.Errorf("Feb mismatch (-want +got):\n%s", diff)
		}
		if feb.X+feb.Width != zero {
			t.Errorf("Feb right edge = %v, want zero origin %v", feb.X+feb.Width, zero)
		}
	})
}

func TestBarGroupedVsStacked(t *testing.T) {
	// FieldSlot 100 without gap leaves 80 usable.
	e := Engine{Strategy: Vertical, Frame: Frame{GraphWidth: 100, GraphHeight: 100, FieldSlot: 100, UnitSize: 10}}
	if e.Usable() != 80 {
		t.Fatalf("Usable() = %v, want 80", e.Usable())
	}

	bar := func(mode chart.StackMode, k int, offset float64) Rect {
		return e.Bar(Request{Value: 10, DatasetIndex: k, DatasetCount: 2, Division: 5, Mode: mode, StackOffset: offset})
	}

	g0, g1 := bar(chart.Grouped, 0, 0), bar(chart.Grouped, 1, 0)
	if g0.Width != 40 || g1.Width != 40 {
		t.Errorf("grouped widths = %v, %v, want 40", g0.Width, g1.Width)
	}
	if g1.X <= g0.X+g0.Width-1e-9 {
		t.Errorf("grouped bars overlap: %+v %+v", g0, g1)
	}

	s0, s1 := bar(chart.Stacked, 0, 0), bar(chart.Stacked, 1, 10)
	if s0.Width != 80 || s1.Width != 80 {
		t.Errorf("stacked widths = %v, %v, want 80", s0.Width, s1.Width)
	}
	if s0.X != s1.X {
		t.Errorf("stacked origins = %v, %v, want equal", s0.X, s1.X)
	}
	if s1.Y+s1.Height != s0.Y {
		t.Errorf("second stacked bar bottom = %v, want top of first %v", s1.Y+s1.Height, s0.Y)
	}
}

func TestBarGap(t *testing.T) {
	tests := []struct {
		name string
		slot float64
		gap  bool
		want float64
	}{
		{"wide slot caps gap at 10", 100, true, 70},
		{"narrow slot halves", 10, true, 4},
		{"disabled", 100, false, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Engine{Strategy: Vertical, Frame: Frame{FieldSlot: tt.slot}, BarGap: tt.gap}
			if got := e.Usable(); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBarPositiveMinimum(t *testing.T) {
	e := Engine{Strategy: Vertical, Frame: Frame{GraphHeight: 100, FieldSlot: 100, UnitSize: 10}}

	got := e.Bar(Request{Value: 12, DatasetCount: 1, EffectiveMin: 5, Division: 5})
	if diff := cmp.Diff(Rect{X: 20, Y: 86, Width: 80, Height: 14}, got, approx); diff != "" {
		t.Errorf("Bar(12) mismatch (-want +got):\n%s", diff)
	}

	got = e.Bar(Request{Value: 3, DatasetCount: 1, EffectiveMin: 5, Division: 5})
	if got.Height != 0 {
		t.Errorf("Bar(3) height = %v, want 0 below the axis minimum", got.Height)
	}
}

func TestBarDeterministic(t *testing.T) {
	e := New(chart.Config{Orientation: chart.Horizontal}, Frame{GraphWidth: 333, GraphHeight: 217, FieldSlot: 72.3, UnitSize: 19.1, FontSize: 12})
	r := Request{Value: 17.3, DatasetIndex: 2, DatasetCount: 3, FieldIndex: 1, EffectiveMin: -3, Division: 3, Mode: chart.Grouped}
	a, b := e.Bar(r), e.Bar(r)
	if a != b {
		t.Errorf("Bar not deterministic: %+v != %+v", a, b)
	}
}

func TestBarPanicsOnZeroDivision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bar with division 0 did not panic")
		}
	}()
	Engine{Strategy: Vertical}.Bar(Request{Value: 1, DatasetCount: 1})
}

func TestAnchors(t *testing.T) {
	tests := []struct {
		name       string
		strategy   Strategy
		rect       Rect
		wantLabel  Point
		wantHover  Point
		wantStyled bool
	}{
		{
			name:      "vertical",
			strategy:  Vertical,
			rect:      Rect{X: 20, Y: 56, Width: 70, Height: 24},
			wantLabel: Point{55, 50},
			wantHover: Point{55, 56},
		},
		{
			name:       "horizontal",
			strategy:   Horizontal,
			rect:       Rect{X: 20, Y: 110, Width: 24, Height: 70},
			wantLabel:  Point{49, 151},
			wantHover:  Point{44, 151},
			wantStyled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Engine{Strategy: tt.strategy, Frame: Frame{FontSize: 12}}
			label, hover := e.Anchors(tt.rect)
			if label != tt.wantLabel {
				t.Errorf("label = %+v, want %+v", label, tt.wantLabel)
			}
			if hover != tt.wantHover {
				t.Errorf("hover = %+v, want %+v", hover, tt.wantHover)
			}
			if (e.Strategy.LabelStyle != "") != tt.wantStyled {
				t.Errorf("LabelStyle = %q", e.Strategy.LabelStyle)
			}
		})
	}
}

func TestStrategyFor(t *testing.T) {
	if StrategyFor(chart.Horizontal).ValueAxis != AxisX {
		t.Error("horizontal strategy should carry values on X")
	}
	if StrategyFor(chart.Vertical).ValueAxis != AxisY {
		t.Error("vertical strategy should carry values on Y")
	}
	if Vertical.CategoryAxis() != AxisX || Horizontal.CategoryAxis() != AxisY {
		t.Error("category axis should be perpendicular to the value axis")
	}
}

func TestFieldPosition(t *testing.T) {
	v := Engine{Strategy: Vertical, Frame: Frame{GraphWidth: 300, GraphHeight: 200, FieldSlot: 100}}
	if got := v.FieldPosition(2); got != 200 {
		t.Errorf("vertical FieldPosition(2) = %v, want 200", got)
	}
	h := Engine{Strategy: Horizontal, Frame: Frame{GraphWidth: 300, GraphHeight: 200, FieldSlot: 50}}
	if got := h.FieldPosition(1); got != 150 {
		t.Errorf("horizontal FieldPosition(1) = %v, want 150", got)
	}
}
