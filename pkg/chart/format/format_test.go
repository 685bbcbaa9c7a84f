package format

import (
	"fmt"
	"testing"
)

func TestGrouped(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234, "1,234"},
		{1234.5, "1,234.5"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
		{12, "12"},
		{0, "0"},
		{1234.5678, "1,234.5678"},
		{0.0001, "0.0001"},
		{0.00045, "0.00045"},
		{-9876543.125, "-9,876,543.125"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Grouped(tt.in); got != tt.want {
				t.Errorf("Grouped(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRaw(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234, "1234"},
		{1234.5, "1234.5"},
		{-8, "-8"},
		{0.1, "0.1"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Raw(tt.in); got != tt.want {
				t.Errorf("Raw(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupedDistinctSmallTicks(t *testing.T) {
	seen := map[string]float64{}
	for i := 0; i <= 10; i++ {
		v := float64(i) * 3e-5
		got := Grouped(v)
		if prev, ok := seen[got]; ok {
			t.Fatalf("Grouped(%v) and Grouped(%v) both %q", prev, v, got)
		}
		seen[got] = v
	}
}

func TestRawAndGroupedDiffer(t *testing.T) {
	if Grouped(1234) == Raw(1234) {
		t.Errorf("Grouped(1234) and Raw(1234) both %q, want different text", Raw(1234))
	}
}

func ExampleGrouped() {
	fmt.Println(Grouped(1234))
	fmt.Println(Raw(1234))
	// Output:
	// 1,234
	// 1234
}
