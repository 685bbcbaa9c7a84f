package styles

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/svgbar/pkg/errors"
)

func TestStylesheetClasses(t *testing.T) {
	css := Stylesheet(Classic{}, 12)
	for i := 1; i <= 12; i++ {
		rule := fmt.Sprintf(".key%d, .fill%d {", i, i)
		if !strings.Contains(css, rule) {
			t.Errorf("stylesheet missing %q", rule)
		}
	}
	if strings.Contains(css, ".fill13") {
		t.Error("stylesheet should not define .fill13")
	}
	if !strings.Contains(css, "font-size: 12.0px") {
		t.Error("stylesheet missing label font size")
	}
}

func TestPalettes(t *testing.T) {
	for _, s := range []Style{Classic{}, Simple{}} {
		if n := len(s.Palette()); n != 12 {
			t.Errorf("%s palette has %d colours, want 12", s.Name(), n)
		}
	}
}

func TestColor(t *testing.T) {
	if c, ok := Color(Classic{}, 0); !ok || c != "#ff0000" {
		t.Errorf("Color(0) = %q, %v, want #ff0000, true", c, ok)
	}
	if _, ok := Color(Classic{}, 12); ok {
		t.Error("Color(12) reported a colour past the palette")
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "classic", false},
		{"classic", "classic", false},
		{"Simple", "simple", false},
		{"neon", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ByName(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("ByName(%q) error = %v, want INVALID_INPUT", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByName(%q) error = %v", tt.name, err)
			}
			if s.Name() != tt.want {
				t.Errorf("ByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
			}
		})
	}
}
