package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input string
		want          string
	}{
		{"", "sales.toml", "sales"},
		{"", "data/sales.json", "data/sales"},
		{"out.svg", "sales.toml", "out"},
		{"out.PNG", "sales.toml", "out.PNG"},
		{"report", "sales.toml", "report"},
		{"out.v2", "sales.toml", "out.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name                  string
		input, output, outDir string
		formats               []string
		want                  map[string]string
	}{
		{
			name:    "next to input",
			input:   "charts/sales.toml",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "charts/sales.svg", "json": "charts/sales.json"},
		},
		{
			name:    "explicit single output",
			input:   "sales.toml",
			output:  "chart.image",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "chart.image"},
		},
		{
			name:    "output as base for several formats",
			input:   "sales.toml",
			output:  "out/chart.svg",
			formats: []string{"svg", "png"},
			want:    map[string]string{"svg": "out/chart.svg", "png": "out/chart.png"},
		},
		{
			name:    "out dir",
			input:   "charts/sales.toml",
			outDir:  "build",
			formats: []string{"svg"},
			want:    map[string]string{"svg": filepath.Join("build", "sales.svg")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.input, tt.output, tt.outDir, tt.formats)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%q] = %q, want %q", f, got[f], want)
				}
			}
			if len(got) != len(tt.want) {
				t.Errorf("outputPaths() has %d entries, want %d", len(got), len(tt.want))
			}
		})
	}
}
