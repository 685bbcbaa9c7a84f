package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v1.2.3"

	info := Get()
	if info.Version != "v1.2.3" {
		t.Errorf("Get().Version = %q, want v1.2.3", info.Version)
	}
	if !strings.HasPrefix(info.String(), "version: v1.2.3\n") {
		t.Errorf("String() = %q", info.String())
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version: v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
}
