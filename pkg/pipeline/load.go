package pipeline

import (
	"github.com/matzehuels/svgbar/pkg/cache"
	"github.com/matzehuels/svgbar/pkg/chart"
	"github.com/matzehuels/svgbar/pkg/chartfile"
	"github.com/matzehuels/svgbar/pkg/errors"
)

// Load reads opts.Path into opts.Definition. It is a no-op when only a
// definition is given and an error when both or neither are.
func Load(opts *Options) error {
	switch {
	case opts.Definition != nil && opts.Path != "":
		return errors.New(errors.ErrCodeInvalidInput, "set either a chart definition or a path, not both")
	case opts.Definition != nil:
		return nil
	case opts.Path == "":
		return errors.New(errors.ErrCodeInvalidInput, "chart definition or path is required")
	}
	def, err := chartfile.ReadFile(opts.Path)
	if err != nil {
		return err
	}
	opts.Definition = def
	opts.Path = ""
	return nil
}

// Build validates the definition and returns the chart with the hash of its
// canonical form.
func Build(def *chartfile.Definition) (*chart.Chart, string, error) {
	c, err := def.Chart()
	if err != nil {
		return nil, "", err
	}
	canonical, err := chartfile.Canonical(def)
	if err != nil {
		return nil, "", err
	}
	return c, cache.Hash(canonical), nil
}
