package chartfile

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svgbar/pkg/errors"
)

// Format is a definition file encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
)

// FormatFromPath returns the format matching path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPath, "unsupported chart file %q (must be .json or .toml)", filepath.Base(path))
}

// Read decodes a definition from r.
//
// Unknown keys are an error. Read does not build the chart; call
// [Definition.Chart] for that.
func Read(r io.Reader, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return &def, nil
}

// ReadFile reads the definition at path, choosing the format by extension.
func ReadFile(path string) (*Definition, error) {
	if err := errors.ValidateChartPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	return Read(f, format)
}

// Write encodes def to w.
func Write(w io.Writer, def *Definition, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(def); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(def); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return nil
}

// Canonical returns the definition as compact JSON, the form used for
// content hashing.
func Canonical(def *Definition) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
