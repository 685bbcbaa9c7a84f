package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateFinite rejects NaN and infinite numbers. name identifies the value
// in the error message.
func ValidateFinite(code Code, name string, v float64) error {
	if math.IsNaN(v) {
		return New(code, "%s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(code, "%s is infinite", name)
	}
	return nil
}

// ValidatePositive rejects non-finite values and values <= 0.
func ValidatePositive(code Code, name string, v float64) error {
	if err := ValidateFinite(code, name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(code, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateLabel checks a field or dataset label for control characters.
// Labels end up inside SVG text nodes; control characters other than tab
// produce invalid XML.
func ValidateLabel(label string) error {
	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}
	for _, r := range label {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label %q contains control characters", label)
		}
	}
	return nil
}

// chartExtensions lists the file extensions accepted for chart definitions.
var chartExtensions = map[string]bool{".json": true, ".toml": true}

// ValidateChartPath validates the path of a chart definition file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be .json or .toml
func ValidateChartPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !chartExtensions[ext] {
		return New(ErrCodeInvalidPath, "unsupported chart file %q (must be .json or .toml)", filepath.Base(path))
	}
	return nil
}
