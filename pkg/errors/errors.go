// Package errors defines the coded errors returned across svgbar.
//
// Each precondition the chart core checks at its boundary (a dataset whose
// length differs from the field count, a non-finite value, a non-positive
// scale division) comes back as an [*Error] with a [Code]. The CLI prints
// [UserMessage]; the HTTP service maps validation codes to 400.
//
//	err := errors.New(errors.ErrCodeInvalidDataset, "dataset %q has %d values, want %d", title, got, want)
//	if errors.IsValidation(err) {
//	    // the caller's input is at fault
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error class.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidDataset Code = "INVALID_DATASET"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeUnsupported marks output the host cannot produce, such as PNG
	// without rsvg-convert.
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Validation reports whether c is one of the INVALID_* codes, i.e. the
// caller's input is at fault.
func (c Code) Validation() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error carries a code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	if e := asError(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage renders err without codes: the message, then the message of
// each cause, joined by ": ". Errors that are not *Error print as is.
func UserMessage(err error) string {
	e := asError(err)
	if e == nil {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}

// IsValidation reports whether err carries a validation code.
func IsValidation(err error) bool {
	return GetCode(err).Validation()
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
