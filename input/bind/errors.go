package bind

import (
	"errors"
	"fmt"
)

// Errors returned by binding construction and map persistence.
var (
	// ErrInvalidGamepad indicates a gamepad index outside [0, 3].
	ErrInvalidGamepad = errors.New("gamepad index out of range")

	// ErrMapNotFound indicates the input map file doesn't exist or could
	// not be read.
	ErrMapNotFound = errors.New("input map file not found")

	// ErrMalformed indicates the input map document failed to parse.
	ErrMalformed = errors.New("malformed input map document")

	// ErrMissingActions indicates the document has no top-level actions
	// section.
	ErrMissingActions = errors.New("input map missing actions section")
)

// LoadErrorCode categorizes fatal input map load failures.
type LoadErrorCode uint8

const (
	// CodeIO indicates the file could not be read.
	CodeIO LoadErrorCode = iota
	// CodeParse indicates the document is not valid YAML.
	CodeParse
	// CodeFormat indicates the document parsed but does not have the
	// expected shape.
	CodeFormat
)

// String returns a human-readable name for the error code.
func (c LoadErrorCode) String() string {
	switch c {
	case CodeIO:
		return "io"
	case CodeParse:
		return "parse"
	case CodeFormat:
		return "format"
	default:
		return "unknown"
	}
}

// LoadError is the structured error produced when loading an input map
// fails outright. Soft per-entry problems (unknown binding type, unknown
// name strings) are logged and skipped instead.
type LoadError struct {
	// Path is the file that failed to load.
	Path string
	// Code categorizes the failure.
	Code LoadErrorCode
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading input map %s: %s error: %v", e.Path, e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}
