package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse failure taxonomy. The typed errors below
// unwrap to these, so callers can branch with errors.Is and still recover
// the diagnostics with errors.As.
var (
	// ErrMalformedLine is returned when a line does not split into exactly
	// four comma-separated fields.
	ErrMalformedLine = errors.New("voxview: malformed line")

	// ErrInvalidCoordinate is returned when a coordinate field is not a
	// base-10 integer.
	ErrInvalidCoordinate = errors.New("voxview: invalid coordinate")

	// ErrInvalidFlag is returned when strict flag parsing rejects a
	// solidity token. The default lenient mode never produces it.
	ErrInvalidFlag = errors.New("voxview: invalid solidity flag")
)

// MalformedLineError reports a line with the wrong field count.
type MalformedLineError struct {
	Raw    string // the line after trimming
	Fields int    // how many fields it split into
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: got %d fields, want 4", e.Raw, e.Fields)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// InvalidCoordinateError reports a coordinate field that did not parse as a
// signed base-10 integer. Field is the zero-based field index in the line.
type InvalidCoordinateError struct {
	Field int
	Raw   string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate in field %d: %q", e.Field, e.Raw)
}

func (e *InvalidCoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// InvalidFlagError reports a solidity token that is neither "true" nor
// "false" (case-insensitive) under strict flag parsing.
type InvalidFlagError struct {
	Raw string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("invalid solidity flag %q: want true or false", e.Raw)
}

func (e *InvalidFlagError) Unwrap() error { return ErrInvalidFlag }

// RejectedLine ties a parse failure to its position in the source so the
// caller can surface the line number and raw content. It is both the error
// returned by a fail-fast load and the element type collected by a
// skip-and-continue load.
type RejectedLine struct {
	Number int    // 1-based line number in the source
	Raw    string // the raw line content
	Err    error
}

func (r RejectedLine) Error() string {
	return fmt.Sprintf("line %d: %v", r.Number, r.Err)
}

func (r RejectedLine) Unwrap() error { return r.Err }
