package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDuration is returned for clock strings that are not MM:SS or HH:MM:SS.
	ErrMalformedDuration = errors.New("malformed duration")
	// ErrMissingField is returned when a required column is absent or unparseable.
	ErrMissingField = errors.New("missing field")
)

// DurationError carries the clock string that failed to parse
type DurationError struct {
	Value  string
	Reason string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedDuration, e.Value, e.Reason)
}

func (e *DurationError) Unwrap() error { return ErrMalformedDuration }

// FieldError identifies the row and column that broke the export's contract.
// Err is ErrMissingField for absent or non-numeric values and a *DurationError
// for bad clock strings.
type FieldError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: field %q (value %q): %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
