package rlp

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrDataTooShort indicates a length that reaches past the end of the buffer
	// or past the end of the enclosing list.
	ErrDataTooShort = errors.New("rlp: data too short")

	// ErrInvalidRlpData indicates the top-level value did not consume the whole buffer.
	ErrInvalidRlpData = errors.New("rlp: invalid rlp data")

	// ErrTooDeep indicates lists nested deeper than the configured maximum.
	ErrTooDeep = errors.New("rlp: nesting too deep")

	// ErrTooLarge indicates an item length above the configured maximum.
	ErrTooLarge = errors.New("rlp: length exceeds maximum")

	// ErrCanonSize indicates a non-canonical size prefix.
	ErrCanonSize = errors.New("rlp: non-canonical size information")

	// ErrCanonInt indicates an integer with leading zero bytes.
	ErrCanonInt = errors.New("rlp: non-canonical integer encoding")

	// ErrUintRange indicates an integer too wide for the requested type.
	ErrUintRange = errors.New("rlp: integer out of range")

	ErrExpectedString = errors.New("rlp: expected string")
	ErrExpectedList   = errors.New("rlp: expected list")
)

// FormatError records where in the buffer decoding failed.
type FormatError struct {
	Offset int    // Offset of the item whose header or body was rejected
	Reason string // Human-readable explanation
	Err    error  // One of the sentinel errors above
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func tooShort(offset int, format string, args ...any) error {
	return &FormatError{
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
		Err:    ErrDataTooShort,
	}
}
