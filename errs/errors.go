// Package errs defines the sentinel error values and path-aware wrapper
// used across the codec to report decode and encode failures.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is against these; the wrapping helpers below
// attach the offending value(s) as formatted detail.
var (
	// ErrUnknownTagType is returned when a tag id byte does not match any
	// of the twelve known variants (or END where END is illegal).
	ErrUnknownTagType = errors.New("unknown tag type")

	// ErrUnexpectedTag is returned when a tag id does not match the id
	// expected in context: a typed top-level read, or a list element
	// whose variant disagrees with the list's head element.
	ErrUnexpectedTag = errors.New("unexpected tag")

	// ErrSeqLengthViolation is returned when a length prefix is negative
	// or exceeds the bound for its kind (i16 for strings, i32 for
	// arrays/lists).
	ErrSeqLengthViolation = errors.New("sequence length violation")

	// ErrInvalidString is returned when a tag name (the root name or a
	// compound key) is not valid Modified UTF-8. String tag payloads never
	// produce it: for those the codec falls back to a raw-bytes string
	// instead.
	ErrInvalidString = errors.New("invalid modified utf-8 string")

	// ErrVarintOverflow is returned when a varint or zig-zag varint
	// carries more continuation bytes than its width permits.
	ErrVarintOverflow = errors.New("varint overflow")

	// ErrEndAtRoot is returned when the root tag id read from a stream
	// is END (0x00); a root tag can never be the compound terminator.
	ErrEndAtRoot = errors.New("end tag not permitted at root")
)

// UnknownTagType wraps ErrUnknownTagType with the offending id.
func UnknownTagType(id byte) error {
	return fmt.Errorf("%w: 0x%02x", ErrUnknownTagType, id)
}

// UnexpectedTag wraps ErrUnexpectedTag with the expected and found ids.
func UnexpectedTag(expected, found byte) error {
	return fmt.Errorf("%w: expected 0x%02x, found 0x%02x", ErrUnexpectedTag, expected, found)
}

// SeqLengthViolation wraps ErrSeqLengthViolation with the permitted bound
// and the offending length.
func SeqLengthViolation(max int64, got int64) error {
	return fmt.Errorf("%w: must be between 0 and %d, got %d", ErrSeqLengthViolation, max, got)
}

// InvalidString wraps ErrInvalidString with the byte count that failed to
// decode, for diagnostic purposes; the raw payload is not included since
// callers that fall back to Bytes already hold it.
func InvalidString(n int) error {
	return fmt.Errorf("%w: %d bytes", ErrInvalidString, n)
}

// VarintOverflow wraps ErrVarintOverflow with the width in bits that was
// exceeded.
func VarintOverflow(width int) error {
	return fmt.Errorf("%w: width %d", ErrVarintOverflow, width)
}
