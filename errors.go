package mhash

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions. Callers
// should branch on Kind rather than matching error strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may evolve.
// Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindSize reports a digest or declared length larger than the
	// capacity bound in effect.
	KindSize Kind = "Size"
	// KindCode reports a numeric code with no registered algorithm.
	KindCode Kind = "Code"
	// KindWire reports a structural violation of the wire format: empty
	// input, a truncated varint, or a byte count that does not match the
	// declared length.
	KindWire Kind = "Wire"
	// KindVarint reports a malformed varint in a byte stream.
	KindVarint Kind = "Varint"
	// KindIO reports a failure propagated from the underlying stream.
	KindIO Kind = "IO"
)

// Error is the library's structured error type.
//
// Size carries the offending length for KindSize; Code carries the unknown
// code for KindCode. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Size    uint64
	Code    uint64
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewSizeError returns a KindSize error for a digest of n bytes.
func NewSizeError(n uint64) error {
	return &Error{Kind: KindSize, Size: n, Message: fmt.Sprintf("mhash: invalid digest size %d", n)}
}

// NewCodeError returns a KindCode error for an unknown code.
func NewCodeError(code uint64) error {
	return &Error{Kind: KindCode, Code: code, Message: fmt.Sprintf("mhash: unsupported code %#x", code)}
}

func newWireError(msg string) error {
	return &Error{Kind: KindWire, Message: "mhash: " + msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Message: "mhash: " + msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// InvalidSize returns the offending size for a KindSize error.
func InvalidSize(err error) (uint64, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindSize {
		return 0, false
	}
	return e.Size, true
}

// UnsupportedCode returns the unknown code for a KindCode error.
func UnsupportedCode(err error) (uint64, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindCode {
		return 0, false
	}
	return e.Code, true
}
