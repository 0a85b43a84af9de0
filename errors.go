package streamvbyte

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the checked decode entry points in
// checked.go: truncated input, buffer too small, and invalid count. There
// is no separate sentinel for internal-invariant violations; a panic
// recovered during a checked decode is reported as ErrBufferTooSmall.
var (
	// ErrTruncatedInput is returned when the encoded buffer ends before a
	// complete stream for the requested count could be read.
	ErrTruncatedInput = errors.New("streamvbyte: truncated input")

	// ErrBufferTooSmall is returned when a caller-supplied buffer cannot
	// possibly hold the requested operation's output, and for any panic
	// recovered during a checked decode (such as a read past the end of a
	// stream whose key block claims more data than it carries).
	ErrBufferTooSmall = errors.New("streamvbyte: buffer too small")

	// ErrInvalidCount is returned for a negative or otherwise invalid
	// element count.
	ErrInvalidCount = errors.New("streamvbyte: invalid count")
)

// wrapf is a small helper to keep the %w-wrapping call sites terse.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
