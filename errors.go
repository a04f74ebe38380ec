package huffpuff

import (
	"errors"
)

var (
	// ErrTruncatedHeader means fewer than 256 counts were available while
	// deserializing a frequency header.
	ErrTruncatedHeader = errors.New("huffpuff: truncated frequency header")

	// ErrTruncatedStream means the bitstream ended before the declared
	// total count of symbols had been decoded.
	ErrTruncatedStream = errors.New("huffpuff: truncated bitstream")
)
