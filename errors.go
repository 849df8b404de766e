// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrNotCompressible is returned by Collapse when no encoding is strictly
	// smaller than the input minus checksum room. No partial output is produced.
	ErrNotCompressible = errors.New("input is not compressible")
	// ErrTooShort is returned by Expand when the input cannot hold the 4-byte
	// checksum trailer.
	ErrTooShort = errors.New("input shorter than checksum trailer")
	// ErrOptionsRequired is returned when Expand is called with nil options or a
	// negative OutLen (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when ExpandFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)

// ChecksumError is returned by Expand when the additive checksum recomputed
// over the produced output disagrees with the one embedded in the input.
type ChecksumError struct {
	// Actual is the checksum of the produced output.
	Actual uint32
	// Expected is the checksum embedded in the trailing 4 bytes of the input.
	Expected uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("Checksum mismatch (%#x != %#x)", e.Actual, e.Expected)
}
