// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

// ExpandOptions configures decompression.
// OutLen is required (declared decompressed size); MaxInputSize caps the input size ExpandFromReader accepts.
type ExpandOptions struct {
	// OutLen is the declared decompressed size. Decoding never produces more
	// than OutLen bytes; a short OutLen truncates the output.
	OutLen int
	// MaxInputSize is the largest input ExpandFromReader accepts (0 = no limit).
	// The reader is read to the end before the size is checked.
	MaxInputSize int
}

// DefaultExpandOptions returns options with the given output length and no input limit.
func DefaultExpandOptions(outLen int) *ExpandOptions {
	return &ExpandOptions{OutLen: outLen}
}
