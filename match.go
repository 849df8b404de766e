// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

import "bytes"

// findMatch searches the window preceding offset for the longest match of the
// bytes starting at offset. Lengths are tried longest first; at the first
// length that occurs in the window the leftmost occurrence wins, so the
// emitted distance is the deepest one. The window never reaches further back
// than maxDistance, which keeps every distance representable in the 12-bit
// token field.
func findMatch(src []byte, offset int) (rpos, rlen int, ok bool) {
	limit := min(maxMatchLen, len(src)-offset)
	if limit < minMatchLen {
		return 0, 0, false
	}

	start := offset - min(maxDistance, offset)
	window := src[start:offset]

	for l := limit; l >= minMatchLen; l-- {
		if idx := bytes.Index(window, src[offset:offset+l]); idx >= 0 {
			return offset - (start + idx), l, true
		}
	}

	return 0, 0, false
}
