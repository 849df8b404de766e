// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tjensen
// Source: github.com/tjensen/lzss

package lzss

import "encoding/binary"

// Collapse compresses src and appends the 4-byte little-endian additive
// checksum of src. It returns ErrNotCompressible when the packet bytes would
// reach len(src)-4, i.e. whenever the result would not be strictly smaller
// than the input; no partial output is produced.
func Collapse(src []byte) ([]byte, error) {
	if len(src) <= checksumBytes {
		// The smallest possible flush already exceeds the budget.
		return nil, ErrNotCompressible
	}

	maxOut := len(src) - checksumBytes
	out := make([]byte, 0, len(src))

	var pkt packet
	offset := 0

	for offset < len(src) {
		if pkt.full() {
			if len(out)+pkt.size() >= maxOut {
				return nil, ErrNotCompressible
			}

			out = pkt.appendTo(out)
			pkt.reset()
		}

		if rpos, rlen, ok := findMatch(src, offset); ok {
			pkt.pushPointer(rpos, rlen)
			offset += rlen
		} else {
			pkt.pushByte(src[offset])
			offset++
		}
	}

	if !pkt.empty() {
		if len(out)+pkt.size() >= maxOut {
			return nil, ErrNotCompressible
		}

		out = pkt.appendTo(out)
	}

	return binary.LittleEndian.AppendUint32(out, checksum(src)), nil
}
