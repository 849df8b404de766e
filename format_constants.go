// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tjensen
// Source: github.com/tjensen/lzss

package lzss

// Format constants: window and match bounds, packet shape, checksum trailer.

// Match bounds. A back-reference token stores the distance in 12 bits and the
// length biased by the minimum (rlen-3) in the remaining 4 bits.
const (
	maxDistance = 0xfff // deepest representable back-reference
	minMatchLen = 3
	maxMatchLen = 18
)

// Packet shape: one flag byte describing up to 8 tokens.
const (
	packetTokens   = 8
	maxPacketBytes = 1 + packetTokens*2 // flag byte + 8 two-byte tokens
)

// Checksum trailer and window pre-fill.
const (
	checksumBytes = 4
	padByte       = 0x20 // pre-origin references expand to ASCII spaces
)
