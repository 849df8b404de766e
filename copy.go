// SPDX-License-Identifier: MIT
// Copyright (c) 2026 tjensen
// Source: github.com/tjensen/lzss

package lzss

// backRefCopy copies n bytes to dst[outPos:] from the source starting dist
// bytes earlier and returns the new output position. If dist < n the source
// range runs into the destination and newly written bytes become source bytes
// for later positions of the same token (the classic LZ run). We implement
// this by seeding one full distance chunk and then copying from the
// already-expanded region, doubling each round.
func backRefCopy(dst []byte, outPos, dist, n int) int {
	if dist == 0 || n <= 0 {
		// Distance 0 cannot be produced by the encoder; it contributes nothing.
		return outPos
	}

	src := outPos - dist
	if dist >= n {
		copy(dst[outPos:outPos+n], dst[src:src+n])
		return outPos + n
	}

	copy(dst[outPos:outPos+dist], dst[src:outPos])
	copied := dist

	for copied < n {
		copied += copy(dst[outPos+copied:outPos+n], dst[outPos:outPos+copied])
	}

	return outPos + n
}
