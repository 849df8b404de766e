// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

// checksum is the unsigned 32-bit additive checksum of data, modulo 2^32.
func checksum(data []byte) uint32 {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}

	return sum
}
