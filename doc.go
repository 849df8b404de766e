// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

/*
Package lzss implements the LZSS codec used by PBO-style game-data archives.

The format packs tokens into packets of up to eight: a flag byte (LSB first,
bit=1 literal, bit=0 back-reference) followed by the token bytes. A
back-reference is a 16-bit little-endian word holding a 12-bit distance and a
4-bit length (3–18). The stream ends with a 4-byte little-endian additive
checksum of the plaintext. Back-references that point before the start of the
output expand to ASCII spaces; the decompression window is conceptually
pre-filled with them.

# Expand

The decompressed size is required (use ExpandOptions). From a byte slice:

	out, err := lzss.Expand(compressed, lzss.DefaultExpandOptions(expectedLen))

Into a caller-owned buffer whose length caps the output:

	n, err := lzss.ExpandInto(compressed, buf)

From an io.Reader (e.g. a payload region already located in an archive):

	out, err := lzss.ExpandFromReader(r, lzss.DefaultExpandOptions(expectedLen))

# Collapse

Collapse fails with ErrNotCompressible when the encoding would not be
strictly smaller than the input:

	out, err := lzss.Collapse(data)
*/
package lzss
