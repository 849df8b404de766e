// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

// flagBits accumulates up to eight token flags into one octet, LSB first: the
// k-th flag pushed occupies bit k.
type flagBits struct {
	bits byte
	size int
}

func (f *flagBits) empty() bool { return f.size == 0 }

func (f *flagBits) full() bool { return f.size == packetTokens }

// push records one flag. Pushing into a full accumulator is a caller bug.
func (f *flagBits) push(value bool) {
	if f.full() {
		panic("lzss: flagBits is full")
	}

	if value {
		f.bits |= 1 << f.size
	}
	f.size++
}

func (f *flagBits) value() byte { return f.bits }

// flagReader is the decode-side dual: constructed from a flag octet, pop
// returns bit 0 and shifts right.
type flagReader struct {
	flags     byte
	remaining int
}

func newFlagReader(flags byte) flagReader {
	return flagReader{flags: flags, remaining: packetTokens}
}

func (f *flagReader) end() bool { return f.remaining == 0 }

func (f *flagReader) pop() bool {
	bit := f.flags & 1
	f.flags >>= 1
	f.remaining--

	return bit == 1
}
