// SPDX-License-Identifier: MIT
// Source: github.com/tjensen/lzss

package lzss

// packet assembles one flag byte plus the payload of up to eight tokens.
type packet struct {
	flags flagBits
	chunk [maxPacketBytes - 1]byte
	n     int
}

func (p *packet) empty() bool { return p.flags.empty() }

func (p *packet) full() bool { return p.flags.full() }

// size is the serialized length: flag byte plus payload.
func (p *packet) size() int { return p.n + 1 }

// pushByte appends a literal token.
func (p *packet) pushByte(b byte) {
	p.flags.push(true)
	p.chunk[p.n] = b
	p.n++
}

// pushPointer appends a back-reference token with distance rpos and copy
// length rlen. The token word keeps the low 8 distance bits in its low byte;
// the high byte carries the high 4 distance bits above the biased length.
func (p *packet) pushPointer(rpos, rlen int) {
	p.flags.push(false)
	word := ((rpos & 0xf00) << 4) | (rpos & 0xff) | (((rlen - minMatchLen) & 0xf) << 8)
	p.chunk[p.n] = byte(word & 0xff)
	p.chunk[p.n+1] = byte((word >> 8) & 0xff)
	p.n += 2
}

// appendTo appends the serialized packet to out.
func (p *packet) appendTo(out []byte) []byte {
	out = append(out, p.flags.value())
	return append(out, p.chunk[:p.n]...)
}

func (p *packet) reset() { *p = packet{} }
