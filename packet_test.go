package lzss

import (
	"bytes"
	"testing"
)

func TestPacket_StartsEmpty(t *testing.T) {
	var pkt packet

	if !pkt.empty() {
		t.Fatal("new packet should be empty")
	}
	if pkt.full() {
		t.Fatal("new packet should not be full")
	}
	if got, want := pkt.size(), 1; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}
	if got := pkt.appendTo(nil); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("unexpected serialization: % x", got)
	}
}

func TestPacket_PushByte(t *testing.T) {
	var pkt packet

	pkt.pushByte(0x42)

	if pkt.empty() {
		t.Fatal("packet should not be empty after pushByte")
	}
	if got, want := pkt.size(), 2; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}
	if got := pkt.appendTo(nil); !bytes.Equal(got, []byte{0x01, 0x42}) {
		t.Fatalf("unexpected serialization: % x", got)
	}
}

func TestPacket_PushPointer(t *testing.T) {
	var pkt packet

	pkt.pushPointer(0x876, 4)

	if pkt.empty() {
		t.Fatal("packet should not be empty after pushPointer")
	}
	if got, want := pkt.size(), 3; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}
	if got := pkt.appendTo(nil); !bytes.Equal(got, []byte{0x00, 0x76, 0x81}) {
		t.Fatalf("unexpected serialization: % x", got)
	}
}

func TestPacket_PushesInOrder(t *testing.T) {
	var pkt packet

	pkt.pushByte(0x11)
	pkt.pushPointer(0x876, 4)
	pkt.pushByte(0x22)
	pkt.pushPointer(0xfff, 3)
	pkt.pushByte(0x33)
	pkt.pushPointer(0x000, 18)

	if pkt.full() {
		t.Fatal("packet should not be full after six tokens")
	}
	if got, want := pkt.size(), 10; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}

	want := []byte{0x15, 0x11, 0x76, 0x81, 0x22, 0xff, 0xf0, 0x33, 0x00, 0x0f}
	if got := pkt.appendTo(nil); !bytes.Equal(got, want) {
		t.Fatalf("unexpected serialization:\ngot  % x\nwant % x", got, want)
	}
}

func TestPacket_FullAfterEightTokens(t *testing.T) {
	var pkt packet

	pkt.pushByte(0x11)
	pkt.pushPointer(0x876, 4)
	pkt.pushByte(0x22)
	pkt.pushPointer(0xfff, 3)
	pkt.pushByte(0x33)
	pkt.pushPointer(0x000, 18)
	pkt.pushByte(0x44)
	pkt.pushPointer(0x888, 11)

	if !pkt.full() {
		t.Fatal("packet should be full after eight tokens")
	}
	if got, want := pkt.size(), 13; got != want {
		t.Fatalf("unexpected size: got %d want %d", got, want)
	}

	want := []byte{0x55, 0x11, 0x76, 0x81, 0x22, 0xff, 0xf0, 0x33, 0x00, 0x0f, 0x44, 0x88, 0x88}
	if got := pkt.appendTo(nil); !bytes.Equal(got, want) {
		t.Fatalf("unexpected serialization:\ngot  % x\nwant % x", got, want)
	}
}

func TestPacket_ResetClearsState(t *testing.T) {
	var pkt packet

	for i := 0; i < packetTokens; i++ {
		pkt.pushByte(byte(i))
	}
	pkt.reset()

	if !pkt.empty() {
		t.Fatal("reset packet should be empty")
	}
	if got := pkt.appendTo(nil); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("unexpected serialization after reset: % x", got)
	}
}
