package hpack

import (
	"bytes"
	"testing"
)

func TestBitPackerWriteSymbolAlignedByte(t *testing.T) {
	p := &BitPacker{}
	if err := p.WriteSymbol(0xAB, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Flush()

	if !bytes.Equal(p.Data(), []byte{0xAB}) {
		t.Errorf("got % x, want % x", p.Data(), []byte{0xAB})
	}
}

func TestBitPackerWriteSymbolAcrossBytes(t *testing.T) {
	p := &BitPacker{}
	// 5 bits (0b10101) then 5 bits (0b11110) = 10 bits total, across 2 bytes.
	if err := p.WriteSymbol(0b10101, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.WriteSymbol(0b11110, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Flush()

	want := []byte{0b10101111, 0b10000000}
	if !bytes.Equal(p.Data(), want) {
		t.Errorf("got %08b %08b, want %08b %08b", p.Data()[0], p.Data()[1], want[0], want[1])
	}
}

func TestBitPackerWriteSymbolRejectsInvalidLength(t *testing.T) {
	p := &BitPacker{}
	if err := p.WriteSymbol(1, 0); err == nil {
		t.Error("expected error for bit_len=0")
	}
	if err := p.WriteSymbol(1, 31); err == nil {
		t.Error("expected error for bit_len=31")
	}
}

func TestBitPackerPadWithSymbolNoOpWhenAligned(t *testing.T) {
	p := &BitPacker{}
	if err := p.WriteSymbol(0xFF, 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.PadWithSymbol(0x3FFFFFFF, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Flush()

	if !bytes.Equal(p.Data(), []byte{0xFF}) {
		t.Errorf("got % x, want % x (padding should be a no-op when byte-aligned)", p.Data(), []byte{0xFF})
	}
}

func TestBitPackerPadWithSymbolCompletesbyte(t *testing.T) {
	p := &BitPacker{}
	// 5 bits written, 3 bits of padding needed.
	if err := p.WriteSymbol(0b00000, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// EOS's code is all ones; padding with its high bits must set the
	// remaining 3 bits in the current byte to 1.
	if err := p.PadWithSymbol(0x3FFFFFFF, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Flush()

	want := byte(0b00000111)
	if p.Data()[0] != want {
		t.Errorf("got %08b, want %08b", p.Data()[0], want)
	}
}
