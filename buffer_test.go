package hpack

import "testing"

func TestRawBufferAppendAndBytes(t *testing.T) {
	b := NewRawBuffer(4)
	span := b.Append(3)
	copy(span, []byte("abc"))

	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", b.Size())
	}
	if string(b.Bytes()) != "abc" {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), "abc")
	}
}

func TestRawBufferGrowsBeyondInitialReservation(t *testing.T) {
	b := NewRawBuffer(2)
	copy(b.Append(2), []byte("ab"))
	copy(b.Append(6), []byte("cdefgh"))

	if b.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", b.Size())
	}
	if string(b.Bytes()) != "abcdefgh" {
		t.Errorf("Bytes() = %q, want %q", b.Bytes(), "abcdefgh")
	}
	if b.Capacity() < 8 {
		t.Errorf("Capacity() = %d, want >= 8", b.Capacity())
	}
}

func TestRawBufferClearKeepsCapacity(t *testing.T) {
	b := NewRawBuffer(16)
	b.Append(10)
	capBefore := b.Capacity()
	b.Clear()

	if b.Size() != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", b.Size())
	}
	if b.Capacity() != capBefore {
		t.Errorf("Capacity() after Clear() = %d, want %d", b.Capacity(), capBefore)
	}
}

func TestRawBufferResetReleasesCapacity(t *testing.T) {
	b := NewRawBuffer(16)
	b.Append(10)
	b.Reset()

	if b.Size() != 0 || b.Capacity() != 0 {
		t.Errorf("after Reset(): size=%d cap=%d, want 0,0", b.Size(), b.Capacity())
	}
}

func TestRawBufferSliceOutOfRange(t *testing.T) {
	b := NewRawBuffer(4)
	b.Append(4)

	if _, err := b.Slice(1, 10, false); err == nil {
		t.Error("expected error for pos beyond size")
	}
	if _, err := b.Slice(10, 0, false); err == nil {
		t.Error("expected error for length exceeding remaining bytes")
	}
}

func TestRawBufferSlices(t *testing.T) {
	b := NewRawBuffer(10)
	copy(b.Append(10), []byte("0123456789"))

	chunks, err := b.Slices(4, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if string(chunks[0]) != "0123" || string(chunks[1]) != "4567" || string(chunks[2]) != "89" {
		t.Errorf("unexpected chunk contents: %q %q %q", chunks[0], chunks[1], chunks[2])
	}
}
