package hpack

import "fmt"

// BufferErrorCode identifies a RawBuffer failure mode.
type BufferErrorCode int32

// Raw buffer error codes, mirroring the taxonomy in the HPACK error domain.
const (
	BufferErrNone BufferErrorCode = iota
	BufferErrInvalidArgs
	BufferErrOutOfRange
	BufferErrOverrun
	BufferErrNullPtr
	BufferErrInvariantViolation
)

func (c BufferErrorCode) String() string {
	switch c {
	case BufferErrNone:
		return "none"
	case BufferErrInvalidArgs:
		return "invalid_args"
	case BufferErrOutOfRange:
		return "out_of_range"
	case BufferErrOverrun:
		return "overrun"
	case BufferErrNullPtr:
		return "null_ptr"
	case BufferErrInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}

// BufferError reports a RawBuffer contract violation.
type BufferError struct {
	Code BufferErrorCode
	Msg  string
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("rawbuffer: %s: %s", e.Code, e.Msg)
}

func newBufferError(code BufferErrorCode, msg string) *BufferError {
	return &BufferError{Code: code, Msg: msg}
}

// RawBuffer is a growable byte buffer with explicit, allocator-style growth
// control, zero-copy slicing, and errors reported rather than panicked.
// It backs the dynamic table's arena.
//
// size is the count of initialized bytes; capacity is the backing storage
// size. reserve never shrinks capacity; clear keeps it; reset releases it.
type RawBuffer struct {
	data []byte // len(data) == size, cap(data) == capacity
	size int
}

// NewRawBuffer creates a RawBuffer with at least initialCapacity bytes
// reserved.
func NewRawBuffer(initialCapacity int) *RawBuffer {
	b := &RawBuffer{}
	b.Reserve(initialCapacity)
	return b
}

// Reserve grows capacity to at least newCap. It never shrinks the buffer.
func (b *RawBuffer) Reserve(newCap int) {
	if newCap <= cap(b.data) {
		return
	}
	grown := make([]byte, b.size, newCap)
	copy(grown, b.data[:b.size])
	b.data = grown[:cap(grown)][:b.size]
	b.data = b.data[:b.size:cap(grown)]
}

// Append reserves n additional bytes at the end of the buffer and returns a
// writable span covering them. Growth strategy doubles capacity or grows to
// exactly size+n, whichever is larger.
func (b *RawBuffer) Append(n int) []byte {
	if n < 0 {
		return nil
	}
	if b.size+n > cap(b.data) {
		newCap := cap(b.data) * 2
		if want := b.size + n; want > newCap {
			newCap = want
		}
		b.Reserve(newCap)
	}
	start := b.size
	b.size += n
	b.data = b.data[:b.size]
	return b.data[start:b.size:b.size]
}

// Size returns the number of initialized bytes.
func (b *RawBuffer) Size() int { return b.size }

// Capacity returns the reserved backing-storage size.
func (b *RawBuffer) Capacity() int { return cap(b.data) }

// Bytes returns the initialized portion of the buffer. The returned slice is
// a borrowed view valid only until the next mutating call.
func (b *RawBuffer) Bytes() []byte { return b.data[:b.size] }

// Clear resets size to zero but retains capacity.
func (b *RawBuffer) Clear() { b.size = 0; b.data = b.data[:0] }

// Reset releases the backing storage entirely.
func (b *RawBuffer) Reset() { b.data = nil; b.size = 0 }

// Slice returns an immutable view of len bytes starting at pos. If
// endOnCapacity is true the boundary is capacity; otherwise it is size.
func (b *RawBuffer) Slice(length, pos int, endOnCapacity bool) ([]byte, error) {
	limit := b.size
	if endOnCapacity {
		limit = cap(b.data)
	}
	if limit == 0 {
		if length != 0 || pos != 0 {
			return nil, newBufferError(BufferErrOutOfRange, "empty buffer, nonzero slice requested")
		}
		return nil, nil
	}
	if b.data == nil {
		return nil, newBufferError(BufferErrNullPtr, "nil backing storage")
	}
	if length <= 0 {
		return nil, newBufferError(BufferErrInvalidArgs, "length must be positive")
	}
	if cap(b.data) < b.size {
		return nil, newBufferError(BufferErrInvariantViolation, "capacity < size")
	}
	if pos < 0 || pos >= limit {
		return nil, newBufferError(BufferErrOutOfRange, "pos out of range")
	}
	rem := limit - pos
	if length > rem {
		return nil, newBufferError(BufferErrOverrun, "length exceeds remaining bytes")
	}
	full := b.data[:cap(b.data)]
	return full[pos : pos+length], nil
}

// Slices splits [0, limit) into an ordered sequence of spans of at most
// chunk bytes each, where limit is capacity if endOnCapacity else size.
func (b *RawBuffer) Slices(chunk int, endOnCapacity bool) ([][]byte, error) {
	if chunk <= 0 {
		return nil, newBufferError(BufferErrInvalidArgs, "chunk must be positive")
	}
	if b.data == nil && b.size == 0 && cap(b.data) == 0 {
		return nil, nil
	}
	if b.data == nil {
		return nil, newBufferError(BufferErrNullPtr, "nil backing storage")
	}
	if cap(b.data) < b.size {
		return nil, newBufferError(BufferErrInvariantViolation, "capacity < size")
	}
	limit := b.size
	if endOnCapacity {
		limit = cap(b.data)
	}
	if limit == 0 {
		return nil, nil
	}
	full := b.data[:cap(b.data)]
	maxSlices := (limit + chunk - 1) / chunk
	out := make([][]byte, 0, maxSlices)
	for offset := 0; offset < limit; offset += chunk {
		end := offset + chunk
		if end > limit {
			end = limit
		}
		out = append(out, full[offset:end])
	}
	return out, nil
}
