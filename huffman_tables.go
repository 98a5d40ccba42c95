package hpack

import "github.com/chronnie/hpack/internal/huffmangen"

// huffmanFullByteEntry is one (state, byte) transition of the optional
// full-byte decode FSM (spec.md §4.E, "optional variant").
type huffmanFullByteEntry struct {
	nextState int32
	emitted   [2]byte
	emitCount uint8
	invalid   bool
}

// huffmanBitTransition is one outgoing edge of the 1-bit FSM used to replay
// synthetic padding bits during EOS/padding validation.
type huffmanBitTransition struct {
	next  int32
	emits bool
}

var (
	huffmanNumStates  int
	huffmanNibbleFSM  []uint32 // packed per huffmangen.PackNibbleEntry, len == numStates*16
	huffmanFullFSM    []huffmanFullByteEntry
	huffmanBit1FSM    []huffmanBitTransition // transition on a synthetic '1' bit, per state
	huffmanAccepting  []bool
	huffmanStateDepth []uint8
)

// huffmanBitFSM returns the precomputed per-state transition taken when
// feeding a synthetic 1-bit — the only transition huffmanPaddingValid ever
// replays.
func huffmanBitFSM() []huffmanBitTransition { return huffmanBit1FSM }

// init builds every derived Huffman table (the trie, its BFS state space,
// and the full-byte/nibble/bit FSMs) once, at process start, by running the
// same internal/huffmangen algorithm used offline by cmd/huffmangen. This
// mirrors the init()-time decode-tree construction pattern used by
// golang.org/x/net/http2/hpack, adapted here to a state-machine rather than
// a pointer tree.
func init() {
	t := huffmangen.Generate(huffmanCode, huffmanLen)

	huffmanNumStates = t.NumStates
	huffmanAccepting = t.Accepting
	huffmanStateDepth = t.StateDepth
	huffmanNibbleFSM = t.NibblePacked

	for i, e := range t.EncodeTable {
		huffmanEncodeTable[i] = huffmanEncodeEntry{
			bitLength: e.BitLength,
			byteCount: e.ByteCount,
			bytes:     e.Bytes,
		}
	}

	huffmanFullFSM = make([]huffmanFullByteEntry, len(t.FullByteFSM))
	for i, e := range t.FullByteFSM {
		out := huffmanFullByteEntry{nextState: e.NextState, invalid: e.Invalid, emitCount: uint8(len(e.Emitted))}
		copy(out.emitted[:], e.Emitted)
		huffmanFullFSM[i] = out
	}

	huffmanBit1FSM = make([]huffmanBitTransition, len(t.BitFSM))
	for i, pair := range t.BitFSM {
		huffmanBit1FSM[i] = huffmanBitTransition{next: pair[1].NextState, emits: pair[1].Emits}
	}
}

// unpackNibbleEntry decodes one packed nibble-FSM word into its fields, per
// the bit layout in huffmangen.PackNibbleEntry.
func unpackNibbleEntry(w uint32) (nextState int32, sym0, sym1 byte, emitCount uint8, invalid bool) {
	if w&(1<<31) != 0 {
		return 0, 0, 0, 0, true
	}
	nextState = int32((w >> 22) & 0x1FF)
	emitCount = uint8((w >> 20) & 0x3)
	sym0 = byte((w >> 12) & 0xFF)
	sym1 = byte((w >> 4) & 0xFF)
	return
}
