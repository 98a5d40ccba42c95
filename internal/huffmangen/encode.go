package huffmangen

// EncodeEntry is one symbol's encode-table-piece representation: its code
// left-aligned into up to 5 bytes, plus bit length and byte count. Mirrors
// fsm_encode_gen.h's EncodeEntry.
type EncodeEntry struct {
	BitLength uint8
	ByteCount uint8
	Bytes     [5]byte
}

// BuildEncodeTable returns the NumSymbols-entry encode-table-piece
// representation of the codebook, independent of any trie/state machine.
func BuildEncodeTable(code [NumSymbols]uint32, length [NumSymbols]uint8) [NumSymbols]EncodeEntry {
	var out [NumSymbols]EncodeEntry
	for sym := 0; sym < NumSymbols; sym++ {
		l := length[sym]
		c := uint64(code[sym]) << (40 - l) // left-align into 40 bits (5 bytes)
		var e EncodeEntry
		e.BitLength = l
		e.ByteCount = uint8((l + 7) / 8)
		for b := 0; b < 5; b++ {
			e.Bytes[b] = byte(c >> (32 - 8*uint(b)))
		}
		out[sym] = e
	}
	return out
}
