package huffmangen

// Tables is the complete set of derived Huffman decode/encode artifacts for
// a codebook, ready to be either copied into runtime package-level slices
// (by an init() path) or printed as Go source (by the offline generator).
type Tables struct {
	NumStates    int
	EncodeTable  [NumSymbols]EncodeEntry
	NibblePacked []uint32 // len == NumStates*16
	FullByteFSM  []FullEntry
	BitFSM       [][2]BitTransition
	Accepting    []bool
	StateDepth   []uint8
}

// Generate runs the full pipeline: trie construction, state assignment, and
// derivation of every table a decoder or encoder needs.
func Generate(code [NumSymbols]uint32, length [NumSymbols]uint8) *Tables {
	trie := BuildTrie(code, length)
	bitFSM := trie.BuildBitFSM()
	accepting := trie.BuildAccepting(bitFSM)

	depths := make([]uint8, trie.NumStates())
	for s := 0; s < trie.NumStates(); s++ {
		depths[s] = trie.StateDepth(s)
	}

	nibble := trie.BuildNibbleFSM()
	packed := make([]uint32, len(nibble))
	for i, e := range nibble {
		packed[i] = PackNibbleEntry(e)
	}

	return &Tables{
		NumStates:    trie.NumStates(),
		EncodeTable:  BuildEncodeTable(code, length),
		NibblePacked: packed,
		FullByteFSM:  trie.BuildFullByteFSM(),
		BitFSM:       bitFSM,
		Accepting:    accepting,
		StateDepth:   depths,
	}
}
