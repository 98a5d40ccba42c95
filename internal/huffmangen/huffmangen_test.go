package huffmangen

import (
	"bytes"
	"strings"
	"testing"
)

func TestBuildTrieRootStateZero(t *testing.T) {
	trie := BuildTrie(StaticCode, StaticLen)
	if trie.root.state != 0 {
		t.Fatalf("root state = %d, want 0", trie.root.state)
	}
	if trie.NumStates() == 0 {
		t.Fatal("expected at least one state")
	}
}

func TestAssignStatesNumbersAreUniqueAndSequential(t *testing.T) {
	trie := BuildTrie(StaticCode, StaticLen)
	seen := make(map[int32]bool, trie.NumStates())
	for i, n := range trie.states {
		if int(n.state) != i {
			t.Errorf("states[%d].state = %d, want %d", i, n.state, i)
		}
		if seen[n.state] {
			t.Errorf("duplicate state number %d", n.state)
		}
		seen[n.state] = true
	}
}

func TestGenerateTableSizesAreConsistent(t *testing.T) {
	tables := Generate(StaticCode, StaticLen)

	if len(tables.NibblePacked) != tables.NumStates*16 {
		t.Errorf("NibblePacked len = %d, want %d", len(tables.NibblePacked), tables.NumStates*16)
	}
	if len(tables.FullByteFSM) != tables.NumStates*256 {
		t.Errorf("FullByteFSM len = %d, want %d", len(tables.FullByteFSM), tables.NumStates*256)
	}
	if len(tables.BitFSM) != tables.NumStates {
		t.Errorf("BitFSM len = %d, want %d", len(tables.BitFSM), tables.NumStates)
	}
	if len(tables.Accepting) != tables.NumStates {
		t.Errorf("Accepting len = %d, want %d", len(tables.Accepting), tables.NumStates)
	}
	if len(tables.StateDepth) != tables.NumStates {
		t.Errorf("StateDepth len = %d, want %d", len(tables.StateDepth), tables.NumStates)
	}
	if len(tables.EncodeTable) != NumSymbols {
		t.Errorf("EncodeTable len = %d, want %d", len(tables.EncodeTable), NumSymbols)
	}
}

func TestRootStateIsAccepting(t *testing.T) {
	// Feeding all-ones bits from the root must reach EOS before any other
	// leaf, since EOS's code is 30 consecutive 1 bits from the root.
	tables := Generate(StaticCode, StaticLen)
	if !tables.Accepting[0] {
		t.Error("root state (0) should be accepting: EOS padding may start at any byte boundary")
	}
}

func TestBuildEncodeTableBitsRoundTrip(t *testing.T) {
	encodeTable := BuildEncodeTable(StaticCode, StaticLen)
	for sym := 0; sym < NumSymbols; sym++ {
		e := encodeTable[sym]
		l := StaticLen[sym]

		var acc uint64
		for _, b := range e.Bytes {
			acc = (acc << 8) | uint64(b)
		}
		got := uint32(acc >> (40 - uint(l)))
		if got != StaticCode[sym] {
			t.Errorf("symbol %d: reconstructed code = %#x, want %#x", sym, got, StaticCode[sym])
		}
		wantByteCount := (l + 7) / 8
		if e.ByteCount != wantByteCount {
			t.Errorf("symbol %d: ByteCount = %d, want %d", sym, e.ByteCount, wantByteCount)
		}
	}
}

func TestPackNibbleEntryBitLayout(t *testing.T) {
	e := FullEntry{NextState: 5, Emitted: []byte{0x41, 0x42}}
	packed := PackNibbleEntry(e)

	if packed&(1<<31) != 0 {
		t.Error("invalid bit should be clear")
	}
	if next := (packed >> 22) & 0x1FF; next != 5 {
		t.Errorf("next_state field = %d, want 5", next)
	}
	if count := (packed >> 20) & 0x3; count != 2 {
		t.Errorf("emit_count field = %d, want 2", count)
	}
	if sym0 := (packed >> 12) & 0xFF; sym0 != 0x41 {
		t.Errorf("sym0 field = %#x, want 0x41", sym0)
	}
	if sym1 := (packed >> 4) & 0xFF; sym1 != 0x42 {
		t.Errorf("sym1 field = %#x, want 0x42", sym1)
	}
}

func TestPackNibbleEntryInvalidSetsTopBit(t *testing.T) {
	packed := PackNibbleEntry(FullEntry{Invalid: true})
	if packed != 1<<31 {
		t.Errorf("invalid entry packed = %#x, want %#x", packed, uint32(1)<<31)
	}
}

func TestPackNibbleEntrySingleEmit(t *testing.T) {
	e := FullEntry{NextState: 0, Emitted: []byte{0xFF}}
	packed := PackNibbleEntry(e)
	if count := (packed >> 20) & 0x3; count != 1 {
		t.Errorf("emit_count field = %d, want 1", count)
	}
	if sym1 := (packed >> 4) & 0xFF; sym1 != 0 {
		t.Errorf("sym1 field = %#x, want 0 when only one symbol emitted", sym1)
	}
}

func TestEmitGoModesProduceExpectedDeclarations(t *testing.T) {
	tables := Generate(StaticCode, StaticLen)

	cases := []struct {
		mode Mode
		want string
	}{
		{ModeEncode, "huffmanEncodeGenTable"},
		{ModeNibble, "huffmanNibbleFSM"},
		{ModeFullByte, "huffmanFullByteFSM"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		if err := EmitGo(&buf, "hpack", c.mode, tables); err != nil {
			t.Fatalf("mode %v: unexpected error: %v", c.mode, err)
		}
		if !strings.Contains(buf.String(), c.want) {
			t.Errorf("mode %v output missing %q", c.mode, c.want)
		}
		if !strings.HasPrefix(buf.String(), "// Code generated by cmd/huffmangen. DO NOT EDIT.\n") {
			t.Errorf("mode %v output missing generated-file header", c.mode)
		}
	}
}
