package huffmangen

// BitTransition is one outgoing edge of the 1-bit FSM, used only to replay
// synthetic padding bits during EOS/padding validation.
type BitTransition struct {
	NextState int32
	Emits     bool // landed on a leaf (any symbol, including EOS)
	Symbol    int32
}

// BuildBitFSM returns, for every state, its two transitions (on bit 0 and
// bit 1). Since the trie is complete, every internal node has both
// children, so no transition is ever a dead end; EOS-mid-stream is flagged
// by the consumer of this table, not here.
func (t *Trie) BuildBitFSM() [][2]BitTransition {
	out := make([][2]BitTransition, len(t.states))
	for i, n := range t.states {
		for bit := 0; bit < 2; bit++ {
			child := n.children[bit]
			if child.isLeaf() {
				out[i][bit] = BitTransition{NextState: 0, Emits: true, Symbol: child.symbol}
			} else {
				out[i][bit] = BitTransition{NextState: child.state, Emits: false, Symbol: -1}
			}
		}
	}
	return out
}

// BuildAccepting computes, for every state, whether continuing to feed
// all-one bits from that state reaches the EOS leaf before any other leaf.
// These are exactly the states a decoder may legally stop in when the
// remaining input is EOS padding (RFC 7541 §5.2).
func (t *Trie) BuildAccepting(bitFSM [][2]BitTransition) []bool {
	accepting := make([]bool, len(t.states))
	for s := range t.states {
		cur := int32(s)
		ok := false
		for step := 0; step < 32; step++ {
			tr := bitFSM[cur][1]
			if tr.Emits {
				ok = tr.Symbol == EOSSymbol
				break
			}
			cur = tr.NextState
		}
		accepting[s] = ok
	}
	return accepting
}

// FullEntry is one (state, input-unit) transition of the full-byte or
// nibble FSM: the next state, the symbols emitted while crossing it (at
// most two, since the shortest codeword is 5 bits), and whether the
// transition is invalid (it would emit EOS mid-stream).
type FullEntry struct {
	NextState int32
	Emitted   []byte
	Invalid   bool
}

// walk simulates consuming the given MSB-first bits of width from state s,
// returning the resulting transition. EOS emitted at any point mid-walk
// marks the transition invalid, since EOS never appears except as the
// final bits of the stream (validated separately via the accepting table).
func (t *Trie) walk(s int, value uint32, width int) FullEntry {
	cur := t.states[s]
	var emitted []byte
	for b := width - 1; b >= 0; b-- {
		bit := (value >> uint(b)) & 1
		child := cur.children[bit]
		if child.isLeaf() {
			if child.symbol == EOSSymbol {
				return FullEntry{Invalid: true}
			}
			emitted = append(emitted, byte(child.symbol))
			cur = t.root
		} else {
			cur = child
		}
	}
	return FullEntry{NextState: cur.state, Emitted: emitted}
}

// BuildNibbleFSM returns a NumStates*16 table of transitions consuming one
// 4-bit nibble at a time.
func (t *Trie) BuildNibbleFSM() []FullEntry {
	out := make([]FullEntry, t.NumStates()*16)
	for s := range t.states {
		for nib := 0; nib < 16; nib++ {
			out[s*16+nib] = t.walk(s, uint32(nib), 4)
		}
	}
	return out
}

// BuildFullByteFSM returns a NumStates*256 table of transitions consuming
// one full byte at a time.
func (t *Trie) BuildFullByteFSM() []FullEntry {
	out := make([]FullEntry, t.NumStates()*256)
	for s := range t.states {
		for b := 0; b < 256; b++ {
			out[s*256+b] = t.walk(s, uint32(b), 8)
		}
	}
	return out
}

// PackNibbleEntry packs one nibble-FSM entry into the 32-bit layout used by
// the runtime decode tables: bit31 invalid, bits[30:22] next_state (9),
// bits[21:20] emit_count (2), bits[19:12] sym0 (8), bits[11:4] sym1 (8),
// bits[3:0] reserved. Matches the packing in
// hpack/src/h2v/hpack/codegen/v2/fsm_encode_gen.h.
func PackNibbleEntry(e FullEntry) uint32 {
	if e.Invalid {
		return 1 << 31
	}
	var sym0, sym1 uint32
	n := len(e.Emitted)
	if n > 0 {
		sym0 = uint32(e.Emitted[0])
	}
	if n > 1 {
		sym1 = uint32(e.Emitted[1])
	}
	var packed uint32
	packed |= (uint32(e.NextState) & 0x1FF) << 22
	packed |= (uint32(n) & 0x3) << 20
	packed |= (sym0 & 0xFF) << 12
	packed |= (sym1 & 0xFF) << 4
	return packed
}
