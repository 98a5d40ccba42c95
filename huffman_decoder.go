package hpack

// HuffmanDecode Huffman-decodes src per RFC 7541 §5.2, returning freshly
// allocated output. Decoding is octet-transparent: no assumption is made
// about the decoded bytes forming valid UTF-8 or any other text encoding.
func HuffmanDecode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)*2)
	n, err := huffmanDecodeAppend(dst, src)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// HuffmanDecodeInto Huffman-decodes src, appending decoded bytes to dst and
// returning the extended slice. Mirrors spec.md §6's
// decode(src, src_len, dst, dst_cap) -> (written, error) shape, adapted to
// Go's append-based growth instead of a caller-owned fixed buffer.
func HuffmanDecodeInto(dst, src []byte) ([]byte, error) {
	return huffmanDecodeAppend(dst, src)
}

// huffmanDecodeAppend implements the preferred nibble-FSM variant of
// spec.md §4.E: one table lookup per nibble, with an EOS/padding check on
// completion performed by replaying synthetic 1-bits through the bit FSM.
func huffmanDecodeAppend(dst, src []byte) (out []byte, err error) {
	startLen := len(dst)
	defer func() { LogHuffmanDecode(len(src), len(out)-startLen, err) }()

	if src == nil {
		return nil, newHpackError(ErrDomainHuffman, ErrInputNullPtr, "huffman decode: nil input")
	}
	state := int32(0)
	for _, c := range src {
		hi := c >> 4
		lo := c & 0xF

		next, sym0, sym1, emitCount, invalid := unpackNibbleEntry(huffmanNibbleFSM[int(state)*16+int(hi)])
		if invalid {
			return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidPrefixNibble, "huffman decode: invalid prefix (high nibble)")
		}
		if emitCount >= 1 {
			dst = append(dst, sym0)
		}
		if emitCount >= 2 {
			dst = append(dst, sym1)
		}
		state = next

		next, sym0, sym1, emitCount, invalid = unpackNibbleEntry(huffmanNibbleFSM[int(state)*16+int(lo)])
		if invalid {
			return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidPrefixNibble, "huffman decode: invalid prefix (low nibble)")
		}
		if emitCount >= 1 {
			dst = append(dst, sym0)
		}
		if emitCount >= 2 {
			dst = append(dst, sym1)
		}
		state = next
	}

	if huffmanStateDepth[state] > 7 {
		return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidEOSPaddingNibble, "huffman decode: padding exceeds 7 bits")
	}
	if !huffmanPaddingValid(state) {
		return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidEOSPaddingNibble, "huffman decode: invalid EOS padding")
	}
	return dst, nil
}

// huffmanPaddingValid implements spec.md §4.E step 2: starting from the
// final state, try feeding k in [0,7] synthetic 1-bits through the bit FSM.
// If a feed emits any symbol along the way, that k is invalid. The decode
// is accepted iff some k lands on a state in the accepting set.
func huffmanPaddingValid(finalState int32) bool {
	bitFSM := huffmanBitFSM()
	cur := finalState
	if huffmanAccepting[cur] {
		return true
	}
	for k := 0; k < 7; k++ {
		tr := bitFSM[cur]
		if tr.emits {
			return false
		}
		cur = tr.next
		if huffmanAccepting[cur] {
			return true
		}
	}
	return false
}

// huffmanDecodeFullByte is the optional full-byte FSM variant (spec.md
// §4.E, "optional variant"): one table lookup per input byte instead of
// two per nibble. It uses the state-depth table to reject more than 7
// trailing pad bits, then checks the remaining bits with the same
// huffmanPaddingValid replay as the nibble variant.
func huffmanDecodeFullByte(dst, src []byte) ([]byte, error) {
	if src == nil {
		return nil, newHpackError(ErrDomainHuffman, ErrInputNullPtr, "huffman decode: nil input")
	}
	state := int32(0)
	for _, c := range src {
		e := huffmanFullFSM[int(state)*256+int(c)]
		if e.invalid {
			return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidPrefixFullByte, "huffman decode: invalid prefix")
		}
		for i := uint8(0); i < e.emitCount; i++ {
			dst = append(dst, e.emitted[i])
		}
		state = e.nextState
	}

	depth := huffmanStateDepth[state]
	if depth == 0 {
		if !huffmanAccepting[state] {
			return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidEOSPaddingFullByte, "huffman decode: invalid EOS padding")
		}
		return dst, nil
	}
	if depth > 7 {
		return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidEOSPaddingFullByte, "huffman decode: padding exceeds 7 bits")
	}
	if !huffmanPaddingValid(state) {
		return nil, newHpackError(ErrDomainHuffman, ErrHuffmanInvalidEOSPaddingFullByte, "huffman decode: invalid EOS padding")
	}
	return dst, nil
}
