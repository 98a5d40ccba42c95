package hpack

import "github.com/chronnie/hpack/internal/huffmangen"

// eosSymbol is the synthetic 257th codebook entry (RFC 7541 Appendix B's
// EOS), used only for output padding. It must never appear as a decoded
// symbol.
const eosSymbol = 256

// huffmanCode and huffmanLen are the root package's working copies of the
// canonical static Huffman codebook held in internal/huffmangen, so the
// encoder's hot path can index a package-level array directly.
var huffmanCode = huffmangen.StaticCode
var huffmanLen = huffmangen.StaticLen
