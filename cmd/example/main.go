// Command example exercises the hpack package's public surface end to end:
// Huffman round-trip, integer codec round-trip, and a dynamic table
// insert/find cycle.
package main

import (
	"bytes"
	"fmt"

	"github.com/chronnie/hpack"
)

func main() {
	runHuffmanDemo()
	runIntegerDemo()
	runDynamicTableDemo()
}

func runHuffmanDemo() {
	src := []byte("www.example.com")
	encoded, err := hpack.HuffmanEncode(src)
	if err != nil {
		panic(err)
	}
	decoded, err := hpack.HuffmanDecode(encoded)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(src, decoded) {
		panic("huffman round-trip mismatch")
	}
	fmt.Printf("huffman: %d bytes -> %d bytes -> round-trip ok\n", len(src), len(encoded))
}

func runIntegerDemo() {
	encoded, err := hpack.EncodeInteger(1337, 0x00, 5)
	if err != nil {
		panic(err)
	}
	value, consumed, err := hpack.DecodeInteger(encoded, 5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("integer: 1337 -> %v (consumed %d bytes, decoded %d)\n", encoded, consumed, value)
}

func runDynamicTableDemo() {
	table := hpack.NewDynamicTableWithConfig(hpack.DefaultConfig())

	if _, err := table.Insert([]byte("custom-header"), []byte("custom-value"),
		"custom-header", "custom-value", hpack.LiteralWithIncrementalIndexing); err != nil {
		panic(err)
	}

	entry, ok := table.Find([]byte("custom-header"))
	if !ok {
		panic("expected to find inserted entry")
	}
	fmt.Printf("dynamic table: found %q=%q, bytes used %d\n",
		entry.DecodedName, entry.DecodedValue, table.BytesUsed())

	stats := table.SnapshotStats()
	fmt.Printf("dynamic table stats: hits=%d misses=%d\n", stats.CacheHits, stats.CacheMisses)
}
