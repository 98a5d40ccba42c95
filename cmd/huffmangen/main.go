// Command huffmangen is the offline counterpart to the root package's
// init()-time table construction: it runs the identical
// internal/huffmangen algorithm and writes the result as a checked-in,
// "@generated"-marked Go source file, so the derived Huffman tables can be
// reviewed and diffed like any other source.
//
// Usage:
//
//	huffmangen --mode=full|nibble|encode <output_file.go>
//
// Grounded on the offline table generator's CLI shape in
// hpack/src/h2v/hpack/codegen/huffman_table_gen_v2_main.cc, adapted to
// Go's stdlib flag package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chronnie/hpack/internal/huffmangen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("huffmangen", flag.ContinueOnError)
	mode := fs.String("mode", "", "table mode: full, nibble, or encode")
	pkg := fs.String("package", "hpack", "package name for the generated file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: huffmangen --mode=[full|nibble|encode] <output_file.go>\n")
		return 1
	}
	outPath := fs.Arg(0)

	var m huffmangen.Mode
	switch *mode {
	case "full":
		m = huffmangen.ModeFullByte
	case "nibble":
		m = huffmangen.ModeNibble
	case "encode":
		m = huffmangen.ModeEncode
	default:
		fmt.Fprintf(os.Stderr, "huffmangen: unknown --mode %q (want full, nibble, or encode)\n", *mode)
		return 1
	}

	tables := huffmangen.Generate(huffmangen.StaticCode, huffmangen.StaticLen)

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffmangen: %v\n", err)
		return 1
	}
	defer f.Close()

	if err := huffmangen.EmitGo(f, *pkg, m, tables); err != nil {
		fmt.Fprintf(os.Stderr, "huffmangen: failed to write %s: %v\n", outPath, err)
		return 1
	}

	fmt.Printf("huffmangen: wrote %s (mode=%s, states=%d)\n", outPath, *mode, tables.NumStates)
	return 0
}
