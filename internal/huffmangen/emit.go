package huffmangen

import (
	"fmt"
	"io"
)

// Mode selects which subset of the generated tables EmitGo writes, mirroring
// the offline generator's --mode=full|nibble|encode flag.
type Mode int

const (
	ModeFullByte Mode = iota
	ModeNibble
	ModeEncode
)

// EmitGo writes the tables for the given mode as an "@generated" Go source
// file to w. It is the textual counterpart to the in-memory Tables built by
// Generate, used by cmd/huffmangen so the tables can be reviewed and diffed
// like any other checked-in source.
func EmitGo(w io.Writer, pkg string, mode Mode, t *Tables) error {
	bw := &errWriter{w: w}

	fmt.Fprintf(bw, "// Code generated by cmd/huffmangen. DO NOT EDIT.\n")
	fmt.Fprintf(bw, "// @generated\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)

	switch mode {
	case ModeEncode:
		fmt.Fprintf(bw, "var huffmanEncodeGenTable = [%d]huffmanEncodeEntry{\n", NumSymbols)
		for _, e := range t.EncodeTable {
			fmt.Fprintf(bw, "\t{bitLength: %d, byteCount: %d, bytes: %s},\n",
				e.BitLength, e.ByteCount, formatBytes(e.Bytes[:]))
		}
		fmt.Fprintf(bw, "}\n")

	case ModeNibble:
		fmt.Fprintf(bw, "const huffmanNumStates = %d\n\n", t.NumStates)

		fmt.Fprintf(bw, "var huffmanNibbleFSM = [%d]uint32{\n", len(t.NibblePacked))
		emitUint32Rows(bw, t.NibblePacked, 8)
		fmt.Fprintf(bw, "}\n\n")

		fmt.Fprintf(bw, "var huffmanStateDepth = [%d]uint8{\n", len(t.StateDepth))
		emitUint8Rows(bw, t.StateDepth, 16)
		fmt.Fprintf(bw, "}\n\n")

		fmt.Fprintf(bw, "var huffmanAccepting = [%d]bool{\n", len(t.Accepting))
		for i := 0; i < len(t.Accepting); i += 16 {
			end := i + 16
			if end > len(t.Accepting) {
				end = len(t.Accepting)
			}
			fmt.Fprint(bw, "\t")
			for _, v := range t.Accepting[i:end] {
				fmt.Fprintf(bw, "%t, ", v)
			}
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "}\n")

	case ModeFullByte:
		fmt.Fprintf(bw, "const huffmanNumStates = %d\n\n", t.NumStates)
		fmt.Fprintf(bw, "var huffmanFullByteFSM = [%d]huffmanFullByteEntry{\n", len(t.FullByteFSM))
		for _, e := range t.FullByteFSM {
			if e.Invalid {
				fmt.Fprintf(bw, "\t{invalid: true},\n")
				continue
			}
			fmt.Fprintf(bw, "\t{nextState: %d, emitCount: %d, emitted: %s},\n",
				e.NextState, len(e.Emitted), formatEmitted(e.Emitted))
		}
		fmt.Fprintf(bw, "}\n\n")
		fmt.Fprintf(bw, "var huffmanStateDepth = [%d]uint8{\n", len(t.StateDepth))
		emitUint8Rows(bw, t.StateDepth, 16)
		fmt.Fprintf(bw, "}\n\n")
		fmt.Fprintf(bw, "var huffmanAccepting = [%d]bool{\n", len(t.Accepting))
		for i := 0; i < len(t.Accepting); i += 16 {
			end := i + 16
			if end > len(t.Accepting) {
				end = len(t.Accepting)
			}
			fmt.Fprint(bw, "\t")
			for _, v := range t.Accepting[i:end] {
				fmt.Fprintf(bw, "%t, ", v)
			}
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "}\n")
	}

	return bw.err
}

func formatEmitted(b []byte) string {
	s := "[2]byte{"
	for i := 0; i < 2; i++ {
		if i > 0 {
			s += ", "
		}
		if i < len(b) {
			s += fmt.Sprintf("0x%02x", b[i])
		} else {
			s += "0x00"
		}
	}
	return s + "}"
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func formatBytes(b []byte) string {
	s := "[5]byte{"
	for i, v := range b {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("0x%02x", v)
	}
	return s + "}"
}

func emitUint32Rows(w io.Writer, vals []uint32, perRow int) {
	for i := 0; i < len(vals); i += perRow {
		end := i + perRow
		if end > len(vals) {
			end = len(vals)
		}
		fmt.Fprint(w, "\t")
		for _, v := range vals[i:end] {
			fmt.Fprintf(w, "0x%08x, ", v)
		}
		fmt.Fprintln(w)
	}
}

func emitUint8Rows(w io.Writer, vals []uint8, perRow int) {
	for i := 0; i < len(vals); i += perRow {
		end := i + perRow
		if end > len(vals) {
			end = len(vals)
		}
		fmt.Fprint(w, "\t")
		for _, v := range vals[i:end] {
			fmt.Fprintf(w, "%d, ", v)
		}
		fmt.Fprintln(w)
	}
}
