package hpack

// EntryType identifies the form of an HPACK header field or instruction, as
// traced through stats and the error callback to distinguish how each
// header was represented on the wire. Grounded on entry_type.h.
type EntryType uint8

const (
	// IndexedHeader is a fully indexed header field (static or dynamic
	// table lookup). RFC 7541 §6.1.
	IndexedHeader EntryType = iota

	// LiteralWithIncrementalIndexing inserts into the dynamic table.
	// RFC 7541 §6.2.1.
	LiteralWithIncrementalIndexing

	// LiteralWithoutIndexing is not inserted into the dynamic table.
	// RFC 7541 §6.2.2.
	LiteralWithoutIndexing

	// LiteralNeverIndexed marks a sensitive value that must never be
	// indexed, even by intermediaries. RFC 7541 §6.2.3.
	LiteralNeverIndexed

	// DynamicTableSizeUpdate is the Table Size Update instruction.
	// RFC 7541 §6.3.
	DynamicTableSizeUpdate
)

func (t EntryType) String() string {
	switch t {
	case IndexedHeader:
		return "indexed_header"
	case LiteralWithIncrementalIndexing:
		return "literal_with_incremental_indexing"
	case LiteralWithoutIndexing:
		return "literal_without_indexing"
	case LiteralNeverIndexed:
		return "literal_never_indexed"
	case DynamicTableSizeUpdate:
		return "dynamic_table_size_update"
	default:
		return "unknown"
	}
}
