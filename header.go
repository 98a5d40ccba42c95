package hpack

// Header is a name/value pair (spec.md §4.L). Name and Value are Go
// strings, so a Header holds its own immutable bytes and does not borrow
// them from any buffer. Equality and hashing are byte-wise on both
// components.
type Header struct {
	Name  string
	Value string
}
