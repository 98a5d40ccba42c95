package hpack

import "sync"

// DynamicEntry is one live row of the dynamic header table: the wire-exact
// name/value bytes (borrowed from the table's arena) alongside their
// decoded string forms and the EntryType that produced them.
//
// Handles returned by Find/FindByIndex/Insert remain valid for as long as
// the caller holds them: Go's garbage collector keeps the arena's backing
// array (and therefore RawName/RawValue) alive as long as any slice of it
// is reachable, even after the table itself grows its arena or evicts the
// entry from its own bookkeeping. This is a direct, and strictly safer,
// consequence of not needing the reference counting dynamic_table.h's
// std::shared_ptr<Entry> relies on to get the same guarantee. Clear is the
// exception: it resets the arena and reuses its storage, so inserts made
// after a Clear can overwrite the bytes of handles obtained before it.
type DynamicEntry struct {
	RawName      []byte
	RawValue     []byte
	DecodedName  string
	DecodedValue string
	Type         EntryType
	seq          uint64
}

// dynamicQueue is a growable circular buffer of live entries in insertion
// order, matching dynamic_table.h's head/tail ring buffer.
type dynamicQueue struct {
	buf   []*DynamicEntry
	head  int
	count int
}

func (q *dynamicQueue) push(e *DynamicEntry) {
	if q.count == len(q.buf) {
		q.grow()
	}
	tail := (q.head + q.count) % len(q.buf)
	q.buf[tail] = e
	q.count++
}

func (q *dynamicQueue) popFront() *DynamicEntry {
	if q.count == 0 {
		return nil
	}
	e := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return e
}

func (q *dynamicQueue) forEach(fn func(*DynamicEntry) bool) {
	for i := 0; i < q.count; i++ {
		if !fn(q.buf[(q.head+i)%len(q.buf)]) {
			return
		}
	}
}

func (q *dynamicQueue) reset() {
	q.buf = nil
	q.head = 0
	q.count = 0
}

func (q *dynamicQueue) grow() {
	newCap := len(q.buf) * 2
	if newCap == 0 {
		newCap = 16
	}
	newBuf := make([]*DynamicEntry, newCap)
	n := 0
	for i := 0; i < q.count; i++ {
		newBuf[n] = q.buf[(q.head+i)%len(q.buf)]
		n++
	}
	q.buf = newBuf
	q.head = 0
}

// DynamicTable is the HPACK dynamic header table: an append-only byte arena
// backing wire-exact name/value spans, a name-keyed lookup map, and FIFO
// insertion-order eviction. All operations take a single lock; spec.md §5
// calls for no finer-grained locking since the dynamic table is inherently
// sequential per HPACK connection/stream context.
//
// Grounded on dynamic_table.h/.cc, with two deliberate departures recorded
// in DESIGN.md: arena growth is permitted (Go's GC makes this safe, unlike
// the C++ original's fixed reservation) and dynamic indices are computed
// from a monotonic insertion sequence rather than cache_.size()+1, which
// the original leaves ambiguous across evictions.
type DynamicTable struct {
	mu           sync.Mutex
	arena        *RawBuffer
	cache        map[string]*DynamicEntry
	queue        dynamicQueue
	maxBytes     int
	currentBytes int
	nextSeq      uint64
	stats        HpackStats
	strict       bool
}

// NewDynamicTable creates a DynamicTable bounded at maxBytes, with
// strict_mode on (DefaultConfig's setting).
func NewDynamicTable(maxBytes int) *DynamicTable {
	return &DynamicTable{
		arena:    NewRawBuffer(maxBytes),
		cache:    make(map[string]*DynamicEntry),
		maxBytes: maxBytes,
		strict:   DefaultConfig().StrictMode,
	}
}

// NewDynamicTableWithConfig creates a DynamicTable sized and gated by cfg:
// maxBytes comes from cfg.MaxDynamicTableSizeBytes, and cfg.StrictMode
// controls whether Insert rejects an oversized literal with a hard error
// (strict) or silently empties the table without inserting it, per RFC 7541
// §4.4 (lenient). See spec.md §4.N.
func NewDynamicTableWithConfig(cfg Config) *DynamicTable {
	t := NewDynamicTable(cfg.MaxDynamicTableSizeBytes)
	t.strict = cfg.StrictMode
	return t
}

// index computes the 1-based HPACK index of a live entry: the newest
// inserted entry is always 62 (StaticTableSize+1), and each subsequent
// insertion pushes every older entry's displayed index up by one, per
// spec.md §4.I's monotonic-sequence resolution of the reference
// implementation's ambiguous eviction-index scheme.
func (t *DynamicTable) index(e *DynamicEntry) int {
	latestSeq := t.nextSeq - 1
	return StaticTableSize + int(latestSeq-e.seq) + 1
}

// Find looks up the most recently inserted live entry with the given raw
// name, updating hit/miss stats.
func (t *DynamicTable) Find(name []byte) (*DynamicEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.cache[string(name)]
	if !ok {
		t.stats.CacheMisses++
		return nil, false
	}
	t.stats.CacheHits++
	return e, true
}

// FindByIndex performs a linear scan over live entries for the given
// absolute HPACK index (spec.md §4.I: "linear scan ... matching by
// absolute index").
func (t *DynamicTable) FindByIndex(idx int) (*DynamicEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var found *DynamicEntry
	t.queue.forEach(func(e *DynamicEntry) bool {
		if t.index(e) == idx {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		t.stats.CacheMisses++
		return nil, false
	}
	t.stats.CacheHits++
	t.stats.TotalDecodedHeaders++
	t.stats.TotalBytesProcessed += uint64(len(found.RawName) + len(found.RawValue))
	return found, true
}

// Insert evicts oldest entries until the new entry fits within maxBytes,
// appends its wire-exact bytes into the arena, and enqueues it.
//
// Per RFC 7541 §4.4, an entry whose own size exceeds maxBytes is never
// added: evictIfNeeded above already empties the table trying to make
// room. In strict mode Insert then returns an error; in lenient mode it
// returns (nil, nil) and leaves the table empty and usable. Both modes
// count the failure in ErrorCount and report it to the error callback.
func (t *DynamicTable) Insert(name, value []byte, decodedName, decodedValue string, typ EntryType) (*DynamicEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	need := len(name) + len(value)
	t.evictIfNeeded(need)

	if need > t.maxBytes {
		err := newHpackError(ErrDomainTable, ErrTableArenaExhausted,
			"dynamic table insert: entry larger than max_dynamic_table_size_bytes")
		t.stats.ErrorCount++
		if t.strict {
			return nil, err
		}
		return nil, nil
	}

	namePos := t.arena.Size()
	copy(t.arena.Append(len(name)), name)
	rawName := t.arena.Bytes()[namePos : namePos+len(name)]

	valuePos := t.arena.Size()
	copy(t.arena.Append(len(value)), value)
	rawValue := t.arena.Bytes()[valuePos : valuePos+len(value)]

	e := &DynamicEntry{
		RawName:      rawName,
		RawValue:     rawValue,
		DecodedName:  decodedName,
		DecodedValue: decodedValue,
		Type:         typ,
		seq:          t.nextSeq,
	}
	t.nextSeq++

	t.queue.push(e)
	t.cache[string(rawName)] = e
	t.currentBytes += need
	t.stats.TotalEncodedHeaders++
	LogDynamicTableInsert(decodedName, t.currentBytes, t.maxBytes, typ)
	return e, nil
}

// SetMaxBytes updates the capacity bound and evicts down to it immediately.
func (t *DynamicTable) SetMaxBytes(newMax int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maxBytes = newMax
	t.evictIfNeeded(0)
}

// BytesUsed returns the current occupied byte count (sum of name+value
// lengths of all live entries).
func (t *DynamicTable) BytesUsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentBytes
}

// Clear removes every entry and resets statistics.
func (t *DynamicTable) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache = make(map[string]*DynamicEntry)
	t.queue.reset()
	t.currentBytes = 0
	t.arena.Clear()
	t.stats = HpackStats{}
}

// SnapshotStats returns a copy of the current cumulative statistics.
func (t *DynamicTable) SnapshotStats() HpackStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

func (t *DynamicTable) evictIfNeeded(need int) {
	for t.currentBytes+need > t.maxBytes && t.queue.count > 0 {
		t.evictOne()
	}
}

func (t *DynamicTable) evictOne() {
	e := t.queue.popFront()
	if e == nil {
		return
	}
	// Only remove the name->entry mapping if it still points at this exact
	// entry: an older entry sharing a name with a still-live newer one must
	// not clobber the newer mapping on eviction.
	if cur, ok := t.cache[string(e.RawName)]; ok && cur == e {
		delete(t.cache, string(e.RawName))
	}
	sz := len(e.RawName) + len(e.RawValue)
	if t.currentBytes > sz {
		t.currentBytes -= sz
	} else {
		t.currentBytes = 0
	}
	t.stats.Evictions++
	LogDynamicTableEvict(e.DecodedName, sz)
}
