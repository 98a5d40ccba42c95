package hpack

// HpackStats holds cumulative, monotonically increasing counters for a
// DynamicTable instance: cache efficiency, eviction behavior, and error
// rates, sampled periodically for observability. Grounded on
// hpack_stats.h.
type HpackStats struct {
	CacheHits           uint64
	CacheMisses         uint64
	Evictions           uint64
	ErrorCount          uint64
	TotalEncodedHeaders uint64
	TotalDecodedHeaders uint64
	TotalBytesProcessed uint64
}
