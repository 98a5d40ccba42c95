package hpack

import "testing"

func TestStaticTableGetByIndexBounds(t *testing.T) {
	if _, ok := StaticTableGetByIndex(0); ok {
		t.Error("index 0 should be out of range")
	}
	if _, ok := StaticTableGetByIndex(StaticTableSize + 1); ok {
		t.Error("index StaticTableSize+1 should be out of range")
	}
	h, ok := StaticTableGetByIndex(1)
	if !ok {
		t.Fatal("index 1 should be valid")
	}
	if h.Name != ":authority" {
		t.Errorf("index 1 name = %q, want %q", h.Name, ":authority")
	}
	h, ok = StaticTableGetByIndex(StaticTableSize)
	if !ok {
		t.Fatal("index StaticTableSize should be valid")
	}
	if h.Name != "www-authenticate" {
		t.Errorf("index %d name = %q, want %q", StaticTableSize, h.Name, "www-authenticate")
	}
}

func TestStaticTableFindIndexExactMatch(t *testing.T) {
	idx := StaticTableFindIndex(":method", "POST")
	if idx != 3 {
		t.Errorf("got %d, want 3", idx)
	}
	idx = StaticTableFindIndex(":method", "GET")
	if idx != 2 {
		t.Errorf("got %d, want 2", idx)
	}
}

func TestStaticTableFindIndexNameOnlyFallback(t *testing.T) {
	// ":method" has no entry with value "PATCH", so this should fall back
	// to the first ":method" entry.
	idx := StaticTableFindIndex(":method", "PATCH")
	if idx != 2 {
		t.Errorf("got %d, want 2 (first :method entry)", idx)
	}
}

func TestStaticTableFindIndexNotFound(t *testing.T) {
	if idx := StaticTableFindIndex("x-does-not-exist", ""); idx != 0 {
		t.Errorf("got %d, want 0", idx)
	}
}

func TestStaticTableFindIndexEmptyValueMatchesNameOnly(t *testing.T) {
	idx := StaticTableFindIndex("accept-encoding", "")
	if idx != 16 {
		t.Errorf("got %d, want 16", idx)
	}
}
