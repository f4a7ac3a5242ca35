package desktop

import "testing"

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []int
	c := newLRU[int, string](2, func(k int, v string) { evicted = append(evicted, k) })
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c") // evicts 1, the least recently used
	if len(evicted) != 1 || evicted[0] != 1 {
		t.Fatalf("expected eviction of key 1, got %v", evicted)
	}
	if _, ok := c.Get(1); ok {
		t.Error("key 1 should have been evicted")
	}
	if v, ok := c.Get(2); !ok || v != "b" {
		t.Error("key 2 should still be present")
	}
}

func TestLRUGetRefreshesRecency(t *testing.T) {
	var evicted []int
	c := newLRU[int, string](2, func(k int, v string) { evicted = append(evicted, k) })
	c.Put(1, "a")
	c.Put(2, "b")
	c.Get(1) // 1 is now most recently used
	c.Put(3, "c")
	if len(evicted) != 1 || evicted[0] != 2 {
		t.Fatalf("expected eviction of key 2, got %v", evicted)
	}
}

func TestLRUPutExistingKeyUpdatesValueWithoutEviction(t *testing.T) {
	c := newLRU[int, string](2, nil)
	c.Put(1, "a")
	c.Put(1, "b")
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
	v, ok := c.Get(1)
	if !ok || v != "b" {
		t.Errorf("got (%q, %v), want (\"b\", true)", v, ok)
	}
}

func TestLRUCapacityAtLeastOne(t *testing.T) {
	c := newLRU[int, string](0, nil)
	c.Put(1, "a")
	c.Put(2, "b")
	if c.Len() != 1 {
		t.Fatalf("expected capacity clamped to 1, got Len()=%d", c.Len())
	}
}
