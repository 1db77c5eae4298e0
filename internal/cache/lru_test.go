package cache

import (
	"testing"
	"time"
)

func TestLRUGetSet(t *testing.T) {
	c := NewLRUCache[string](2, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss")
	}

	c.Set("a", "1")
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("get a = %q ok=%v", v, ok)
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a becomes most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive eviction")
	}
	if c.Size() != 2 {
		t.Fatalf("size = %d, want 2", c.Size())
	}
}

func TestLRUExpiry(t *testing.T) {
	c := NewLRUCache[int](10, -time.Second) // already expired on write
	c.Set("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry served")
	}
	c.Set("b", 2)
	if removed := c.CleanExpired(); removed != 1 {
		t.Fatalf("cleaned %d, want 1", removed)
	}
}

func TestLRUFlush(t *testing.T) {
	c := NewLRUCache[int](10, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()
	if c.Size() != 0 {
		t.Fatalf("size after flush = %d", c.Size())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("entry survived flush")
	}
	// Cache is usable after a flush.
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("set after flush failed")
	}
}
