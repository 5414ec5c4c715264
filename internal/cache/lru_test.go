package cache

import (
	"testing"
	"time"
)

func TestLRUCacheGetSet(t *testing.T) {
	c := NewLRUCache[int](4, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get on empty cache should miss")
	}

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", got, ok)
	}

	c.Set("a", 2)
	got, _ = c.Get("a")
	if got != 2 {
		t.Fatalf("Get(a) after overwrite = %d, want 2", got)
	}
	if c.Size() != 1 {
		t.Fatalf("Size = %d, want 1", c.Size())
	}
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[string](2, time.Minute)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a") // a is now most recently used
	c.Set("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Fatal("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a should have survived eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("c should be present")
	}
}

func TestLRUCacheExpiry(t *testing.T) {
	c := NewLRUCache[int](4, 10*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry should miss")
	}

	c.Set("b", 2)
	c.Set("c", 3)
	time.Sleep(20 * time.Millisecond)
	if removed := c.CleanExpired(); removed != 2 {
		t.Fatalf("CleanExpired = %d, want 2", removed)
	}
	if c.Size() != 0 {
		t.Fatalf("Size after cleanup = %d, want 0", c.Size())
	}
}

func TestLRUCachePurge(t *testing.T) {
	c := NewLRUCache[int](4, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Purge()

	if c.Size() != 0 {
		t.Fatalf("Size after Purge = %d, want 0", c.Size())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatal("purged entry should miss")
	}
	c.Set("c", 3)
	if _, ok := c.Get("c"); !ok {
		t.Fatal("cache must stay usable after Purge")
	}
}

type countingCleaner struct{ calls int }

func (c *countingCleaner) CleanExpired() int {
	c.calls++
	return 1
}

func TestManagerSweepsRegisteredCleaners(t *testing.T) {
	m := NewManager()
	cl := &countingCleaner{}
	m.Register(cl)

	m.StartCleanup(5 * time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	m.Stop()

	if cl.calls == 0 {
		t.Fatal("cleaner was never swept")
	}
	calls := cl.calls
	time.Sleep(15 * time.Millisecond)
	if cl.calls != calls {
		t.Fatal("cleanup kept running after Stop")
	}
}

func TestManagerStopWithoutStart(t *testing.T) {
	m := NewManager()
	m.Stop()
	m.Stop()
}
