package cache

import (
	"testing"
	"time"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("k", "val", 0, nil)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 0, nil)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewCache()
	c.Set("k", "x", 1, nil)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("value should exist before TTL")
	}
	// Force expiry by rewriting with an already-passed deadline.
	c.m.Store("k", cacheItem{Value: "x", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("k"); ok {
		t.Error("expired value should be gone")
	}
}

func TestMakeKey(t *testing.T) {
	if got := MakeKey("item", "42"); got != "item|42" {
		t.Errorf("MakeKey = %q, want item|42", got)
	}
}

func TestDeleteByTag(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, 0, []string{"item:1"})
	c.Set("b", 2, 0, []string{"item:1"})
	c.Set("c", 3, 0, []string{"item:2"})

	c.DeleteByTag("item:1")

	if _, ok := c.Get("a"); ok {
		t.Error("a should be deleted by tag")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should be deleted by tag")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should survive other tag flush")
	}
}
