package registry

import "testing"

func TestSetGet(t *testing.T) {
	r := New()
	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok || v.(int) != 42 {
		t.Errorf("GetGlobal = %v, %v", v, ok)
	}
	if _, ok := r.GetGlobal("missing"); ok {
		t.Error("missing key should not be found")
	}
}

func TestLock(t *testing.T) {
	r := New()
	r.SetGlobal("k", 1)
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("key should be locked")
	}
	defer func() {
		if recover() == nil {
			t.Error("SetGlobal on locked key should panic")
		}
	}()
	r.SetGlobal("k", 2)
}

func TestUnlockForTesting(t *testing.T) {
	r := New()
	r.SetGlobal("k", 1)
	r.Lock("k")
	r.UnlockForTesting("k")
	r.SetGlobal("k", 2)
	v, _ := r.GetGlobal("k")
	if v.(int) != 2 {
		t.Errorf("value = %v, want 2", v)
	}
}
