package store

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryGetSetHas(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, found, err := m.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("Get on empty store: found=%v err=%v", found, err)
	}
	if ok, _ := m.Has(ctx, "missing"); ok {
		t.Fatal("Has should be false for an unwritten key")
	}

	if err := m.Set(ctx, KeyTenants, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := m.Get(ctx, KeyTenants)
	if err != nil || !found {
		t.Fatalf("Get after Set: found=%v err=%v", found, err)
	}
	if string(value) != "[]" {
		t.Fatalf("Get returned %q, want []", value)
	}
	if ok, _ := m.Has(ctx, KeyTenants); !ok {
		t.Fatal("Has should be true after Set")
	}
}

func TestMemoryHasTreatsEmptyValueAsAbsent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if err := m.Set(ctx, KeyUsers, nil); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if ok, _ := m.Has(ctx, KeyUsers); ok {
		t.Fatal("Has must be false for an empty value")
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	original := []byte(`["a"]`)
	if err := m.Set(ctx, KeyRoles, original); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	original[2] = 'x'

	value, _, _ := m.Get(ctx, KeyRoles)
	if string(value) != `["a"]` {
		t.Fatalf("stored value aliased the caller's slice: %q", value)
	}

	value[2] = 'y'
	again, _, _ := m.Get(ctx, KeyRoles)
	if string(again) != `["a"]` {
		t.Fatalf("returned value aliased the stored slice: %q", again)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Set(ctx, KeyUsers, []byte(`[1]`))
			_, _, _ = m.Get(ctx, KeyUsers)
			_, _ = m.Has(ctx, KeyUsers)
		}()
	}
	wg.Wait()
}
