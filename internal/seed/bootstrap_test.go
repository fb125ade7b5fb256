package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/store"
)

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	if err := NewBootstrapper(kv).Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	var tenants []model.Tenant
	var users []model.User
	var roles []model.Role
	loadJSON(t, kv, store.KeyTenants, &tenants)
	loadJSON(t, kv, store.KeyUsers, &users)
	loadJSON(t, kv, store.KeyRoles, &roles)

	if len(tenants) != 3 || len(roles) != 4 || len(users) != 9 {
		t.Fatalf("seeded %d tenants, %d roles, %d users; want 3, 4, 9",
			len(tenants), len(roles), len(users))
	}

	catalog, err := BuildCatalog(DefaultPermissionConfig())
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	for _, r := range roles {
		if r.Name == model.RoleSystemAdmin && len(r.Permissions) != len(catalog) {
			t.Fatalf("stored System Admin has %d permissions, want catalog size %d",
				len(r.Permissions), len(catalog))
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	b := NewBootstrapper(kv)

	if err := b.Bootstrap(ctx); err != nil {
		t.Fatalf("first Bootstrap failed: %v", err)
	}
	first := snapshot(t, kv)

	if err := b.Bootstrap(ctx); err != nil {
		t.Fatalf("second Bootstrap failed: %v", err)
	}
	second := snapshot(t, kv)

	for key := range first {
		if !bytes.Equal(first[key], second[key]) {
			t.Fatalf("key %q changed across a repeated bootstrap", key)
		}
	}
}

func TestBootstrapSerializesConcurrentFirstRuns(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	b := NewBootstrapper(kv)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- b.Bootstrap(ctx)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Bootstrap failed: %v", err)
		}
	}

	var users []model.User
	loadJSON(t, kv, store.KeyUsers, &users)
	if len(users) != 9 {
		t.Fatalf("concurrent first runs double-seeded: %d users", len(users))
	}
}

func TestBootstrapLeavesStoreUntouchedOnBuildError(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	b := NewBootstrapperWithConfig(kv, []CatalogEntry{
		{Key: "bad", Capability: "no-separator"},
	})

	if err := b.Bootstrap(ctx); err == nil {
		t.Fatal("expected bootstrap to fail on malformed config")
	}

	for _, key := range []string{store.KeyTenants, store.KeyUsers, store.KeyRoles} {
		ok, err := kv.Has(ctx, key)
		if err != nil {
			t.Fatalf("Has(%q) failed: %v", key, err)
		}
		if ok {
			t.Fatalf("key %q was written despite the build failure", key)
		}
	}
}

func TestBootstrapSkipsPartiallySeededStoreOnlyWhenComplete(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	// A store holding only one of the three keys is treated as unseeded.
	if err := kv.Set(ctx, store.KeyTenants, []byte(`[{"id":"tenant_x"}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := NewBootstrapper(kv).Bootstrap(ctx); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	var users []model.User
	loadJSON(t, kv, store.KeyUsers, &users)
	if len(users) != 9 {
		t.Fatalf("bootstrap should run against a partially seeded store, got %d users", len(users))
	}
}

func loadJSON(t *testing.T, kv store.Store, key string, out any) {
	t.Helper()
	data, found, err := kv.Get(context.Background(), key)
	if err != nil || !found {
		t.Fatalf("Get(%q): found=%v err=%v", key, found, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("decode %q: %v", key, err)
	}
}

func snapshot(t *testing.T, kv store.Store) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte, 3)
	for _, key := range []string{store.KeyTenants, store.KeyUsers, store.KeyRoles} {
		data, found, err := kv.Get(context.Background(), key)
		if err != nil || !found {
			t.Fatalf("Get(%q): found=%v err=%v", key, found, err)
		}
		out[key] = data
	}
	return out
}
