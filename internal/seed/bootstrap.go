package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Fsisnio/procure-sub001/internal/store"
)

// Bootstrapper seeds the permission catalog, system roles, demo tenants
// and demo users into an empty store, exactly once. The mutex serializes
// concurrent first-run calls within the process so the check-and-seed
// sequence cannot race with itself. Multi-process coordination is out of
// scope: the store is assumed to have a single writer during bootstrap.
type Bootstrapper struct {
	mu     sync.Mutex
	store  store.Store
	config []CatalogEntry
}

// NewBootstrapper uses the default permission configuration.
func NewBootstrapper(s store.Store) *Bootstrapper {
	return &Bootstrapper{store: s, config: DefaultPermissionConfig()}
}

// NewBootstrapperWithConfig allows tests and forks to seed from a custom
// permission configuration.
func NewBootstrapperWithConfig(s store.Store, config []CatalogEntry) *Bootstrapper {
	return &Bootstrapper{store: s, config: config}
}

// Bootstrap seeds the store if, and only if, it is empty. The guard
// checks all three collection keys; if every one already holds data the
// call is a no-op. All records are built in memory first so a build
// failure leaves the store untouched.
func (b *Bootstrapper) Bootstrap(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	seeded, err := b.alreadySeeded(ctx)
	if err != nil {
		return err
	}
	if seeded {
		log.Println("Bootstrap skipped: store already seeded")
		return nil
	}

	catalog, err := BuildCatalog(b.config)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	roles := BuildSystemRoles(catalog)
	tenants := SeedTenants()
	users, err := ProvisionUsers(tenants, roles)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if err := b.persist(ctx, store.KeyRoles, roles); err != nil {
		return err
	}
	if err := b.persist(ctx, store.KeyTenants, tenants); err != nil {
		return err
	}
	if err := b.persist(ctx, store.KeyUsers, users); err != nil {
		return err
	}

	log.Printf("Bootstrap complete: %d permissions, %d roles, %d tenants, %d users",
		len(catalog), len(roles), len(tenants), len(users))
	return nil
}

func (b *Bootstrapper) alreadySeeded(ctx context.Context) (bool, error) {
	for _, key := range []string{store.KeyTenants, store.KeyUsers, store.KeyRoles} {
		ok, err := b.store.Has(ctx, key)
		if err != nil {
			return false, fmt.Errorf("bootstrap guard check %q: %w", key, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (b *Bootstrapper) persist(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("bootstrap marshal %q: %w", key, err)
	}
	if err := b.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("bootstrap persist %q: %w", key, err)
	}
	return nil
}
