// Package store defines the key-value persistence contract the
// authorization core depends on. Records are serialized as JSON arrays
// under well-known keys; durability and location are the backend's
// concern. The store is always injected, never a package singleton.
package store

import "context"

// Well-known collection keys.
const (
	KeyTenants = "tenants"
	KeyUsers   = "users"
	KeyRoles   = "roles"
)

// Store is the narrow persistence interface the core requires:
// get/set-by-name with existence checks.
type Store interface {
	// Get returns the raw value for key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Has reports whether key holds a non-empty value.
	Has(ctx context.Context, key string) (bool, error)
}
