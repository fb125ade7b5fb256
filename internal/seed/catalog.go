// Package seed derives the baseline authorization data for a fresh
// system: the permission catalog, the four canonical roles, the demo
// tenants, and their user accounts. Everything here is deterministic so
// repeated bootstraps of the same configuration produce identical data.
package seed

import (
	"fmt"
	"strings"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

// CatalogEntry is one line of the permission configuration: a stable key
// plus a "resource:action" capability string.
type CatalogEntry struct {
	Key        string
	Capability string
}

// DefaultPermissionConfig returns the built-in permission configuration.
// Order is kept for reproducible serialization; the result is
// conceptually a set.
func DefaultPermissionConfig() []CatalogEntry {
	return []CatalogEntry{
		{"supplier_read", "supplier:read"},
		{"supplier_create", "supplier:create"},
		{"supplier_update", "supplier:update"},
		{"supplier_delete", "supplier:delete"},
		{"product_read", "product:read"},
		{"product_create", "product:create"},
		{"product_update", "product:update"},
		{"product_delete", "product:delete"},
		{"order_read", "order:read"},
		{"order_create", "order:create"},
		{"order_update", "order:update"},
		{"order_delete", "order:delete"},
		{"user_read", "user:read"},
		{"user_create", "user:create"},
		{"user_update", "user:update"},
		{"user_delete", "user:delete"},
		{"role_read", "role:read"},
		{"role_manage", "role:manage"},
		{"tenant_read", "tenant:read"},
		{"tenant_create", "tenant:create"},
		{"tenant_update", "tenant:update"},
		{"tenant_delete", "tenant:delete"},
		{"tenant_manage", "tenant:manage"},
		{"report_read", "report:read"},
		{"settings_manage", "settings:manage"},
	}
}

// BuildCatalog expands the configuration into the permission universe.
// Each capability is split on the first ':' into resource and action.
// A missing separator or an action outside the closed enum fails with
// *ConfigError.
func BuildCatalog(config []CatalogEntry) ([]model.Permission, error) {
	perms := make([]model.Permission, 0, len(config))
	for _, entry := range config {
		resource, action, found := strings.Cut(entry.Capability, ":")
		if !found {
			return nil, &ConfigError{
				Key:    entry.Key,
				Value:  entry.Capability,
				Reason: "missing ':' separator",
			}
		}
		if !model.ValidAction(model.Action(action)) {
			return nil, &ConfigError{
				Key:    entry.Key,
				Value:  entry.Capability,
				Reason: fmt.Sprintf("unknown action %q", action),
			}
		}
		perms = append(perms, model.Permission{
			ID:          "perm_" + entry.Key,
			Resource:    resource,
			Action:      model.Action(action),
			Description: fmt.Sprintf("Allows %s on %s", action, resource),
		})
	}
	return perms, nil
}
