package seed

import (
	"strings"
	"time"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

// isTenantScopedResource is the exclusion predicate for Tenant Admin:
// any resource whose tag contains "tenant" (exact, case-sensitive
// substring) stays reserved to System Admin. Kept as a named function so
// new resource tags are easy to audit for accidental matches.
func isTenantScopedResource(resource string) bool {
	return strings.Contains(resource, "tenant")
}

// operationalResources are the resources a regular tenant member works
// with day to day.
var operationalResources = map[string]bool{
	"supplier": true,
	"product":  true,
	"order":    true,
}

// writeActions are the actions granted to Standard User on operational
// resources.
var writeActions = map[model.Action]bool{
	model.ActionRead:   true,
	model.ActionCreate: true,
	model.ActionUpdate: true,
}

// BuildSystemRoles derives the four canonical roles from the catalog.
// Order is significant for display only. Permission values are shared
// with the catalog, and the sets are strictly nested (Viewer ⊆ Standard
// User ⊆ Tenant Admin ⊆ System Admin) except that Tenant Admin excludes
// tenant-scoped resources. An empty filter result is allowed: a catalog
// with no operational resources simply yields roles with no permissions.
func BuildSystemRoles(catalog []model.Permission) []model.Role {
	now := time.Now().UTC()

	newRole := func(name string, filter func(model.Permission) bool) model.Role {
		perms := make([]model.Permission, 0, len(catalog))
		for _, p := range catalog {
			if filter(p) {
				perms = append(perms, p)
			}
		}
		return model.Role{
			ID:           "role_" + slugify(name),
			Name:         name,
			Permissions:  perms,
			TenantID:     model.TenantSystem,
			IsSystemRole: true,
			CreatedAt:    now,
		}
	}

	return []model.Role{
		newRole(model.RoleSystemAdmin, func(model.Permission) bool {
			return true
		}),
		newRole(model.RoleTenantAdmin, func(p model.Permission) bool {
			return !isTenantScopedResource(p.Resource)
		}),
		newRole(model.RoleStandardUser, func(p model.Permission) bool {
			return operationalResources[p.Resource] && writeActions[p.Action]
		}),
		newRole(model.RoleViewer, func(p model.Permission) bool {
			return operationalResources[p.Resource] && p.Action == model.ActionRead
		}),
	}
}

// slugify converts a role display name into its id segment,
// e.g. "System Admin" -> "system_admin".
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
