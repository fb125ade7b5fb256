package model

import "time"

// TenantSystem is the special tenant identifier for cross-tenant
// administrative records (built-in roles, the super-admin account).
const TenantSystem = "system"

// Canonical role names produced by the role builder. User provisioning
// resolves roles by these names, so they must stay in sync.
const (
	RoleSystemAdmin  = "System Admin"
	RoleTenantAdmin  = "Tenant Admin"
	RoleStandardUser = "Standard User"
	RoleViewer       = "Viewer"
)

// Role is a named, reusable bundle of permissions assignable to users.
// Built-in roles are scoped to the "system" tenant; tenant-specific
// custom roles are a future extension.
type Role struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Permissions  []Permission `json:"permissions"`
	TenantID     string       `json:"tenantId"`
	IsSystemRole bool         `json:"isSystemRole"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// HasPermission reports whether the role grants the given (resource, action) pair.
func (r Role) HasPermission(resource string, action Action) bool {
	for _, p := range r.Permissions {
		if p.Resource == resource && p.Action == action {
			return true
		}
	}
	return false
}

// PermissionKeys returns the role's permission identities as a set of
// "resource:action" strings.
func (r Role) PermissionKeys() map[string]bool {
	keys := make(map[string]bool, len(r.Permissions))
	for _, p := range r.Permissions {
		keys[p.Key()] = true
	}
	return keys
}
