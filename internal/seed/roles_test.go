package seed

import (
	"testing"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

func mustCatalog(t *testing.T) []model.Permission {
	t.Helper()
	perms, err := BuildCatalog(DefaultPermissionConfig())
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	return perms
}

func roleByName(t *testing.T, roles []model.Role, name string) model.Role {
	t.Helper()
	for _, r := range roles {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("role %q not built", name)
	return model.Role{}
}

func TestBuildSystemRolesShape(t *testing.T) {
	roles := BuildSystemRoles(mustCatalog(t))

	if len(roles) != 4 {
		t.Fatalf("built %d roles, want 4", len(roles))
	}

	wantOrder := []string{
		model.RoleSystemAdmin, model.RoleTenantAdmin, model.RoleStandardUser, model.RoleViewer,
	}
	for i, name := range wantOrder {
		if roles[i].Name != name {
			t.Fatalf("role %d is %q, want %q", i, roles[i].Name, name)
		}
		if roles[i].TenantID != model.TenantSystem {
			t.Fatalf("role %q tenant %q, want system scope", roles[i].Name, roles[i].TenantID)
		}
		if !roles[i].IsSystemRole {
			t.Fatalf("role %q should be a system role", roles[i].Name)
		}
	}

	if roles[0].ID != "role_system_admin" {
		t.Fatalf("System Admin id %q, want role_system_admin", roles[0].ID)
	}
}

func TestSystemAdminGetsFullCatalog(t *testing.T) {
	catalog := mustCatalog(t)
	roles := BuildSystemRoles(catalog)

	admin := roleByName(t, roles, model.RoleSystemAdmin)
	if len(admin.Permissions) != len(catalog) {
		t.Fatalf("System Admin has %d permissions, want full catalog of %d",
			len(admin.Permissions), len(catalog))
	}
}

func TestTenantAdminExcludesTenantResources(t *testing.T) {
	roles := BuildSystemRoles(mustCatalog(t))
	tenantAdmin := roleByName(t, roles, model.RoleTenantAdmin)

	if len(tenantAdmin.Permissions) == 0 {
		t.Fatal("Tenant Admin should not be empty for the default catalog")
	}
	for _, p := range tenantAdmin.Permissions {
		if isTenantScopedResource(p.Resource) {
			t.Fatalf("Tenant Admin must not hold tenant-scoped permission %q", p.Key())
		}
	}
}

// The built-in permission sets are strictly nested:
// Viewer ⊆ Standard User ⊆ Tenant Admin ⊆ System Admin,
// modulo Tenant Admin's tenant-resource exclusion.
func TestRoleNestingInvariant(t *testing.T) {
	catalogs := [][]CatalogEntry{
		DefaultPermissionConfig(),
		{
			{"supplier_read", "supplier:read"},
			{"order_update", "order:update"},
			{"tenant_manage", "tenant:manage"},
		},
		{
			{"report_read", "report:read"},
		},
		{}, // empty catalog: all roles end up empty, nesting holds trivially
	}

	for _, config := range catalogs {
		catalog, err := BuildCatalog(config)
		if err != nil {
			t.Fatalf("BuildCatalog failed: %v", err)
		}
		roles := BuildSystemRoles(catalog)

		admin := roleByName(t, roles, model.RoleSystemAdmin).PermissionKeys()
		tenantAdmin := roleByName(t, roles, model.RoleTenantAdmin).PermissionKeys()
		standard := roleByName(t, roles, model.RoleStandardUser).PermissionKeys()
		viewer := roleByName(t, roles, model.RoleViewer).PermissionKeys()

		assertSubset(t, viewer, standard, "Viewer ⊆ Standard User")
		assertSubset(t, standard, tenantAdmin, "Standard User ⊆ Tenant Admin")
		assertSubset(t, tenantAdmin, admin, "Tenant Admin ⊆ System Admin")
	}
}

func assertSubset(t *testing.T, small, big map[string]bool, label string) {
	t.Helper()
	for key := range small {
		if !big[key] {
			t.Fatalf("%s violated: %q missing from the larger set", label, key)
		}
	}
}

func TestStandardUserAndViewerFilters(t *testing.T) {
	roles := BuildSystemRoles(mustCatalog(t))

	standard := roleByName(t, roles, model.RoleStandardUser)
	for _, p := range standard.Permissions {
		if !operationalResources[p.Resource] {
			t.Fatalf("Standard User holds non-operational resource %q", p.Resource)
		}
		if p.Action == model.ActionDelete || p.Action == model.ActionManage {
			t.Fatalf("Standard User must not hold %q", p.Key())
		}
	}
	// supplier/product/order × read/create/update
	if len(standard.Permissions) != 9 {
		t.Fatalf("Standard User has %d permissions, want 9", len(standard.Permissions))
	}

	viewer := roleByName(t, roles, model.RoleViewer)
	for _, p := range viewer.Permissions {
		if p.Action != model.ActionRead {
			t.Fatalf("Viewer must be read-only, holds %q", p.Key())
		}
	}
	if len(viewer.Permissions) != 3 {
		t.Fatalf("Viewer has %d permissions, want 3", len(viewer.Permissions))
	}
}
