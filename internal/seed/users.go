package seed

import (
	"time"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/password"
)

// demo account bindings: which person gets which role in which tenant.
// Tenant-scoped passwords are derived deterministically from the company
// name and first name so onboarding flows can predict them.
type demoAccount struct {
	id        string
	tenantID  string
	email     string
	firstName string
	lastName  string
	roleName  string
	// password overrides the derived default when non-empty (system scope
	// has no company name to derive from).
	password string
}

func demoAccounts() []demoAccount {
	return []demoAccount{
		{"user_superadmin", model.TenantSystem, "superadmin@procure.app",
			"Super", "Admin", model.RoleSystemAdmin, "SuperAdmin123!"},

		{"user_company1_admin", "tenant_company1", "john.martin@company1.fr",
			"John", "Martin", model.RoleTenantAdmin, ""},
		{"user_company1_user", "tenant_company1", "sophie.bernard@company1.fr",
			"Sophie", "Bernard", model.RoleStandardUser, ""},
		{"user_company1_viewer", "tenant_company1", "lucas.petit@company1.fr",
			"Lucas", "Petit", model.RoleViewer, ""},

		{"user_company2_admin", "tenant_company2", "marie.dubois@company2.fr",
			"Marie", "Dubois", model.RoleTenantAdmin, ""},
		{"user_company2_user", "tenant_company2", "pierre.durand@company2.fr",
			"Pierre", "Durand", model.RoleStandardUser, ""},

		{"user_enterprise_admin", "tenant_enterprise", "emma.laurent@enterprise-solutions.fr",
			"Emma", "Laurent", model.RoleTenantAdmin, ""},
		{"user_enterprise_user", "tenant_enterprise", "thomas.moreau@enterprise-solutions.fr",
			"Thomas", "Moreau", model.RoleStandardUser, ""},
		{"user_enterprise_viewer", "tenant_enterprise", "julie.roux@enterprise-solutions.fr",
			"Julie", "Roux", model.RoleViewer, ""},
	}
}

// ProvisionUsers binds each demo account to its tenant and role. Every
// user embeds a full copy of the resolved Role (snapshot semantics).
// A role name with no match in roles fails with *RoleResolutionError;
// that invariant couples this file to the role builder's output.
func ProvisionUsers(tenants []model.Tenant, roles []model.Role) ([]model.User, error) {
	tenantByID := make(map[string]model.Tenant, len(tenants))
	for _, t := range tenants {
		tenantByID[t.ID] = t
	}

	now := time.Now().UTC()
	accounts := demoAccounts()
	users := make([]model.User, 0, len(accounts))
	for _, a := range accounts {
		role, ok := findRoleByName(roles, a.roleName)
		if !ok {
			return nil, &RoleResolutionError{RoleName: a.roleName}
		}

		pw := a.password
		if pw == "" {
			pw = password.DeriveUserDefaultPassword(a.firstName, tenantByID[a.tenantID].CompanyName)
		}

		users = append(users, model.User{
			ID:        a.id,
			TenantID:  a.tenantID,
			Email:     a.email,
			FirstName: a.firstName,
			LastName:  a.lastName,
			Password:  pw,
			Role:      role,
			Status:    model.UserActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return users, nil
}

func findRoleByName(roles []model.Role, name string) (model.Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return model.Role{}, false
}
