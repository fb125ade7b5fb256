package seed

import (
	"errors"
	"testing"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

func TestProvisionUsersFixture(t *testing.T) {
	tenants := SeedTenants()
	roles := BuildSystemRoles(mustCatalog(t))

	users, err := ProvisionUsers(tenants, roles)
	if err != nil {
		t.Fatalf("ProvisionUsers failed: %v", err)
	}
	if len(users) != 9 {
		t.Fatalf("provisioned %d users, want 9", len(users))
	}

	tenantIDs := make(map[string]bool, len(tenants))
	for _, tn := range tenants {
		tenantIDs[tn.ID] = true
	}
	roleNames := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleNames[r.Name] = true
	}

	superAdmins := 0
	for _, u := range users {
		// Referential integrity: tenant is seeded or the system scope.
		if u.TenantID != model.TenantSystem && !tenantIDs[u.TenantID] {
			t.Fatalf("user %q references unknown tenant %q", u.ID, u.TenantID)
		}
		// Role snapshot names a role built in the same run.
		if !roleNames[u.Role.Name] {
			t.Fatalf("user %q embeds unknown role %q", u.ID, u.Role.Name)
		}
		if u.Status != model.UserActive {
			t.Fatalf("user %q should start active", u.ID)
		}
		if u.TenantID == model.TenantSystem {
			superAdmins++
			if u.Role.Name != model.RoleSystemAdmin {
				t.Fatalf("system-scope user %q must hold System Admin, has %q", u.ID, u.Role.Name)
			}
		}
	}
	if superAdmins != 1 {
		t.Fatalf("%d system-scope users, want exactly 1", superAdmins)
	}
}

func TestProvisionUsersDerivesTenantDefaults(t *testing.T) {
	tenants := SeedTenants()
	roles := BuildSystemRoles(mustCatalog(t))

	users, err := ProvisionUsers(tenants, roles)
	if err != nil {
		t.Fatalf("ProvisionUsers failed: %v", err)
	}

	// "Company One SARL" -> "Compan", "John" -> "Joh"
	for _, u := range users {
		if u.ID == "user_company1_admin" {
			if u.Password != "CompanJoh123!" {
				t.Fatalf("derived password %q, want CompanJoh123!", u.Password)
			}
			return
		}
	}
	t.Fatal("user_company1_admin missing from fixture")
}

func TestProvisionUsersEmbedsRoleSnapshot(t *testing.T) {
	tenants := SeedTenants()
	roles := BuildSystemRoles(mustCatalog(t))

	users, err := ProvisionUsers(tenants, roles)
	if err != nil {
		t.Fatalf("ProvisionUsers failed: %v", err)
	}

	// Mutating the builder's output must not reach already-provisioned
	// users: the user owns a copy, not a reference.
	for i := range roles {
		roles[i].Name = "renamed"
	}
	for _, u := range users {
		if u.Role.Name == "renamed" {
			t.Fatalf("user %q shares role storage with the builder output", u.ID)
		}
	}
}

func TestProvisionUsersFailsOnMissingRole(t *testing.T) {
	tenants := SeedTenants()
	roles := BuildSystemRoles(mustCatalog(t))

	// Drop Tenant Admin to break the provisioner's expectations.
	var pruned []model.Role
	for _, r := range roles {
		if r.Name != model.RoleTenantAdmin {
			pruned = append(pruned, r)
		}
	}

	_, err := ProvisionUsers(tenants, pruned)
	var resErr *RoleResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected *RoleResolutionError, got %v", err)
	}
	if resErr.RoleName != model.RoleTenantAdmin {
		t.Fatalf("error names role %q, want %q", resErr.RoleName, model.RoleTenantAdmin)
	}
}

func TestSeedTenantsFixture(t *testing.T) {
	tenants := SeedTenants()
	if len(tenants) != 3 {
		t.Fatalf("seeded %d tenants, want 3", len(tenants))
	}

	want := map[string]struct {
		companyName string
		city        string
		plan        model.SubscriptionPlan
	}{
		"tenant_company1":   {"Company One SARL", "Paris", model.PlanBasic},
		"tenant_company2":   {"Company Two SARL", "Lyon", model.PlanPremium},
		"tenant_enterprise": {"Enterprise Solutions SARL", "Marseille", model.PlanEnterprise},
	}

	for _, tn := range tenants {
		w, ok := want[tn.ID]
		if !ok {
			t.Fatalf("unexpected tenant id %q", tn.ID)
		}
		if tn.CompanyName != w.companyName || tn.City != w.city || tn.SubscriptionPlan != w.plan {
			t.Fatalf("tenant %q literals drifted: %+v", tn.ID, tn)
		}
		if tn.Status != model.TenantActive {
			t.Fatalf("tenant %q should start active", tn.ID)
		}
		plan, _ := model.PlanByCode(tn.SubscriptionPlan)
		if tn.MaxUsers != plan.MaxUsers {
			t.Fatalf("tenant %q maxUsers %d does not match plan default %d", tn.ID, tn.MaxUsers, plan.MaxUsers)
		}
	}
}
