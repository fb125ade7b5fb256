package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

func TestListRolesAndPermissions(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(seededDirectory(t))

	roles, err := svc.ListRoles(ctx)
	if err != nil {
		t.Fatalf("ListRoles failed: %v", err)
	}
	if len(roles) != 4 {
		t.Fatalf("listed %d roles, want 4", len(roles))
	}

	perms, err := svc.ListPermissions(ctx)
	if err != nil {
		t.Fatalf("ListPermissions failed: %v", err)
	}
	if len(perms) == 0 {
		t.Fatal("permission catalog is empty")
	}
	// System Admin mirrors the full catalog.
	for _, r := range roles {
		if r.Name == model.RoleSystemAdmin && len(r.Permissions) != len(perms) {
			t.Fatalf("System Admin has %d permissions, catalog has %d", len(r.Permissions), len(perms))
		}
	}
}

func TestGetRoleByID(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(seededDirectory(t))

	role, err := svc.GetRole(ctx, "role_viewer")
	if err != nil {
		t.Fatalf("GetRole failed: %v", err)
	}
	if role.Name != model.RoleViewer {
		t.Fatalf("got role %q, want Viewer", role.Name)
	}

	if _, err := svc.GetRole(ctx, "role_missing"); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestGetPermissionKeysByRoleName(t *testing.T) {
	ctx := context.Background()
	svc := NewRoleService(seededDirectory(t))

	keys, err := svc.GetPermissionKeysByRoleName(ctx, model.RoleTenantAdmin)
	if err != nil {
		t.Fatalf("GetPermissionKeysByRoleName failed: %v", err)
	}
	if len(keys) == 0 {
		t.Fatal("Tenant Admin should grant permissions")
	}
	for _, key := range keys {
		if strings.HasPrefix(key, "tenant:") {
			t.Fatalf("Tenant Admin must not grant %q", key)
		}
		if !strings.Contains(key, ":") {
			t.Fatalf("permission key %q is not resource:action", key)
		}
	}

	if _, err := svc.GetPermissionKeysByRoleName(ctx, "Ghost"); !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
