package service

import (
	"context"
	"errors"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/seed"
)

// ErrRoleNotFound is returned when a role id or name resolves to nothing.
var ErrRoleNotFound = errors.New("role not found")

// RoleService is a read-only collaborator: built-in roles and the
// permission catalog are immutable after bootstrap.
type RoleService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetRole(ctx context.Context, id string) (*model.Role, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	GetPermissionKeysByRoleName(ctx context.Context, roleName string) ([]string, error)
}

type roleService struct {
	dir *Directory
}

func NewRoleService(dir *Directory) RoleService {
	return &roleService{dir: dir}
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.dir.Roles(ctx)
}

func (s *roleService) GetRole(ctx context.Context, id string) (*model.Role, error) {
	roles, err := s.dir.Roles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].ID == id {
			return &roles[i], nil
		}
	}
	return nil, ErrRoleNotFound
}

// ListPermissions returns the full permission universe. The catalog is
// rebuilt from the default configuration, which is deterministic and
// identical to what bootstrap seeded.
func (s *roleService) ListPermissions(_ context.Context) ([]model.Permission, error) {
	return seed.BuildCatalog(seed.DefaultPermissionConfig())
}

// GetPermissionKeysByRoleName returns the "resource:action" pairs a role
// grants, for the permission middleware.
func (s *roleService) GetPermissionKeysByRoleName(ctx context.Context, roleName string) ([]string, error) {
	roles, err := s.dir.Roles(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if r.Name != roleName {
			continue
		}
		keys := make([]string, 0, len(r.Permissions))
		for _, p := range r.Permissions {
			keys = append(keys, p.Key())
		}
		return keys, nil
	}
	return nil, ErrRoleNotFound
}
