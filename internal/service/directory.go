package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/store"
)

// Directory gives the CRUD services typed access to the three persisted
// collections. Each collection is stored as one JSON array under its
// well-known key; the store decides where the bytes live.
type Directory struct {
	store store.Store
}

// NewDirectory wraps a store with the collection codec.
func NewDirectory(s store.Store) *Directory {
	return &Directory{store: s}
}

// Tenants loads the tenant collection. A never-written key yields an
// empty slice, not an error.
func (d *Directory) Tenants(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	if err := d.load(ctx, store.KeyTenants, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// SaveTenants replaces the tenant collection.
func (d *Directory) SaveTenants(ctx context.Context, tenants []model.Tenant) error {
	return d.save(ctx, store.KeyTenants, tenants)
}

// Users loads the user collection.
func (d *Directory) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := d.load(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the user collection.
func (d *Directory) SaveUsers(ctx context.Context, users []model.User) error {
	return d.save(ctx, store.KeyUsers, users)
}

// Roles loads the role collection.
func (d *Directory) Roles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := d.load(ctx, store.KeyRoles, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (d *Directory) load(ctx context.Context, key string, out any) error {
	data, found, err := d.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %q: %w", key, err)
	}
	if !found || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (d *Directory) save(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := d.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
