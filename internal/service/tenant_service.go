package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fsisnio/procure-sub001/internal/model"
	"github.com/Fsisnio/procure-sub001/internal/websocket"
)

// ErrTenantNotFound is returned when a tenant id resolves to nothing.
var ErrTenantNotFound = errors.New("tenant not found")

// --- DTOs ---

type CreateTenantRequest struct {
	Name             string `json:"name" binding:"required"`
	Domain           string `json:"domain" binding:"required"`
	CompanyName      string `json:"companyName" binding:"required"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Country          string `json:"country"`
	SubscriptionPlan string `json:"subscriptionPlan" binding:"required"`
}

type UpdateTenantRequest struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type UpdateTenantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- Interface ---

type TenantService interface {
	ListTenants(ctx context.Context) ([]model.Tenant, error)
	GetTenant(ctx context.Context, id string) (*model.Tenant, error)
	CreateTenant(ctx context.Context, req CreateTenantRequest) (*model.Tenant, error)
	UpdateTenant(ctx context.Context, id string, req UpdateTenantRequest) (*model.Tenant, error)
	UpdateTenantStatus(ctx context.Context, id string, req UpdateTenantStatusRequest) (*model.Tenant, error)
	ListPlans(ctx context.Context) ([]model.Plan, error)
}

type tenantService struct {
	dir *Directory
	hub *websocket.Hub
}

// NewTenantService returns a tenant CRUD collaborator over the store.
// hub may be nil when no event surface is wired.
func NewTenantService(dir *Directory, hub *websocket.Hub) TenantService {
	return &tenantService{dir: dir, hub: hub}
}

// --- Implementation ---

func (s *tenantService) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	return s.dir.Tenants(ctx)
}

func (s *tenantService) GetTenant(ctx context.Context, id string) (*model.Tenant, error) {
	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			return &tenants[i], nil
		}
	}
	return nil, ErrTenantNotFound
}

func (s *tenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*model.Tenant, error) {
	plan, ok := model.PlanByCode(model.SubscriptionPlan(req.SubscriptionPlan))
	if !ok {
		return nil, fmt.Errorf("unknown subscription plan %q", req.SubscriptionPlan)
	}

	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tenants {
		if t.Name == req.Name {
			return nil, fmt.Errorf("tenant slug %q already exists", req.Name)
		}
		if t.Domain == req.Domain {
			return nil, fmt.Errorf("domain %q already registered", req.Domain)
		}
	}

	now := time.Now().UTC()
	tenant := model.Tenant{
		ID:               model.NewID("tenant"),
		Name:             req.Name,
		Domain:           req.Domain,
		CompanyName:      req.CompanyName,
		Address:          req.Address,
		City:             req.City,
		Country:          req.Country,
		Status:           model.TenantActive,
		SubscriptionPlan: plan.Code,
		MaxUsers:         plan.MaxUsers,
		MaxSuppliers:     plan.MaxSuppliers,
		MaxProducts:      plan.MaxProducts,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	tenants = append(tenants, tenant)
	if err := s.dir.SaveTenants(ctx, tenants); err != nil {
		return nil, err
	}

	s.hub.Publish("tenant.created", tenant.ID, tenant.ID)
	return &tenant, nil
}

func (s *tenantService) UpdateTenant(ctx context.Context, id string, req UpdateTenantRequest) (*model.Tenant, error) {
	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tenants {
		if tenants[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrTenantNotFound
	}

	t := &tenants[idx]
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Domain != "" {
		t.Domain = req.Domain
	}
	if req.CompanyName != "" {
		t.CompanyName = req.CompanyName
	}
	if req.Address != "" {
		t.Address = req.Address
	}
	if req.City != "" {
		t.City = req.City
	}
	if req.Country != "" {
		t.Country = req.Country
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.dir.SaveTenants(ctx, tenants); err != nil {
		return nil, err
	}

	s.hub.Publish("tenant.updated", t.ID, t.ID)
	return t, nil
}

func (s *tenantService) UpdateTenantStatus(ctx context.Context, id string, req UpdateTenantStatusRequest) (*model.Tenant, error) {
	status := model.TenantStatus(req.Status)
	switch status {
	case model.TenantActive, model.TenantSuspended, model.TenantCancelled:
	default:
		return nil, fmt.Errorf("invalid tenant status %q", req.Status)
	}

	tenants, err := s.dir.Tenants(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tenants {
		if tenants[i].ID != id {
			continue
		}
		tenants[i].Status = status
		tenants[i].UpdatedAt = time.Now().UTC()
		if err := s.dir.SaveTenants(ctx, tenants); err != nil {
			return nil, err
		}
		s.hub.Publish("tenant."+req.Status, id, id)
		return &tenants[i], nil
	}
	return nil, ErrTenantNotFound
}

func (s *tenantService) ListPlans(_ context.Context) ([]model.Plan, error) {
	return model.PlanCatalog(), nil
}
