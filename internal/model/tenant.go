package model

import "time"

// TenantStatus is the lifecycle state of an organization account.
type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
	TenantCancelled TenantStatus = "cancelled"
)

// SubscriptionPlan is the commercial tier a tenant is on. Quota defaults
// per plan live in the plan catalog (plan.go).
type SubscriptionPlan string

const (
	PlanBasic      SubscriptionPlan = "basic"
	PlanPremium    SubscriptionPlan = "premium"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// Tenant is an isolated organization/customer account, the unit of
// multi-tenant data partitioning. ID is globally unique and immutable.
// Quotas are enforced by the CRUD services, not by the seeder.
type Tenant struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"` // short slug, e.g. "company1"
	Domain           string           `json:"domain"`
	CompanyName      string           `json:"companyName"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	Country          string           `json:"country"`
	Status           TenantStatus     `json:"status"`
	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan"`
	MaxUsers         int              `json:"maxUsers"`
	MaxSuppliers     int              `json:"maxSuppliers"`
	MaxProducts      int              `json:"maxProducts"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
