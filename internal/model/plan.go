package model

import "github.com/shopspring/decimal"

// Plan describes a subscription tier: monthly price plus the quota
// defaults applied to tenants on that tier.
type Plan struct {
	Code         SubscriptionPlan `json:"code"`
	Name         string           `json:"name"`
	MonthlyPrice decimal.Decimal  `json:"monthlyPrice"`
	MaxUsers     int              `json:"maxUsers"`
	MaxSuppliers int              `json:"maxSuppliers"`
	MaxProducts  int              `json:"maxProducts"`
}

// PlanCatalog returns the fixed subscription tiers in ascending price order.
func PlanCatalog() []Plan {
	return []Plan{
		{
			Code:         PlanBasic,
			Name:         "Basic",
			MonthlyPrice: decimal.NewFromInt(29),
			MaxUsers:     5,
			MaxSuppliers: 20,
			MaxProducts:  100,
		},
		{
			Code:         PlanPremium,
			Name:         "Premium",
			MonthlyPrice: decimal.NewFromInt(99),
			MaxUsers:     20,
			MaxSuppliers: 100,
			MaxProducts:  1000,
		},
		{
			Code:         PlanEnterprise,
			Name:         "Enterprise",
			MonthlyPrice: decimal.NewFromInt(299),
			MaxUsers:     100,
			MaxSuppliers: 500,
			MaxProducts:  10000,
		},
	}
}

// PlanByCode resolves a tier from the catalog; ok is false for unknown codes.
func PlanByCode(code SubscriptionPlan) (Plan, bool) {
	for _, p := range PlanCatalog() {
		if p.Code == code {
			return p, true
		}
	}
	return Plan{}, false
}
