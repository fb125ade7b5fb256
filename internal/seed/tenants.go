package seed

import (
	"time"

	"github.com/Fsisnio/procure-sub001/internal/model"
)

// SeedTenants returns the fixed demo organizations. IDs and attribute
// values are stable literals so existing deployments can interoperate
// with a re-seeded store. Quotas come from each tenant's plan tier.
func SeedTenants() []model.Tenant {
	now := time.Now().UTC()

	newTenant := func(id, name, domain, companyName, address, city string, plan model.SubscriptionPlan) model.Tenant {
		tier, _ := model.PlanByCode(plan)
		return model.Tenant{
			ID:               id,
			Name:             name,
			Domain:           domain,
			CompanyName:      companyName,
			Address:          address,
			City:             city,
			Country:          "France",
			Status:           model.TenantActive,
			SubscriptionPlan: plan,
			MaxUsers:         tier.MaxUsers,
			MaxSuppliers:     tier.MaxSuppliers,
			MaxProducts:      tier.MaxProducts,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	return []model.Tenant{
		newTenant("tenant_company1", "company1", "company1.fr",
			"Company One SARL", "12 Rue de Rivoli", "Paris", model.PlanBasic),
		newTenant("tenant_company2", "company2", "company2.fr",
			"Company Two SARL", "8 Place Bellecour", "Lyon", model.PlanPremium),
		newTenant("tenant_enterprise", "enterprise", "enterprise-solutions.fr",
			"Enterprise Solutions SARL", "45 La Canebière", "Marseille", model.PlanEnterprise),
	}
}
