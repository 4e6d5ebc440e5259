//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/catalog"

	"github.com/google/uuid"
)

type AddonSpec struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Required   bool
}

type ServiceBuilder struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	ProviderID  uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	PriceCents  int64
	Currency    string
	DurationMin int
	IsActive    bool
	Addons      []AddonSpec
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          uuid.New(),
		CompanyID:   uuid.New(),
		ProviderID:  uuid.New(),
		CategoryID:  uuid.New(),
		Name:        "Deep Cleaning",
		PriceCents:  10000,
		Currency:    "USD",
		DurationMin: 60,
		IsActive:    true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithPriceCents(cents int64) *ServiceBuilder {
	b.PriceCents = cents
	return b
}

func (b *ServiceBuilder) WithAddon(name string, cents int64, required bool) *ServiceBuilder {
	b.Addons = append(b.Addons, AddonSpec{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: cents,
		Required:   required,
	})
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.IsActive = false
	return b
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, []catalog.Addon) {
	now := time.Now()
	svc := catalog.ReconstructService(
		b.ID, b.CompanyID, b.ProviderID, b.CategoryID,
		b.Name, "standard package",
		catalog.MustMoney(b.PriceCents), b.Currency, b.DurationMin,
		0, 0, b.IsActive, now, now,
	)

	addons := make([]catalog.Addon, 0, len(b.Addons))
	for _, spec := range b.Addons {
		addons = append(addons, catalog.Addon{
			ID:        spec.ID,
			ServiceID: b.ID,
			Name:      spec.Name,
			Price:     catalog.MustMoney(spec.PriceCents),
			Required:  spec.Required,
		})
	}
	return svc, addons
}
