package repository

import (
	"context"

	"marketplace-api/internal/domain/catalog"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) CreateService(ctx context.Context, dbtx db.DBTX, s *catalog.Service, addons []catalog.Addon) (uuid.UUID, error) {
	const query = `
		INSERT INTO services (
			id, company_id, provider_id, category_id, name, description,
			price_cents, currency, duration_min, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		s.ID(),
		s.CompanyID(),
		s.ProviderID(),
		s.CategoryID(),
		s.Name(),
		s.Description(),
		s.Price().Cents(),
		s.Currency(),
		s.DurationMin(),
		s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}

	const addonQuery = `
		INSERT INTO service_addons (id, service_id, name, price_cents, required)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, a := range addons {
		addonID := a.ID
		if addonID == uuid.Nil {
			addonID = uuid.New()
		}
		if _, err := dbtx.Exec(ctx, addonQuery, addonID, id, a.Name, a.Price.Cents(), a.Required); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create service addon", err)
		}
	}

	return id, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, dbtx db.DBTX, s *catalog.Service) error {
	const query = `
		UPDATE services
		SET category_id = $2,
		    name        = $3,
		    description = $4,
		    price_cents = $5,
		    duration_min = $6,
		    is_active   = $7,
		    updated_at  = now()
		WHERE id = $1 AND company_id = $8
	`

	tag, err := dbtx.Exec(ctx, query,
		s.ID(),
		s.CategoryID(),
		s.Name(),
		s.Description(),
		s.Price().Cents(),
		s.DurationMin(),
		s.IsActive(),
		s.CompanyID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, dbtx db.DBTX, id, companyID uuid.UUID) (int64, error) {
	const query = `DELETE FROM services WHERE id = $1 AND company_id = $2`

	tag, err := dbtx.Exec(ctx, query, id, companyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete service", err)
	}

	return tag.RowsAffected(), nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, dbtx db.DBTX, c *catalog.Category) (uuid.UUID, error) {
	const query = `
		INSERT INTO categories (id, company_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, c.ID(), c.CompanyID(), c.Name(), c.Description()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}

	return id, nil
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, dbtx db.DBTX, c *catalog.Category) error {
	const query = `
		UPDATE categories
		SET name = $2, description = $3, updated_at = now()
		WHERE id = $1 AND company_id = $4
	`

	tag, err := dbtx.Exec(ctx, query, c.ID(), c.Name(), c.Description(), c.CompanyID())
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, dbtx db.DBTX, id, companyID uuid.UUID) (int64, error) {
	const query = `DELETE FROM categories WHERE id = $1 AND company_id = $2`

	tag, err := dbtx.Exec(ctx, query, id, companyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete category", err)
	}

	return tag.RowsAffected(), nil
}

func (r *CatalogRepository) CreateProvider(ctx context.Context, dbtx db.DBTX, p *catalog.Provider) (uuid.UUID, error) {
	const query = `
		INSERT INTO providers (id, company_id, user_id, display_name, open_min, close_min, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		p.ID(),
		p.CompanyID(),
		p.UserID(),
		p.DisplayName(),
		p.OpenMin(),
		p.CloseMin(),
		p.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create provider", err)
	}

	return id, nil
}

func (r *CatalogRepository) UpdateProvider(ctx context.Context, dbtx db.DBTX, p *catalog.Provider) error {
	const query = `
		UPDATE providers
		SET display_name = $2,
		    open_min     = $3,
		    close_min    = $4,
		    is_active    = $5,
		    updated_at   = now()
		WHERE id = $1 AND company_id = $6
	`

	tag, err := dbtx.Exec(ctx, query,
		p.ID(),
		p.DisplayName(),
		p.OpenMin(),
		p.CloseMin(),
		p.IsActive(),
		p.CompanyID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update provider", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}

	return nil
}

// DeactivateProvider is the delete operation: bookings keep their provider
// reference, so the row stays and only drops out of listings.
func (r *CatalogRepository) DeactivateProvider(ctx context.Context, dbtx db.DBTX, id, companyID uuid.UUID) (int64, error) {
	const query = `
		UPDATE providers
		SET is_active = false, updated_at = now()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := dbtx.Exec(ctx, query, id, companyID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate provider", err)
	}

	return tag.RowsAffected(), nil
}
