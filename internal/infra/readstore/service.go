package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	const query = `
		SELECT s.id, s.company_id, s.provider_id, p.display_name,
		       s.category_id, c.name,
		       s.name, s.description, s.price_cents, s.currency,
		       s.duration_min, s.rating, s.review_count, s.is_active,
		       s.created_at, s.updated_at
		FROM services s
		JOIN providers p ON p.id = s.provider_id
		JOIN categories c ON c.id = s.category_id
		WHERE s.id = $1
	`

	var v queries.ServiceView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.ProviderID, &v.ProviderName,
		&v.CategoryID, &v.CategoryName,
		&v.Name, &v.Description, &v.PriceCents, &v.Currency,
		&v.DurationMin, &v.Rating, &v.ReviewCount, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by id", err)
	}

	addons, err := r.findAddons(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Addons = addons

	return &v, nil
}

func (r *ServiceReadStore) findAddons(ctx context.Context, serviceID uuid.UUID) ([]queries.AddonView, error) {
	const query = `
		SELECT id, name, price_cents, required
		FROM service_addons
		WHERE service_id = $1
		ORDER BY required DESC, name
	`

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service addons", err)
	}
	defer rows.Close()

	addons := []queries.AddonView{}
	for rows.Next() {
		var a queries.AddonView
		if err := rows.Scan(&a.ID, &a.Name, &a.PriceCents, &a.Required); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service addon", err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service addons", err)
	}

	return addons, nil
}

func (r *ServiceReadStore) FindFiltered(ctx context.Context, filter queries.ServiceFilter, limit, offset int) ([]*queries.ServiceListItem, int64, error) {
	const query = `
		SELECT s.id, s.provider_id, p.display_name, c.name,
		       s.name, s.price_cents, s.currency, s.duration_min,
		       s.rating, s.review_count, s.is_active,
		       count(*) OVER ()
		FROM services s
		JOIN providers p ON p.id = s.provider_id
		JOIN categories c ON c.id = s.category_id
		WHERE ($1::uuid IS NULL OR s.company_id = $1)
		  AND ($2::uuid IS NULL OR s.category_id = $2)
		  AND ($3::uuid IS NULL OR s.provider_id = $3)
		  AND ($4 = '' OR s.name ILIKE '%' || $4 || '%' OR s.description ILIKE '%' || $4 || '%')
		ORDER BY s.created_at DESC, s.id
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.CompanyID, filter.CategoryID, filter.ProviderID, filter.Search,
		limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find services", err)
	}
	defer rows.Close()

	var (
		items []*queries.ServiceListItem
		total int64
	)
	for rows.Next() {
		var item queries.ServiceListItem
		if err := rows.Scan(
			&item.ID, &item.ProviderID, &item.ProviderName, &item.CategoryName,
			&item.Name, &item.PriceCents, &item.Currency, &item.DurationMin,
			&item.Rating, &item.ReviewCount, &item.IsActive,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan service row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate services", err)
	}

	return items, total, nil
}
