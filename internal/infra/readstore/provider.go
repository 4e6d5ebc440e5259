package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(dbtx db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: dbtx}
}

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProviderView, error) {
	const query = `
		SELECT p.id, p.company_id, p.user_id, p.display_name, u.email,
		       p.open_min, p.close_min,
		       (SELECT count(*) FROM services s WHERE s.provider_id = p.id),
		       p.is_active, p.created_at, p.updated_at
		FROM providers p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var v queries.ProviderView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.UserID, &v.DisplayName, &v.Email,
		&v.OpenMin, &v.CloseMin,
		&v.ServiceCount,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider by id", err)
	}

	return &v, nil
}

func (r *ProviderReadStore) FindFiltered(ctx context.Context, filter queries.ProviderFilter, limit, offset int) ([]*queries.ProviderView, int64, error) {
	const query = `
		SELECT p.id, p.company_id, p.user_id, p.display_name, u.email,
		       p.open_min, p.close_min,
		       (SELECT count(*) FROM services s WHERE s.provider_id = p.id),
		       p.is_active, p.created_at, p.updated_at,
		       count(*) OVER ()
		FROM providers p
		JOIN users u ON u.id = p.user_id
		WHERE ($1::uuid IS NULL OR p.company_id = $1)
		  AND ($2 = '' OR p.display_name ILIKE '%' || $2 || '%' OR u.email ILIKE '%' || $2 || '%')
		ORDER BY p.display_name, p.id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.CompanyID, filter.Search, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find providers", err)
	}
	defer rows.Close()

	var (
		items []*queries.ProviderView
		total int64
	)
	for rows.Next() {
		var v queries.ProviderView
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.UserID, &v.DisplayName, &v.Email,
			&v.OpenMin, &v.CloseMin,
			&v.ServiceCount,
			&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan provider row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate providers", err)
	}

	return items, total, nil
}
