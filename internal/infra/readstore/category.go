package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(dbtx db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: dbtx}
}

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	const query = `
		SELECT c.id, c.company_id, c.name, COALESCE(c.description, ''),
		       (SELECT count(*) FROM services s WHERE s.category_id = c.id),
		       c.created_at, c.updated_at
		FROM categories c
		WHERE c.id = $1
	`

	var v queries.CategoryView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.Name, &v.Description,
		&v.ServiceCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by id", err)
	}

	return &v, nil
}

func (r *CategoryReadStore) FindFiltered(ctx context.Context, filter queries.CategoryFilter, limit, offset int) ([]*queries.CategoryView, int64, error) {
	const query = `
		SELECT c.id, c.company_id, c.name, COALESCE(c.description, ''),
		       (SELECT count(*) FROM services s WHERE s.category_id = c.id),
		       c.created_at, c.updated_at,
		       count(*) OVER ()
		FROM categories c
		WHERE ($1::uuid IS NULL OR c.company_id = $1)
		  AND ($2 = '' OR c.name ILIKE '%' || $2 || '%')
		ORDER BY c.name, c.id
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, filter.CompanyID, filter.Search, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find categories", err)
	}
	defer rows.Close()

	var (
		items []*queries.CategoryView
		total int64
	)
	for rows.Next() {
		var v queries.CategoryView
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Name, &v.Description,
			&v.ServiceCount,
			&v.CreatedAt, &v.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan category row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate categories", err)
	}

	return items, total, nil
}
