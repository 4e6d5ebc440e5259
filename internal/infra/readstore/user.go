package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, company_id, email, role, first_name, last_name,
		       COALESCE(phone, ''), COALESCE(address, ''),
		       is_active, last_login, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.Email, &v.Role, &v.FirstName, &v.LastName,
		&v.Phone, &v.Address,
		&v.IsActive, &v.LastLogin, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &v, nil
}

func (r *UserReadStore) FindFiltered(ctx context.Context, filter queries.UserFilter, limit, offset int) ([]*queries.UserView, int64, error) {
	const query = `
		SELECT id, company_id, email, role, first_name, last_name,
		       COALESCE(phone, ''), COALESCE(address, ''),
		       is_active, last_login, created_at, updated_at,
		       count(*) OVER ()
		FROM users
		WHERE ($1::uuid IS NULL OR company_id = $1)
		  AND ($2 = '' OR role = $2)
		  AND ($3 = '' OR email ILIKE '%' || $3 || '%'
		       OR first_name ILIKE '%' || $3 || '%'
		       OR last_name ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC, id
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.CompanyID, filter.Role, filter.Search, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find users", err)
	}
	defer rows.Close()

	var (
		items []*queries.UserView
		total int64
	)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Email, &v.Role, &v.FirstName, &v.LastName,
			&v.Phone, &v.Address,
			&v.IsActive, &v.LastLogin, &v.CreatedAt, &v.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan user row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate users", err)
	}

	return items, total, nil
}

func (r *UserReadStore) FindAuthorizedByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, company_id, email, password_hash, role, is_active
		FROM users
		WHERE email = $1
	`

	var v queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, query, email).Scan(
		&v.ID, &v.CompanyID, &v.Email, &v.PasswordHash, &v.Role, &v.IsActive,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, nil
}
