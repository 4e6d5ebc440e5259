package repository

import (
	"context"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (
			id, company_id, email, password_hash, role,
			first_name, last_name, phone, address, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		u.ID(),
		u.CompanyID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.FirstName(),
		u.LastName(),
		u.Phone(),
		u.Address(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, firstName, lastName, phone, address string) error {
	const query = `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, address = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, userID, firstName, lastName, phone, address)
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}

func (r *UserRepository) SetActive(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, active bool) error {
	const query = `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, userID, active)
	if err != nil {
		return infra.WrapRepoErr("failed to update user active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
