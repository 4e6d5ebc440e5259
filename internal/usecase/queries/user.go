package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AuthorizedUserView carries the password hash and is only handed to the auth
// flow; it never crosses the handler boundary.
type AuthorizedUserView struct {
	ID           uuid.UUID
	CompanyID    *uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type UserFilter struct {
	CompanyID *uuid.UUID
	Role      string
	Search    string
	Page      int
	Limit     int
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, filter UserFilter) ([]*UserView, Pagination, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindFiltered(ctx context.Context, filter UserFilter, limit, offset int) ([]*UserView, int64, error)
	FindAuthorizedByEmail(ctx context.Context, email string) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) List(ctx context.Context, filter UserFilter) ([]*UserView, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	items, total, err := q.repo.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}

func (q *userQueriesImpl) FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, error) {
	return q.repo.FindAuthorizedByEmail(ctx, email)
}
