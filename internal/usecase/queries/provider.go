package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProviderView struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	UserID       uuid.UUID `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	OpenMin      int       `json:"open_min"`
	CloseMin     int       `json:"close_min"`
	ServiceCount int       `json:"service_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProviderFilter struct {
	CompanyID *uuid.UUID
	Search    string
	Page      int
	Limit     int
}

type ProviderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	List(ctx context.Context, filter ProviderFilter) ([]*ProviderView, Pagination, error)
}

type ProviderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProviderView, error)
	FindFiltered(ctx context.Context, filter ProviderFilter, limit, offset int) ([]*ProviderView, int64, error)
}

type providerQueriesImpl struct {
	repo ProviderViewRepo
}

func NewProviderQueries(repo ProviderViewRepo) ProviderQueries {
	return &providerQueriesImpl{repo: repo}
}

func (q *providerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProviderView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *providerQueriesImpl) List(ctx context.Context, filter ProviderFilter) ([]*ProviderView, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	items, total, err := q.repo.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
