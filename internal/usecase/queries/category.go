package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ServiceCount int       `json:"service_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryFilter struct {
	CompanyID *uuid.UUID
	Search    string
	Page      int
	Limit     int
}

type CategoryQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	List(ctx context.Context, filter CategoryFilter) ([]*CategoryView, Pagination, error)
}

type CategoryViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindFiltered(ctx context.Context, filter CategoryFilter, limit, offset int) ([]*CategoryView, int64, error)
}

type categoryQueriesImpl struct {
	repo CategoryViewRepo
}

func NewCategoryQueries(repo CategoryViewRepo) CategoryQueries {
	return &categoryQueriesImpl{repo: repo}
}

func (q *categoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *categoryQueriesImpl) List(ctx context.Context, filter CategoryFilter) ([]*CategoryView, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	items, total, err := q.repo.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
