package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID           uuid.UUID   `json:"id"`
	CompanyID    uuid.UUID   `json:"company_id"`
	ProviderID   uuid.UUID   `json:"provider_id"`
	ProviderName string      `json:"provider_name"`
	CategoryID   uuid.UUID   `json:"category_id"`
	CategoryName string      `json:"category_name"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	PriceCents   int64       `json:"price_cents"`
	Currency     string      `json:"currency"`
	DurationMin  int         `json:"duration_min"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	IsActive     bool        `json:"is_active"`
	Addons       []AddonView `json:"addons"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type AddonView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Required   bool      `json:"required"`
}

type ServiceListItem struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	CategoryName string    `json:"category_name"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"price_cents"`
	Currency     string    `json:"currency"`
	DurationMin  int       `json:"duration_min"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	IsActive     bool      `json:"is_active"`
}

type ServiceFilter struct {
	CompanyID  *uuid.UUID
	CategoryID *uuid.UUID
	ProviderID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, filter ServiceFilter) ([]*ServiceListItem, Pagination, error)
}

type ServiceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindFiltered(ctx context.Context, filter ServiceFilter, limit, offset int) ([]*ServiceListItem, int64, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *serviceQueriesImpl) List(ctx context.Context, filter ServiceFilter) ([]*ServiceListItem, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	items, total, err := q.repo.FindFiltered(ctx, filter, limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
