package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/user"

	"github.com/google/uuid"
)

type BookingView struct {
	ID            uuid.UUID   `json:"id"`
	CompanyID     uuid.UUID   `json:"company_id"`
	ServiceID     uuid.UUID   `json:"service_id"`
	ServiceName   string      `json:"service_name"`
	ProviderID    uuid.UUID   `json:"provider_id"`
	ProviderName  string      `json:"provider_name"`
	UserID        uuid.UUID   `json:"user_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	ScheduledAt   time.Time   `json:"scheduled_at"`
	Address       string      `json:"address"`
	Notes         string      `json:"notes,omitempty"`
	Addons        []AddonView `json:"addons"`
	PaymentType   string      `json:"payment_type"`
	PaymentStatus string      `json:"payment_status"`
	TotalCents    int64       `json:"total_cents"`
	Currency      string      `json:"currency"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ServiceName  string    `json:"service_name"`
	ProviderName string    `json:"provider_name"`
	CustomerName string    `json:"customer_name"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	PaymentType  string    `json:"payment_type"`
	TotalCents   int64     `json:"total_cents"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingFilter struct {
	Status string
	Page   int
	Limit  int
}

type BookingQueries interface {
	// GetByID enforces visibility: customers see their own bookings,
	// providers the bookings of their services, admins everything in
	// their company.
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error)
	ListForActor(ctx context.Context, actor Actor, filter BookingFilter) ([]*BookingListItem, Pagination, error)
}

// Actor is the authenticated principal a query is scoped to.
type Actor struct {
	UserID    uuid.UUID
	Role      user.Role
	CompanyID *uuid.UUID
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]*BookingListItem, int64, error)
	FindByProviderUser(ctx context.Context, providerUserID uuid.UUID, status string, limit, offset int) ([]*BookingListItem, int64, error)
	FindByCompany(ctx context.Context, companyID *uuid.UUID, status string, limit, offset int) ([]*BookingListItem, int64, error)
}

var ErrForbidden = NewQueryError("actor is not allowed to see this resource")

type QueryError struct{ msg string }

func NewQueryError(msg string) *QueryError { return &QueryError{msg: msg} }
func (e *QueryError) Error() string        { return e.msg }

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case user.RoleAdmin:
		if actor.CompanyID != nil && *actor.CompanyID != view.CompanyID {
			return nil, ErrForbidden
		}
	case user.RoleProvider:
		if view.UserID != actor.UserID && (actor.CompanyID == nil || *actor.CompanyID != view.CompanyID) {
			return nil, ErrForbidden
		}
	default:
		if view.UserID != actor.UserID {
			return nil, ErrForbidden
		}
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actor Actor, filter BookingFilter) ([]*BookingListItem, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	var (
		items []*BookingListItem
		total int64
		err   error
	)
	switch actor.Role {
	case user.RoleAdmin:
		items, total, err = q.repo.FindByCompany(ctx, actor.CompanyID, filter.Status, limit, offset)
	case user.RoleProvider:
		items, total, err = q.repo.FindByProviderUser(ctx, actor.UserID, filter.Status, limit, offset)
	default:
		items, total, err = q.repo.FindByUser(ctx, actor.UserID, filter.Status, limit, offset)
	}
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
