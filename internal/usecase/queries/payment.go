package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/user"

	"github.com/google/uuid"
)

type PaymentView struct {
	ID               uuid.UUID `json:"id"`
	BookingID        uuid.UUID `json:"booking_id"`
	ServiceName      string    `json:"service_name"`
	CustomerName     string    `json:"customer_name"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	AmountCents      int64     `json:"amount_cents"`
	Currency         string    `json:"currency"`
	GatewayReference string    `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type PaymentFilter struct {
	Status string
	Page   int
	Limit  int
}

type PaymentQueries interface {
	ListForActor(ctx context.Context, actor Actor, filter PaymentFilter) ([]*PaymentView, Pagination, error)
}

type PaymentViewRepo interface {
	FindByCompany(ctx context.Context, companyID *uuid.UUID, status string, limit, offset int) ([]*PaymentView, int64, error)
	FindByProviderUser(ctx context.Context, providerUserID uuid.UUID, status string, limit, offset int) ([]*PaymentView, int64, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) ListForActor(ctx context.Context, actor Actor, filter PaymentFilter) ([]*PaymentView, Pagination, error) {
	page, limit, offset := NormalizePage(filter.Page, filter.Limit)

	var (
		items []*PaymentView
		total int64
		err   error
	)
	if actor.Role == user.RoleProvider {
		items, total, err = q.repo.FindByProviderUser(ctx, actor.UserID, filter.Status, limit, offset)
	} else {
		items, total, err = q.repo.FindByCompany(ctx, actor.CompanyID, filter.Status, limit, offset)
	}
	if err != nil {
		return nil, Pagination{}, err
	}

	return items, NewPagination(total, page, limit), nil
}
