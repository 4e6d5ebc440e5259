package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentListSelect = `
	SELECT pay.id, pay.booking_id, s.name,
	       trim(u.first_name || ' ' || u.last_name),
	       pay.method, pay.status, pay.amount_cents, pay.currency,
	       COALESCE(pay.gateway_reference, ''), pay.created_at,
	       count(*) OVER ()
	FROM payments pay
	JOIN bookings b ON b.id = pay.booking_id
	JOIN services s ON s.id = b.service_id
	JOIN providers p ON p.id = b.provider_id
	JOIN users u ON u.id = b.user_id
`

func (r *PaymentReadStore) FindByCompany(ctx context.Context, companyID *uuid.UUID, status string, limit, offset int) ([]*queries.PaymentView, int64, error) {
	query := paymentListSelect + `
		WHERE ($1::uuid IS NULL OR b.company_id = $1)
		  AND ($2 = '' OR pay.status = $2)
		ORDER BY pay.created_at DESC, pay.id
		LIMIT $3 OFFSET $4
	`
	return r.scanList(ctx, query, companyID, status, limit, offset)
}

func (r *PaymentReadStore) FindByProviderUser(ctx context.Context, providerUserID uuid.UUID, status string, limit, offset int) ([]*queries.PaymentView, int64, error) {
	query := paymentListSelect + `
		WHERE p.user_id = $1
		  AND ($2 = '' OR pay.status = $2)
		ORDER BY pay.created_at DESC, pay.id
		LIMIT $3 OFFSET $4
	`
	return r.scanList(ctx, query, providerUserID, status, limit, offset)
}

func (r *PaymentReadStore) scanList(ctx context.Context, query string, args ...any) ([]*queries.PaymentView, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find payments", err)
	}
	defer rows.Close()

	var (
		items []*queries.PaymentView
		total int64
	)
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(
			&v.ID, &v.BookingID, &v.ServiceName,
			&v.CustomerName,
			&v.Method, &v.Status, &v.AmountCents, &v.Currency,
			&v.GatewayReference, &v.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan payment row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate payments", err)
	}

	return items, total, nil
}
