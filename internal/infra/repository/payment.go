package repository

import (
	"context"

	"marketplace-api/internal/domain/payment"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	const query = `
		INSERT INTO payments (
			id, company_id, booking_id, amount_cents, currency,
			method, status, gateway_reference
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		p.ID(),
		p.CompanyID(),
		p.BookingID(),
		p.Amount().Cents(),
		p.Currency(),
		p.Method().String(),
		p.Status().String(),
		p.GatewayReference(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}

	return id, nil
}
