package repository

import (
	"context"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, company_id, service_id, provider_id, user_id,
			scheduled_at, customer_address, notes, payment_type,
			total_cents, currency, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		b.ID(),
		b.CompanyID(),
		b.ServiceID(),
		b.ProviderID(),
		b.UserID(),
		b.ScheduledAt(),
		b.Address(),
		b.Notes(),
		b.PaymentType().String(),
		b.Total().Cents(),
		b.Currency(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	const addonQuery = `INSERT INTO booking_addons (booking_id, addon_id) VALUES ($1, $2)`
	for _, addonID := range b.AddonIDs() {
		if _, err := dbtx.Exec(ctx, addonQuery, id, addonID); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to attach booking addon", err)
		}
	}

	return id, nil
}

func (r *BookingRepository) Confirm(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE bookings
		SET status = 'confirmed', updated_at = now()
		WHERE id = $1 AND status IN ('pending', 'confirmed')
	`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not confirmable", nil, infra.KindConflict)
	}

	return nil
}

func (r *BookingRepository) UpdateDetails(ctx context.Context, dbtx db.DBTX, id uuid.UUID, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET scheduled_at = $2,
		    customer_address = $3,
		    notes = $4,
		    payment_type = $5,
		    total_cents = $6,
		    updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := dbtx.Exec(ctx, query,
		id,
		b.ScheduledAt(),
		b.Address(),
		b.Notes(),
		b.PaymentType().String(),
		b.Total().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking details", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not editable", nil, infra.KindConflict)
	}

	const clearAddons = `DELETE FROM booking_addons WHERE booking_id = $1`
	if _, err := dbtx.Exec(ctx, clearAddons, id); err != nil {
		return infra.WrapRepoErr("failed to clear booking addons", err)
	}

	const addonQuery = `INSERT INTO booking_addons (booking_id, addon_id) VALUES ($1, $2)`
	for _, addonID := range b.AddonIDs() {
		if _, err := dbtx.Exec(ctx, addonQuery, id, addonID); err != nil {
			return infra.WrapRepoErr("failed to attach booking addon", err)
		}
	}

	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
