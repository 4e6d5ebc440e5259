package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.company_id, b.service_id, s.name, b.provider_id, p.display_name,
		       b.user_id, trim(u.first_name || ' ' || u.last_name), u.email,
		       b.scheduled_at, b.address, b.notes, b.payment_type,
		       COALESCE(pay.status, 'pending'),
		       b.total_cents, b.currency, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN providers p ON p.id = b.provider_id
		JOIN users u ON u.id = b.user_id
		LEFT JOIN payments pay ON pay.booking_id = b.id
		WHERE b.id = $1
	`

	var v queries.BookingView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.ServiceID, &v.ServiceName, &v.ProviderID, &v.ProviderName,
		&v.UserID, &v.CustomerName, &v.CustomerEmail,
		&v.ScheduledAt, &v.Address, &v.Notes, &v.PaymentType,
		&v.PaymentStatus,
		&v.TotalCents, &v.Currency, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}

	addons, err := r.findAddons(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Addons = addons

	return &v, nil
}

func (r *BookingReadStore) findAddons(ctx context.Context, bookingID uuid.UUID) ([]queries.AddonView, error) {
	const query = `
		SELECT sa.id, sa.name, sa.price_cents, sa.required
		FROM booking_addons ba
		JOIN service_addons sa ON sa.id = ba.addon_id
		WHERE ba.booking_id = $1
		ORDER BY sa.name
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking addons", err)
	}
	defer rows.Close()

	addons := []queries.AddonView{}
	for rows.Next() {
		var a queries.AddonView
		if err := rows.Scan(&a.ID, &a.Name, &a.PriceCents, &a.Required); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking addon", err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking addons", err)
	}

	return addons, nil
}

const bookingListSelect = `
	SELECT b.id, s.name, p.display_name,
	       trim(u.first_name || ' ' || u.last_name),
	       b.scheduled_at, b.payment_type, b.total_cents, b.currency,
	       b.status, b.created_at,
	       count(*) OVER ()
	FROM bookings b
	JOIN services s ON s.id = b.service_id
	JOIN providers p ON p.id = b.provider_id
	JOIN users u ON u.id = b.user_id
`

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]*queries.BookingListItem, int64, error) {
	query := bookingListSelect + `
		WHERE b.user_id = $1
		  AND ($2 = '' OR b.status = $2)
		ORDER BY b.created_at DESC, b.id
		LIMIT $3 OFFSET $4
	`
	return r.scanList(ctx, query, userID, status, limit, offset)
}

func (r *BookingReadStore) FindByProviderUser(ctx context.Context, providerUserID uuid.UUID, status string, limit, offset int) ([]*queries.BookingListItem, int64, error) {
	query := bookingListSelect + `
		WHERE p.user_id = $1
		  AND ($2 = '' OR b.status = $2)
		ORDER BY b.created_at DESC, b.id
		LIMIT $3 OFFSET $4
	`
	return r.scanList(ctx, query, providerUserID, status, limit, offset)
}

func (r *BookingReadStore) FindByCompany(ctx context.Context, companyID *uuid.UUID, status string, limit, offset int) ([]*queries.BookingListItem, int64, error) {
	query := bookingListSelect + `
		WHERE ($1::uuid IS NULL OR b.company_id = $1)
		  AND ($2 = '' OR b.status = $2)
		ORDER BY b.created_at DESC, b.id
		LIMIT $3 OFFSET $4
	`
	return r.scanList(ctx, query, companyID, status, limit, offset)
}

func (r *BookingReadStore) scanList(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to find bookings", err)
	}
	defer rows.Close()

	var (
		items []*queries.BookingListItem
		total int64
	)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ServiceName, &item.ProviderName,
			&item.CustomerName,
			&item.ScheduledAt, &item.PaymentType, &item.TotalCents, &item.Currency,
			&item.Status, &item.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return items, total, nil
}
