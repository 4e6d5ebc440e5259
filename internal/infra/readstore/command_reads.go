package readstore

import (
	"context"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/catalog"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads hydrates full domain entities for the write side. The
// read-model views in this package never reconstruct entities; these do.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, []catalog.Addon, error) {
	const query = `
		SELECT id, company_id, provider_id, category_id, name, description,
		       price_cents, currency, duration_min, rating, review_count,
		       is_active, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var (
		svcID, companyID, providerID, categoryID uuid.UUID
		name, description, currency             string
		priceCents                              int64
		durationMin, reviewCount                int
		rating                                  float64
		isActive                                bool
		createdAt, updatedAt                    time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&svcID, &companyID, &providerID, &categoryID, &name, &description,
		&priceCents, &currency, &durationMin, &rating, &reviewCount,
		&isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to load service", err)
	}

	svc := catalog.ReconstructService(
		svcID, companyID, providerID, categoryID,
		name, description,
		catalog.MustMoney(priceCents), currency,
		durationMin, rating, reviewCount, isActive,
		createdAt, updatedAt,
	)

	addons, err := r.serviceAddons(ctx, svcID)
	if err != nil {
		return nil, nil, err
	}

	return svc, addons, nil
}

func (r *CommandReads) serviceAddons(ctx context.Context, serviceID uuid.UUID) ([]catalog.Addon, error) {
	const query = `
		SELECT id, service_id, name, price_cents, required
		FROM service_addons
		WHERE service_id = $1
		ORDER BY required DESC, name
	`

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service addons", err)
	}
	defer rows.Close()

	var addons []catalog.Addon
	for rows.Next() {
		var (
			a          catalog.Addon
			priceCents int64
		)
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.Name, &priceCents, &a.Required); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service addon", err)
		}
		a.Price = catalog.MustMoney(priceCents)
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service addons", err)
	}

	return addons, nil
}

func (r *CommandReads) ProviderByID(ctx context.Context, id uuid.UUID) (*catalog.Provider, error) {
	const query = `
		SELECT id, company_id, user_id, display_name, open_min, close_min,
		       is_active, created_at, updated_at
		FROM providers
		WHERE id = $1
	`

	var (
		provID, companyID, userID uuid.UUID
		displayName               string
		openMin, closeMin         int
		isActive                  bool
		createdAt, updatedAt      time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&provID, &companyID, &userID, &displayName, &openMin, &closeMin,
		&isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load provider", err)
	}

	return catalog.ReconstructProvider(
		provID, companyID, userID, displayName,
		openMin, closeMin, isActive,
		createdAt, updatedAt,
	), nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT b.id, b.company_id, b.service_id, b.provider_id, b.user_id,
		       b.scheduled_at, b.address, b.notes, b.payment_type,
		       b.total_cents, b.currency, b.status, b.created_at, b.updated_at,
		       COALESCE(array_agg(ba.addon_id) FILTER (WHERE ba.addon_id IS NOT NULL), '{}')
		FROM bookings b
		LEFT JOIN booking_addons ba ON ba.booking_id = b.id
		WHERE b.id = $1
		GROUP BY b.id
	`

	var (
		bkID, companyID, serviceID, providerID, userID uuid.UUID
		scheduledAt, createdAt, updatedAt              time.Time
		address, notes, paymentType, currency, status  string
		totalCents                                     int64
		addonIDs                                       []uuid.UUID
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bkID, &companyID, &serviceID, &providerID, &userID,
		&scheduledAt, &address, &notes, &paymentType,
		&totalCents, &currency, &status, &createdAt, &updatedAt,
		&addonIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	return booking.ReconstructBooking(
		bkID, companyID, serviceID, providerID, userID,
		scheduledAt, address, notes, addonIDs,
		booking.PaymentType(paymentType),
		catalog.MustMoney(totalCents), currency,
		booking.Status(status),
		createdAt, updatedAt,
	), nil
}

func (r *CommandReads) CustomerProfile(ctx context.Context, userID uuid.UUID) (*shared.CustomerProfile, error) {
	const query = `
		SELECT id, trim(first_name || ' ' || last_name), email,
		       COALESCE(phone, ''), COALESCE(address, '')
		FROM users
		WHERE id = $1 AND is_active
	`

	var p shared.CustomerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Address)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load customer profile", err)
	}

	return &p, nil
}

func (r *CommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2
	`

	var rec shared.IdempotencyRecord
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash,
		&rec.ResultBookingID, &rec.ExpiresAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load idempotency record", err)
	}

	return &rec, nil
}
