package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardReadStore struct {
	db db.DBTX
}

func NewDashboardReadStore(dbtx db.DBTX) *DashboardReadStore {
	return &DashboardReadStore{db: dbtx}
}

func (r *DashboardReadStore) AdminAggregates(ctx context.Context, companyID *uuid.UUID) (*queries.AdminDashboardView, error) {
	const query = `
		SELECT
		  (SELECT count(*) FROM users     WHERE $1::uuid IS NULL OR company_id = $1),
		  (SELECT count(*) FROM providers WHERE $1::uuid IS NULL OR company_id = $1),
		  (SELECT count(*) FROM services  WHERE $1::uuid IS NULL OR company_id = $1),
		  (SELECT count(*) FROM bookings  WHERE $1::uuid IS NULL OR company_id = $1),
		  (SELECT count(*) FROM bookings  WHERE status = 'pending'   AND ($1::uuid IS NULL OR company_id = $1)),
		  (SELECT count(*) FROM bookings  WHERE status = 'confirmed' AND ($1::uuid IS NULL OR company_id = $1)),
		  (SELECT COALESCE(sum(pay.amount_cents), 0)
		     FROM payments pay
		     JOIN bookings b ON b.id = pay.booking_id
		     WHERE pay.status = 'paid' AND ($1::uuid IS NULL OR b.company_id = $1))
	`

	var v queries.AdminDashboardView
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&v.TotalUsers, &v.TotalProviders, &v.TotalServices,
		&v.TotalBookings, &v.PendingBookings, &v.ConfirmedBookings,
		&v.RevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load admin dashboard", err)
	}

	return &v, nil
}

func (r *DashboardReadStore) ProviderAggregates(ctx context.Context, providerUserID uuid.UUID) (*queries.ProviderDashboardView, error) {
	const query = `
		SELECT
		  (SELECT count(*) FROM services s
		     JOIN providers p ON p.id = s.provider_id
		     WHERE p.user_id = $1),
		  (SELECT count(*) FROM bookings b
		     JOIN providers p ON p.id = b.provider_id
		     WHERE p.user_id = $1),
		  (SELECT count(*) FROM bookings b
		     JOIN providers p ON p.id = b.provider_id
		     WHERE p.user_id = $1 AND b.status IN ('pending', 'confirmed') AND b.scheduled_at > now()),
		  (SELECT count(*) FROM bookings b
		     JOIN providers p ON p.id = b.provider_id
		     WHERE p.user_id = $1 AND b.status = 'completed'),
		  (SELECT COALESCE(sum(pay.amount_cents), 0)
		     FROM payments pay
		     JOIN bookings b ON b.id = pay.booking_id
		     JOIN providers p ON p.id = b.provider_id
		     WHERE p.user_id = $1 AND pay.status = 'paid')
	`

	var v queries.ProviderDashboardView
	err := r.db.QueryRow(ctx, query, providerUserID).Scan(
		&v.TotalServices, &v.TotalBookings, &v.UpcomingBookings,
		&v.CompletedBookings, &v.RevenueCents,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load provider dashboard", err)
	}

	return &v, nil
}
