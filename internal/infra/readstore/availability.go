package readstore

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (r *AvailabilityReadStore) ServiceWindow(ctx context.Context, serviceID uuid.UUID) (int, int, int, error) {
	const query = `
		SELECT p.open_min, p.close_min, s.duration_min
		FROM services s
		JOIN providers p ON p.id = s.provider_id
		WHERE s.id = $1 AND s.is_active AND p.is_active
	`

	var openMin, closeMin, durationMin int
	err := r.db.QueryRow(ctx, query, serviceID).Scan(&openMin, &closeMin, &durationMin)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, 0, 0, infra.WrapRepoErr("service window not found", err, infra.KindNotFound)
		}
		return 0, 0, 0, infra.WrapRepoErr("failed to load service window", err)
	}

	return openMin, closeMin, durationMin, nil
}

func (r *AvailabilityReadStore) BookedStarts(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]time.Time, error) {
	// cancelled bookings release their slot
	const query = `
		SELECT b.scheduled_at
		FROM bookings b
		WHERE b.provider_id = (SELECT provider_id FROM services WHERE id = $1)
		  AND b.scheduled_at::date = $2::date
		  AND b.status <> 'cancelled'
	`

	rows, err := r.db.Query(ctx, query, serviceID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked starts", err)
	}
	defer rows.Close()

	var starts []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked start", err)
		}
		starts = append(starts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked starts", err)
	}

	return starts, nil
}
