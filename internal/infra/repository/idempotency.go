package repository

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key, taking over a record whose previous attempt
// expired. A live claim leaves zero rows affected and surfaces as a
// duplicate-key error, which the caller treats as a replay.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, user_id) DO UPDATE
		SET request_hash = EXCLUDED.request_hash,
			status = 'processing',
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
		WHERE idempotency_keys.status = 'processing'
			AND idempotency_keys.expires_at < now()
	`

	tag, err := dbtx.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key already claimed", nil, infra.KindDuplicateKey)
	}

	return nil
}

func (r *IdempotencyRepository) RefreshHash(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, requestHash string) error {
	const query = `
		UPDATE idempotency_keys
		SET request_hash = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2
	`

	tag, err := dbtx.Exec(ctx, query, key, userID, requestHash)
	if err != nil {
		return infra.WrapRepoErr("failed to refresh idempotency hash", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, dbtx db.DBTX, key, userID uuid.UUID, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_booking_id = $3, updated_at = now()
		WHERE key = $1 AND user_id = $2
	`

	tag, err := dbtx.Exec(ctx, query, key, userID, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}
