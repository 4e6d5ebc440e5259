package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "wizard:draft:"

// RedisDraftStore persists wizard sessions under a TTL so an interrupted flow
// resumes until the draft expires.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func key(token uuid.UUID) string {
	return keyPrefix + token.String()
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *booking.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return errs.Wrap(err, "failed to marshal draft")
	}

	// every write refreshes the TTL: activity keeps the session alive
	if err := s.client.Set(ctx, key(draft.Token), payload, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}

	return nil
}

func (s *RedisDraftStore) Find(ctx context.Context, token uuid.UUID) (*booking.Draft, error) {
	payload, err := s.client.Get(ctx, key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("draft not found or expired", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load draft", err)
	}

	var draft booking.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal draft")
	}

	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, token uuid.UUID) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}
