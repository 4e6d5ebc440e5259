//go:build unit

package draftstore_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/draftstore"
	"marketplace-api/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, ttl time.Duration) (*draftstore.RedisDraftStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return draftstore.NewRedisDraftStore(client, ttl), mr
}

func TestRedisDraftStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then find round-trips the draft", func(t *testing.T) {
		store, _ := newStore(t, time.Minute)
		draft := builder.NewDraftBuilder().BuildDomain()

		require.NoError(t, store.Save(ctx, draft))

		found, err := store.Find(ctx, draft.Token)
		require.NoError(t, err)
		assert.Equal(t, draft.Token, found.Token)
		assert.Equal(t, draft.UserID, found.UserID)
		assert.Equal(t, draft.Step, found.Step)
		assert.Equal(t, draft.ScheduledDate, found.ScheduledDate)
		assert.Equal(t, draft.TotalCents, found.TotalCents)
		assert.Equal(t, draft.Slots, found.Slots)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		store, _ := newStore(t, time.Minute)

		_, err := store.Find(ctx, uuid.New())

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("an expired draft is not found", func(t *testing.T) {
		store, mr := newStore(t, time.Minute)
		draft := builder.NewDraftBuilder().BuildDomain()
		require.NoError(t, store.Save(ctx, draft))

		mr.FastForward(2 * time.Minute)

		_, err := store.Find(ctx, draft.Token)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("every save refreshes the TTL", func(t *testing.T) {
		store, mr := newStore(t, time.Minute)
		draft := builder.NewDraftBuilder().BuildDomain()
		require.NoError(t, store.Save(ctx, draft))

		mr.FastForward(45 * time.Second)
		require.NoError(t, store.Save(ctx, draft))
		mr.FastForward(45 * time.Second)

		_, err := store.Find(ctx, draft.Token)
		require.NoError(t, err)
	})

	t.Run("delete removes the draft", func(t *testing.T) {
		store, _ := newStore(t, time.Minute)
		draft := builder.NewDraftBuilder().BuildDomain()
		require.NoError(t, store.Save(ctx, draft))

		require.NoError(t, store.Delete(ctx, draft.Token))

		_, err := store.Find(ctx, draft.Token)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
