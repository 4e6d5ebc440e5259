//go:build unit

package catalog_test

import (
	"testing"

	"marketplace-api/internal/domain/catalog"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	price := catalog.MustMoney(5000)

	t.Run("valid service starts active", func(t *testing.T) {
		svc, err := catalog.NewService(uuid.New(), uuid.New(), uuid.New(), "Haircut", "", price, "USD", 30)

		require.NoError(t, err)
		assert.True(t, svc.IsActive())
		assert.NotEqual(t, uuid.Nil, svc.ID())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := catalog.NewService(uuid.New(), uuid.New(), uuid.New(), "", "", price, "USD", 30)

		require.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run("non-positive duration rejected", func(t *testing.T) {
		_, err := catalog.NewService(uuid.New(), uuid.New(), uuid.New(), "Haircut", "", price, "USD", 0)

		require.ErrorIs(t, err, catalog.ErrInvalidDuration)
	})
}

func TestNewProvider(t *testing.T) {
	t.Run("open must precede close", func(t *testing.T) {
		_, err := catalog.NewProvider(uuid.New(), uuid.New(), "Studio A", 1020, 540)

		require.ErrorIs(t, err, catalog.ErrInvalidWorkingHours)
	})

	t.Run("valid working hours", func(t *testing.T) {
		p, err := catalog.NewProvider(uuid.New(), uuid.New(), "Studio A", 540, 1020)

		require.NoError(t, err)
		assert.Equal(t, 540, p.OpenMin())
		assert.Equal(t, 1020, p.CloseMin())
	})
}

func TestNormalizeSelection(t *testing.T) {
	_, addons := builder.NewServiceBuilder().
		WithAddon("insurance", 1500, true).
		WithAddon("express", 3000, false).
		BuildDomain()
	required, optional := addons[0], addons[1]

	t.Run("empty selection keeps the required set", func(t *testing.T) {
		got := catalog.NormalizeSelection(addons, nil)

		assert.Equal(t, []uuid.UUID{required.ID}, got)
	})

	t.Run("optional addons are appended after required", func(t *testing.T) {
		got := catalog.NormalizeSelection(addons, []uuid.UUID{optional.ID})

		assert.Equal(t, []uuid.UUID{required.ID, optional.ID}, got)
	})

	t.Run("foreign and duplicate ids are dropped", func(t *testing.T) {
		got := catalog.NormalizeSelection(addons, []uuid.UUID{uuid.New(), optional.ID, optional.ID, required.ID})

		assert.Equal(t, []uuid.UUID{required.ID, optional.ID}, got)
	})
}

func TestQuote(t *testing.T) {
	svc, addons := builder.NewServiceBuilder().
		WithPriceCents(10000).
		WithAddon("insurance", 1500, true).
		WithAddon("express", 3000, false).
		BuildDomain()

	t.Run("base price only", func(t *testing.T) {
		total := catalog.Quote(svc, addons, nil)

		assert.EqualValues(t, 10000, total.Cents())
	})

	t.Run("selected addons add to the total", func(t *testing.T) {
		selected := catalog.NormalizeSelection(addons, []uuid.UUID{addons[1].ID})

		total := catalog.Quote(svc, addons, selected)

		assert.EqualValues(t, 14500, total.Cents())
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative amounts rejected", func(t *testing.T) {
		_, err := catalog.NewMoney(-1)

		require.ErrorIs(t, err, catalog.ErrNegativeMoney)
	})

	t.Run("addition", func(t *testing.T) {
		total := catalog.MustMoney(100).Add(catalog.MustMoney(25))

		assert.EqualValues(t, 125, total.Cents())
	})
}
