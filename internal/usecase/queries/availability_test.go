//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityStore struct {
	openMin, closeMin, durationMin int
	windowErr                      error
	booked                         []time.Time
	bookedErr                      error
}

func (s *stubAvailabilityStore) ServiceWindow(_ context.Context, _ uuid.UUID) (int, int, int, error) {
	return s.openMin, s.closeMin, s.durationMin, s.windowErr
}

func (s *stubAvailabilityStore) BookedStarts(_ context.Context, _ uuid.UUID, _ time.Time) ([]time.Time, error) {
	return s.booked, s.bookedErr
}

func TestSlotsFor(t *testing.T) {
	serviceID := uuid.New()
	// 09:00-12:00 window, 60 minute sessions
	store := func() *stubAvailabilityStore {
		return &stubAvailabilityStore{openMin: 540, closeMin: 720, durationMin: 60}
	}
	future := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC))

	t.Run("generates slots across the working window", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(store(), clk)

		view, err := q.SlotsFor(context.Background(), serviceID, future)

		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", view.Date)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.Slots)
	})

	t.Run("booked starts are excluded", func(t *testing.T) {
		s := store()
		s.booked = []time.Time{time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)}
		q := queries.NewAvailabilityQueries(s, clk)

		view, err := q.SlotsFor(context.Background(), serviceID, future)

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:00"}, view.Slots)
	})

	t.Run("past slots are dropped when the date is today", func(t *testing.T) {
		today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		midMorning := clock.NewMockClock(time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC))
		q := queries.NewAvailabilityQueries(store(), midMorning)

		view, err := q.SlotsFor(context.Background(), serviceID, today)

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "11:00"}, view.Slots)
	})

	t.Run("a session that would overrun the window is not offered", func(t *testing.T) {
		s := store()
		s.durationMin = 90
		q := queries.NewAvailabilityQueries(s, clk)

		view, err := q.SlotsFor(context.Background(), serviceID, future)

		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:30"}, view.Slots)
	})

	t.Run("window lookup failure degrades to an empty list", func(t *testing.T) {
		s := store()
		s.windowErr = errors.New("connection refused")
		q := queries.NewAvailabilityQueries(s, clk)

		view, err := q.SlotsFor(context.Background(), serviceID, future)

		require.NoError(t, err)
		assert.Empty(t, view.Slots)
		assert.NotNil(t, view.Slots)
	})

	t.Run("booked starts failure degrades to an empty list", func(t *testing.T) {
		s := store()
		s.bookedErr = errors.New("timeout")
		q := queries.NewAvailabilityQueries(s, clk)

		view, err := q.SlotsFor(context.Background(), serviceID, future)

		require.NoError(t, err)
		assert.Empty(t, view.Slots)
	})
}
