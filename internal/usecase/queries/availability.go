package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace-api/internal/pkg/clock"

	"github.com/google/uuid"
)

type AvailabilityView struct {
	ServiceID uuid.UUID `json:"service_id"`
	Date      string    `json:"date"`
	Slots     []string  `json:"slots"`
}

// AvailabilityReadStore supplies the two facts slot generation needs: the
// provider's working window for the service and the starts already taken on
// the requested date.
type AvailabilityReadStore interface {
	ServiceWindow(ctx context.Context, serviceID uuid.UUID) (openMin, closeMin, durationMin int, err error)
	BookedStarts(ctx context.Context, serviceID uuid.UUID, date time.Time) ([]time.Time, error)
}

type AvailabilityQueries interface {
	// SlotsFor returns the open "HH:MM" starts for (service, date). A storage
	// failure degrades to an empty list: the wizard shows no slots rather
	// than an error, and the guard keeps the user on step 1.
	SlotsFor(ctx context.Context, serviceID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) SlotsFor(ctx context.Context, serviceID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	view := &AvailabilityView{
		ServiceID: serviceID,
		Date:      date.Format("2006-01-02"),
		Slots:     []string{},
	}

	openMin, closeMin, durationMin, err := q.store.ServiceWindow(ctx, serviceID)
	if err != nil {
		slog.Warn("availability window lookup failed, returning no slots",
			"service_id", serviceID, "error", err)
		return view, nil
	}

	booked, err := q.store.BookedStarts(ctx, serviceID, date)
	if err != nil {
		slog.Warn("booked starts lookup failed, returning no slots",
			"service_id", serviceID, "date", view.Date, "error", err)
		return view, nil
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t.Format("15:04")] = true
	}

	now := q.clock.Now()
	today := date.Year() == now.Year() && date.YearDay() == now.YearDay()
	nowMin := now.Hour()*60 + now.Minute()

	for m := openMin; m+durationMin <= closeMin; m += durationMin {
		if today && m <= nowMin {
			continue
		}
		slot := fmt.Sprintf("%02d:%02d", m/60, m%60)
		if taken[slot] {
			continue
		}
		view.Slots = append(view.Slots, slot)
	}

	return view, nil
}
