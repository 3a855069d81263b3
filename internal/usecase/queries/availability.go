package queries

import (
	"context"
	"time"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/domain/schedule"
	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/pkg/errs"
)

var ErrStoreUnavailable = errs.New("store unavailable")

// SlotReader is the read-side slice of the store contract the
// availability view needs.
type SlotReader interface {
	CountAt(ctx context.Context, slot booking.Slot) (int, error)
}

type AvailabilityQueries interface {
	// AvailableSlots lists the "HH:MM" slots on date still under capacity,
	// ascending. Advisory only: the authoritative check happens at commit.
	AvailableSlots(ctx context.Context, date time.Time) ([]string, error)

	// DateChoices lists the selectable dates, today first.
	DateChoices() []time.Time
}

type availabilityQueriesImpl struct {
	store SlotReader
	clock clock.Clock
}

func NewAvailabilityQueries(store SlotReader, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clk}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, date time.Time) ([]string, error) {
	candidates := schedule.CandidateSlots(date)
	available := make([]string, 0, len(candidates))
	for _, t := range candidates {
		count, err := q.store.CountAt(ctx, booking.Slot{Date: date, Time: t})
		if err != nil {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		if count < booking.SlotCapacity {
			available = append(available, t)
		}
	}
	return available, nil
}

func (q *availabilityQueriesImpl) DateChoices() []time.Time {
	return schedule.DateChoices(q.clock.Now())
}
