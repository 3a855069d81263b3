//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/infra/memstore"
	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/pkg/errs"
	"booking-bot/internal/usecase/queries"
	"booking-bot/tests/common/builder"
)

var monday = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

type failingReader struct{}

func (failingReader) CountAt(context.Context, booking.Slot) (int, error) {
	return 0, errs.New("connection refused")
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewReservationStore()
	q := queries.NewAvailabilityQueries(store, clock.NewMockClock(monday))

	tuesday := monday.AddDate(0, 0, 1)

	t.Run("empty store exposes the full weekday grid", func(t *testing.T) {
		slots, err := q.AvailableSlots(ctx, tuesday)
		require.NoError(t, err)
		assert.Len(t, slots, 29)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "22:00", slots[len(slots)-1])
	})

	t.Run("full slot disappears, others stay", func(t *testing.T) {
		phones := []string{"79998887701", "79998887702", "79998887703"}
		for _, phone := range phones {
			res, err := builder.NewReservationBuilder(monday).WithPhone(phone).BuildDomain()
			require.NoError(t, err)
			require.NoError(t, store.Insert(ctx, res))
		}

		slots, err := q.AvailableSlots(ctx, tuesday)
		require.NoError(t, err)
		assert.Len(t, slots, 28)
		assert.NotContains(t, slots, "12:00")
		assert.Contains(t, slots, "11:30")
		assert.Contains(t, slots, "12:30")
	})

	t.Run("partially booked slot remains offered", func(t *testing.T) {
		res, err := builder.NewReservationBuilder(monday).
			WithPhone("79998887704").WithTimeToken("13:00").
			BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Insert(ctx, res))

		slots, err := q.AvailableSlots(ctx, tuesday)
		require.NoError(t, err)
		assert.Contains(t, slots, "13:00")
	})

	t.Run("reader failure surfaces as store unavailable", func(t *testing.T) {
		broken := queries.NewAvailabilityQueries(failingReader{}, clock.NewMockClock(monday))
		_, err := broken.AvailableSlots(ctx, tuesday)
		require.ErrorIs(t, err, queries.ErrStoreUnavailable)
	})
}

func TestDateChoices(t *testing.T) {
	clk := clock.NewMockClock(monday)
	q := queries.NewAvailabilityQueries(memstore.NewReservationStore(), clk)

	dates := q.DateChoices()
	require.Len(t, dates, 30)
	assert.Equal(t, "2026-03-02", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2026-03-31", dates[len(dates)-1].Format("2006-01-02"))

	// The window follows the clock.
	clk.Add(24 * time.Hour)
	dates = q.DateChoices()
	require.Len(t, dates, 30)
	assert.Equal(t, "2026-03-03", dates[0].Format("2006-01-02"))
}
