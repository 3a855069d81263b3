//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-bot/internal/domain/booking"
	"booking-bot/tests/common/builder"
)

func TestReservation(t *testing.T) {
	res, err := builder.NewReservationBuilder(monday).BuildDomain()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, "John", res.Name().String())
	assert.Equal(t, "79998887766", res.Phone().String())
	assert.Equal(t, booking.Slot{Date: res.Date().Time(), Time: "12:00"}, res.Slot())
	assert.Equal(t, "2026-03-03 12:00", res.Slot().Key())
}

func TestSlotStart(t *testing.T) {
	slot := booking.Slot{
		Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		Time: "19:30",
	}
	want := time.Date(2026, 3, 3, 19, 30, 0, 0, time.UTC)
	assert.True(t, want.Equal(slot.Start(time.UTC)))
}

func TestReservationStartsBefore(t *testing.T) {
	res, err := builder.NewReservationBuilder(monday).BuildDomain()
	require.NoError(t, err)

	// Booked for 2026-03-03 12:00.
	assert.False(t, res.StartsBefore(time.Date(2026, 3, 3, 11, 59, 0, 0, time.UTC)))
	assert.True(t, res.StartsBefore(time.Date(2026, 3, 3, 12, 1, 0, 0, time.UTC)))
}
