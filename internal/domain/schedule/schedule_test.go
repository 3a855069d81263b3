//go:build unit

package schedule_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-bot/internal/domain/schedule"
)

var (
	monday   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func TestOpeningWindow(t *testing.T) {
	for _, tc := range []struct {
		name  string
		date  time.Time
		start string
	}{
		{name: "monday opens early", date: monday, start: "08:00"},
		{name: "friday opens early", date: monday.AddDate(0, 0, 4), start: "08:00"},
		{name: "saturday opens late", date: saturday, start: "10:00"},
		{name: "sunday opens late", date: sunday, start: "10:00"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end := schedule.OpeningWindow(tc.date)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, "22:00", end)
		})
	}
}

func TestCandidateSlots(t *testing.T) {
	t.Run("weekday grid", func(t *testing.T) {
		slots := schedule.CandidateSlots(monday)
		// 08:00 through 22:00 inclusive on a 30-minute grid.
		require.Len(t, slots, 29)
		assert.Equal(t, "08:00", slots[0])
		assert.Equal(t, "08:30", slots[1])
		assert.Equal(t, "22:00", slots[len(slots)-1])
	})

	t.Run("weekend grid", func(t *testing.T) {
		slots := schedule.CandidateSlots(saturday)
		require.Len(t, slots, 25)
		assert.Equal(t, "10:00", slots[0])
		assert.Equal(t, "22:00", slots[len(slots)-1])
	})

	t.Run("ascending order", func(t *testing.T) {
		slots := schedule.CandidateSlots(monday)
		assert.True(t, sort.StringsAreSorted(slots))
	})
}

func TestWithinWindow(t *testing.T) {
	assert.True(t, schedule.WithinWindow(monday, "08:00"))
	assert.True(t, schedule.WithinWindow(monday, "22:00"))
	assert.False(t, schedule.WithinWindow(monday, "07:30"))
	assert.False(t, schedule.WithinWindow(monday, "22:30"))
	assert.False(t, schedule.WithinWindow(saturday, "09:30"))
	assert.True(t, schedule.WithinWindow(saturday, "10:00"))
}

func TestDateChoices(t *testing.T) {
	choices := schedule.DateChoices(monday)
	require.Len(t, choices, schedule.BookingHorizonDays)
	assert.True(t, choices[0].Equal(monday))
	assert.True(t, choices[29].Equal(monday.AddDate(0, 0, 29)))
	for i := 1; i < len(choices); i++ {
		assert.True(t, choices[i].After(choices[i-1]))
	}
}
