//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-bot/internal/domain/booking"
)

// monday is a fixed weekday reference date (2026-03-02 is a Monday).
var monday = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestNewGuestName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain name ok", input: "John", want: "John"},
		{name: "surrounding whitespace trimmed", input: "  John  ", want: "John"},
		{name: "two words ok", input: "John Smith", want: "John Smith"},
		{name: "digit rejected", input: "John5", errIs: booking.ErrNameContainsDigits},
		{name: "leading digit rejected", input: "5John", errIs: booking.ErrNameContainsDigits},
		{name: "non-ascii digit rejected", input: "John٥", errIs: booking.ErrNameContainsDigits},
		{name: "empty rejected", input: "", errIs: booking.ErrEmptyName},
		{name: "whitespace only rejected", input: "   ", errIs: booking.ErrEmptyName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.NewGuestName(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNewPhone(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "11 digits ok", input: "79998887766"},
		{name: "trimmed ok", input: " 79998887766 "},
		{name: "too short", input: "12345", errIs: booking.ErrInvalidPhone},
		{name: "too long", input: "799988877665", errIs: booking.ErrInvalidPhone},
		{name: "separators rejected", input: "7-999-888-77", errIs: booking.ErrInvalidPhone},
		{name: "plus prefix rejected", input: "+7999888776", errIs: booking.ErrInvalidPhone},
		{name: "empty rejected", input: "", errIs: booking.ErrInvalidPhone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.NewPhone(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "79998887766", got.String())
		})
	}
}

func TestNewBookingDate(t *testing.T) {
	today := monday

	testCases := []struct {
		name  string
		token string
		errIs error
	}{
		{name: "today ok", token: "2026-03-02"},
		{name: "tomorrow ok", token: "2026-03-03"},
		{name: "boundary today+30 ok", token: "2026-04-01"},
		{name: "yesterday rejected", token: "2026-03-01", errIs: booking.ErrDateInPast},
		{name: "today+31 rejected", token: "2026-04-02", errIs: booking.ErrDateTooFar},
		{name: "garbage rejected", token: "03/02/2026", errIs: booking.ErrBadDateToken},
		{name: "empty rejected", token: "", errIs: booking.ErrBadDateToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.NewBookingDate(tc.token, today)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.token, got.Token())
		})
	}
}

func TestNewBookingTime(t *testing.T) {
	weekday, err := booking.NewBookingDate("2026-03-02", monday) // Monday
	require.NoError(t, err)
	weekend, err := booking.NewBookingDate("2026-03-07", monday) // Saturday
	require.NoError(t, err)

	testCases := []struct {
		name  string
		date  booking.BookingDate
		token string
		errIs error
	}{
		{name: "weekday opening slot ok", date: weekday, token: "08:00"},
		{name: "weekday closing boundary ok", date: weekday, token: "22:00"},
		{name: "weekday before opening rejected", date: weekday, token: "07:30", errIs: booking.ErrTimeOutsideWindow},
		{name: "weekday after closing rejected", date: weekday, token: "22:30", errIs: booking.ErrTimeOutsideWindow},
		{name: "weekend opening slot ok", date: weekend, token: "10:00"},
		{name: "weekend weekday-hour rejected", date: weekend, token: "09:30", errIs: booking.ErrTimeOutsideWindow},
		{name: "off-grid minute rejected", date: weekday, token: "12:15", errIs: booking.ErrBadTimeToken},
		{name: "unpadded hour rejected", date: weekday, token: "8:00", errIs: booking.ErrBadTimeToken},
		{name: "garbage rejected", date: weekday, token: "noon", errIs: booking.ErrBadTimeToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := booking.NewBookingTime(tc.date, tc.token)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.token, got.String())
		})
	}
}

func TestNewPartySize(t *testing.T) {
	for _, valid := range []string{"1", "2", "3", "4", "5", " 3 "} {
		t.Run("accepts "+valid, func(t *testing.T) {
			_, err := booking.NewPartySize(valid)
			require.NoError(t, err)
		})
	}

	for _, invalid := range []string{"0", "6", "-1", "two", "2.5", "", "  "} {
		t.Run("rejects "+invalid, func(t *testing.T) {
			_, err := booking.NewPartySize(invalid)
			require.ErrorIs(t, err, booking.ErrInvalidPartySize)
		})
	}
}

func TestNewFreeText(t *testing.T) {
	assert.Equal(t, "none", booking.NewFreeText("").String())
	assert.Equal(t, "none", booking.NewFreeText("   ").String())
	assert.Equal(t, "peanuts", booking.NewFreeText("peanuts").String())
	// Verbatim: free text is not trimmed, only emptiness is normalized.
	assert.Equal(t, " window seat ", booking.NewFreeText(" window seat ").String())
}
