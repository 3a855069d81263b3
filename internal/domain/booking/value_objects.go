package booking

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"booking-bot/internal/domain/schedule"
)

var (
	ErrEmptyName          = errors.New("name is empty")
	ErrNameContainsDigits = errors.New("name contains digits")
	ErrInvalidPhone       = errors.New("phone must be exactly 11 digits")
	ErrBadDateToken       = errors.New("malformed date token")
	ErrDateInPast         = errors.New("date is in the past")
	ErrDateTooFar         = errors.New("date is too far ahead")
	ErrBadTimeToken       = errors.New("malformed time token")
	ErrTimeOutsideWindow  = errors.New("time is outside opening hours")
	ErrInvalidPartySize   = errors.New("party size must be between 1 and 5")
)

// noneText is what empty free-text answers are stored as.
const noneText = "none"

type GuestName struct {
	value string
}

func NewGuestName(text string) (GuestName, error) {
	name := strings.TrimSpace(text)
	if name == "" {
		return GuestName{}, ErrEmptyName
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return GuestName{}, ErrNameContainsDigits
		}
	}
	return GuestName{value: name}, nil
}

func (n GuestName) String() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(text string) (Phone, error) {
	phone := strings.TrimSpace(text)
	if len(phone) != 11 {
		return Phone{}, ErrInvalidPhone
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return Phone{}, ErrInvalidPhone
		}
	}
	return Phone{value: phone}, nil
}

func (p Phone) String() string {
	return p.value
}

type BookingDate struct {
	value time.Time
}

// NewBookingDate parses a "YYYY-MM-DD" selection token and checks it
// against the booking window [today, today+30d]. Tokens are compared
// lexicographically so the caller's timezone never skews the day math.
func NewBookingDate(token string, today time.Time) (BookingDate, error) {
	d, err := time.Parse(schedule.DateTokenLayout, token)
	if err != nil {
		return BookingDate{}, ErrBadDateToken
	}
	todayToken := today.Format(schedule.DateTokenLayout)
	maxToken := today.AddDate(0, 0, schedule.BookingHorizonDays).Format(schedule.DateTokenLayout)
	if token < todayToken {
		return BookingDate{}, ErrDateInPast
	}
	if token > maxToken {
		return BookingDate{}, ErrDateTooFar
	}
	return BookingDate{value: d}, nil
}

func (d BookingDate) Time() time.Time {
	return d.value
}

func (d BookingDate) Token() string {
	return d.value.Format(schedule.DateTokenLayout)
}

func (d BookingDate) IsZero() bool {
	return d.value.IsZero()
}

type BookingTime struct {
	value string
}

// NewBookingTime accepts a zero-padded "HH:MM" token on a 30-minute
// boundary inside the opening window of date, end boundary included.
func NewBookingTime(date BookingDate, token string) (BookingTime, error) {
	if !isHalfHourToken(token) {
		return BookingTime{}, ErrBadTimeToken
	}
	if !schedule.WithinWindow(date.Time(), token) {
		return BookingTime{}, ErrTimeOutsideWindow
	}
	return BookingTime{value: token}, nil
}

func (t BookingTime) String() string {
	return t.value
}

type PartySize struct {
	value int
}

func NewPartySize(text string) (PartySize, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return PartySize{}, ErrInvalidPartySize
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return PartySize{}, ErrInvalidPartySize
		}
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > 5 {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: n}, nil
}

func (s PartySize) Int() int {
	return s.value
}

// FreeText wraps the allergy and comment answers. There is nothing to
// validate; a blank answer becomes the literal "none".
type FreeText struct {
	value string
}

func NewFreeText(text string) FreeText {
	if strings.TrimSpace(text) == "" {
		return FreeText{value: noneText}
	}
	return FreeText{value: text}
}

func (t FreeText) String() string {
	return t.value
}

func isHalfHourToken(token string) bool {
	if len(token) != 5 || token[2] != ':' {
		return false
	}
	for i, r := range token {
		if i == 2 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	hour, _ := strconv.Atoi(token[:2])
	minute, _ := strconv.Atoi(token[3:])
	return hour <= 23 && (minute == 0 || minute == 30)
}
