// Package builder assembles valid domain objects for tests, with hooks
// to break individual fields.
package builder

import (
	"time"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/domain/schedule"
)

type ReservationBuilder struct {
	name      string
	phone     string
	dateToken string
	timeToken string
	partySize string
	allergy   string
	comment   string
	today     time.Time
}

// NewReservationBuilder defaults to a weekday lunch booking the day
// after today.
func NewReservationBuilder(today time.Time) *ReservationBuilder {
	return &ReservationBuilder{
		name:      "John",
		phone:     "79998887766",
		dateToken: today.AddDate(0, 0, 1).Format(schedule.DateTokenLayout),
		timeToken: "12:00",
		partySize: "2",
		allergy:   "none",
		comment:   "none",
		today:     today,
	}
}

func (b *ReservationBuilder) WithName(name string) *ReservationBuilder {
	b.name = name
	return b
}

func (b *ReservationBuilder) WithPhone(phone string) *ReservationBuilder {
	b.phone = phone
	return b
}

func (b *ReservationBuilder) WithDateToken(token string) *ReservationBuilder {
	b.dateToken = token
	return b
}

func (b *ReservationBuilder) WithTimeToken(token string) *ReservationBuilder {
	b.timeToken = token
	return b
}

func (b *ReservationBuilder) WithPartySize(text string) *ReservationBuilder {
	b.partySize = text
	return b
}

func (b *ReservationBuilder) BuildDomain() (*booking.Reservation, error) {
	name, err := booking.NewGuestName(b.name)
	if err != nil {
		return nil, err
	}
	phone, err := booking.NewPhone(b.phone)
	if err != nil {
		return nil, err
	}
	date, err := booking.NewBookingDate(b.dateToken, b.today)
	if err != nil {
		return nil, err
	}
	tm, err := booking.NewBookingTime(date, b.timeToken)
	if err != nil {
		return nil, err
	}
	size, err := booking.NewPartySize(b.partySize)
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(
		name, phone, date, tm, size,
		booking.NewFreeText(b.allergy),
		booking.NewFreeText(b.comment),
		b.today,
	), nil
}
