package booking

import (
	"time"

	"github.com/google/uuid"
)

// SlotCapacity is the maximum number of parties the venue seats per
// (date, time) slot. Enforced advisory at render time and authoritatively
// inside the store's insert transaction.
const SlotCapacity = 3

// Slot is a (date, time) pair identifying one 30-minute reservation
// window. Capacity accounting keys on it.
type Slot struct {
	Date time.Time
	Time string
}

func (s Slot) Key() string {
	return s.Date.Format("2006-01-02") + " " + s.Time
}

// Start returns the instant the slot begins, in loc.
func (s Slot) Start(loc *time.Location) time.Time {
	var hour, minute int
	if len(s.Time) == 5 {
		hour = int(s.Time[0]-'0')*10 + int(s.Time[1]-'0')
		minute = int(s.Time[3]-'0')*10 + int(s.Time[4]-'0')
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), hour, minute, 0, 0, loc)
}

// Reservation is the committed booking. Immutable once constructed.
type Reservation struct {
	id        uuid.UUID
	name      GuestName
	phone     Phone
	date      BookingDate
	time      BookingTime
	partySize PartySize
	allergy   FreeText
	comment   FreeText
	createdAt time.Time
}

func NewReservation(
	name GuestName,
	phone Phone,
	date BookingDate,
	tm BookingTime,
	partySize PartySize,
	allergy FreeText,
	comment FreeText,
	now time.Time,
) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		name:      name,
		phone:     phone,
		date:      date,
		time:      tm,
		partySize: partySize,
		allergy:   allergy,
		comment:   comment,
		createdAt: now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	name GuestName,
	phone Phone,
	date BookingDate,
	tm BookingTime,
	partySize PartySize,
	allergy FreeText,
	comment FreeText,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		name:      name,
		phone:     phone,
		date:      date,
		time:      tm,
		partySize: partySize,
		allergy:   allergy,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Name() GuestName      { return r.name }
func (r *Reservation) Phone() Phone         { return r.phone }
func (r *Reservation) Date() BookingDate    { return r.date }
func (r *Reservation) Time() BookingTime    { return r.time }
func (r *Reservation) PartySize() PartySize { return r.partySize }
func (r *Reservation) Allergy() FreeText    { return r.allergy }
func (r *Reservation) Comment() FreeText    { return r.comment }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

func (r *Reservation) Slot() Slot {
	return Slot{Date: r.date.Time(), Time: r.time.String()}
}

// StartsBefore reports whether the reserved slot begins strictly before
// now. Expired reservations are eligible for the startup purge.
func (r *Reservation) StartsBefore(now time.Time) bool {
	return r.Slot().Start(now.Location()).Before(now)
}
