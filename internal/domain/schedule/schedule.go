// Package schedule holds the venue's opening-hours calculus: which time
// slots exist on a given calendar date. Whether a slot still has free
// capacity is a store concern and lives in the usecase layer.
package schedule

import (
	"fmt"
	"time"
)

const (
	// SlotIntervalMinutes is the grid the venue books on.
	SlotIntervalMinutes = 30

	// BookingHorizonDays is how many days ahead a guest may book,
	// today included.
	BookingHorizonDays = 30

	// DateTokenLayout is the round-trippable token format for date
	// selections.
	DateTokenLayout = "2006-01-02"

	weekdayOpenHour = 8
	weekendOpenHour = 10
	closeHour       = 22
)

// OpeningWindow returns the first and last bookable slot of the day as
// zero-padded "HH:MM" strings. The closing boundary slot is itself
// bookable. Both bounds compare correctly as strings.
func OpeningWindow(date time.Time) (start, end string) {
	openHour := weekdayOpenHour
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		openHour = weekendOpenHour
	}
	return fmt.Sprintf("%02d:00", openHour), fmt.Sprintf("%02d:00", closeHour)
}

// CandidateSlots enumerates every 30-minute mark inside OpeningWindow(date),
// ascending, including the closing boundary slot.
func CandidateSlots(date time.Time) []string {
	start, end := OpeningWindow(date)
	slots := make([]string, 0, 2*(closeHour-weekdayOpenHour)+1)
	for s := start; s <= end; s = nextSlot(s) {
		slots = append(slots, s)
	}
	return slots
}

// WithinWindow reports whether the "HH:MM" time falls inside the opening
// window of date, end boundary included. Lexicographic comparison is safe
// because both sides are zero-padded.
func WithinWindow(date time.Time, t string) bool {
	start, end := OpeningWindow(date)
	return t >= start && t <= end
}

// DateChoices returns the BookingHorizonDays selectable dates starting at
// today, ascending.
func DateChoices(today time.Time) []time.Time {
	choices := make([]time.Time, 0, BookingHorizonDays)
	for i := 0; i < BookingHorizonDays; i++ {
		choices = append(choices, today.AddDate(0, 0, i))
	}
	return choices
}

func nextSlot(t string) string {
	var hour, minute int
	fmt.Sscanf(t, "%d:%d", &hour, &minute)
	minute += SlotIntervalMinutes
	if minute >= 60 {
		minute -= 60
		hour++
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
