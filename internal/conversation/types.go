package conversation

import "booking-bot/internal/domain/booking"

// Step is the position of a session inside the booking dialogue.
type Step string

const (
	StepIdle              Step = "idle"
	StepAwaitingName      Step = "awaiting_name"
	StepAwaitingPhone     Step = "awaiting_phone"
	StepAwaitingDate      Step = "awaiting_date"
	StepAwaitingTime      Step = "awaiting_time"
	StepAwaitingPartySize Step = "awaiting_party_size"
	StepAwaitingAllergy   Step = "awaiting_allergy"
	StepAwaitingComment   Step = "awaiting_comment"
)

type EventKind string

const (
	// EventText is a free-text message from the guest.
	EventText EventKind = "text"
	// EventSelection is a button press carrying a round-trippable token:
	// "YYYY-MM-DD" for dates, "HH:MM" for times, or a command token.
	EventSelection EventKind = "selection"
)

// Event is one inbound message, already attributed to a user by the
// transport. Events for the same user are serialized by the engine.
type Event struct {
	UserID string
	Kind   EventKind
	Text   string
	Token  string
}

// Choice is one tappable option attached to a Reply. Token round-trips
// verbatim through the transport back into Event.Token.
type Choice struct {
	Label string `json:"label"`
	Token string `json:"token"`
}

// Reply is the outbound message the engine hands to the transport.
type Reply struct {
	Text    string   `json:"text"`
	Choices []Choice `json:"choices,omitempty"`
}

// Draft accumulates validated answers. Fields are only ever set, never
// rolled back; a failed validation leaves the draft untouched.
type Draft struct {
	Name      booking.GuestName
	Phone     booking.Phone
	Date      booking.BookingDate
	Time      booking.BookingTime
	PartySize booking.PartySize
	Allergy   booking.FreeText
	Comment   booking.FreeText
}
