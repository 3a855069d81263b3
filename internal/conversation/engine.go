package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/domain/schedule"
	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/usecase/commands"
	"booking-bot/internal/usecase/queries"
)

// Engine drives the booking dialogue. One engine serves all users;
// per-user ordering comes from the session lock, so sessions for
// different users progress fully concurrently.
type Engine struct {
	sessions     *SessionStore
	availability queries.AvailabilityQueries
	bookings     commands.BookingCommands
	clock        clock.Clock
}

func NewEngine(
	sessions *SessionStore,
	availability queries.AvailabilityQueries,
	bookings commands.BookingCommands,
	clk clock.Clock,
) *Engine {
	return &Engine{
		sessions:     sessions,
		availability: availability,
		bookings:     bookings,
		clock:        clk,
	}
}

// Handle routes one inbound event through the state machine and returns
// the outbound reply. It never returns an error: every failure mode has
// a user-facing rendering, and system faults are logged where they occur.
func (e *Engine) Handle(ctx context.Context, ev Event) Reply {
	sess := e.sessions.Get(ev.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// The start command and the "book a table" button both abandon any
	// in-flight draft. The command re-offers the button; the button opens
	// the dialogue.
	if ev.Kind == EventSelection && ev.Token == StartToken {
		sess.Reset()
		sess.Step = StepAwaitingName
		return Reply{Text: msgWelcome}
	}
	if ev.Kind == EventText && strings.TrimSpace(ev.Text) == "/start" {
		sess.Reset()
		return Reply{Text: msgStartHint, Choices: startChoices()}
	}

	switch sess.Step {
	case StepAwaitingName:
		return e.handleName(sess, ev)
	case StepAwaitingPhone:
		return e.handlePhone(sess, ev)
	case StepAwaitingDate:
		return e.handleDate(ctx, sess, ev)
	case StepAwaitingTime:
		return e.handleTime(ctx, sess, ev)
	case StepAwaitingPartySize:
		return e.handlePartySize(sess, ev)
	case StepAwaitingAllergy:
		return e.handleAllergy(sess, ev)
	case StepAwaitingComment:
		return e.handleComment(ctx, sess, ev)
	default:
		return Reply{Text: msgNotUnderstood, Choices: startChoices()}
	}
}

func (e *Engine) handleName(sess *Session, ev Event) Reply {
	name, err := booking.NewGuestName(eventInput(ev))
	if err != nil {
		if errors.Is(err, booking.ErrEmptyName) {
			return Reply{Text: msgEmptyName}
		}
		return Reply{Text: msgNameHasDigits}
	}
	sess.Draft.Name = name
	sess.Step = StepAwaitingPhone
	return Reply{Text: msgPhonePrompt}
}

func (e *Engine) handlePhone(sess *Session, ev Event) Reply {
	phone, err := booking.NewPhone(eventInput(ev))
	if err != nil {
		return Reply{Text: msgPhoneInvalid}
	}
	sess.Draft.Phone = phone
	sess.Step = StepAwaitingDate
	return e.dateChoicesReply(msgDatePrompt)
}

func (e *Engine) handleDate(ctx context.Context, sess *Session, ev Event) Reply {
	date, err := booking.NewBookingDate(eventInput(ev), e.clock.Now())
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDateInPast):
			return e.dateChoicesReply(msgDateInPast)
		case errors.Is(err, booking.ErrDateTooFar):
			return e.dateChoicesReply(msgDateTooFar)
		default:
			return e.dateChoicesReply(msgDateBadToken)
		}
	}
	sess.Draft.Date = date
	return e.promptForTime(ctx, sess, msgTimePrompt(date.Token()))
}

func (e *Engine) handleTime(ctx context.Context, sess *Session, ev Event) Reply {
	// Defensive recovery for out-of-order events: a time selection is
	// meaningless until a date is stored.
	if sess.Draft.Date.IsZero() {
		sess.Step = StepAwaitingDate
		return e.dateChoicesReply(msgDateFirst)
	}

	t, err := booking.NewBookingTime(sess.Draft.Date, eventInput(ev))
	if err != nil {
		start, end := schedule.OpeningWindow(sess.Draft.Date.Time())
		return e.promptForTime(ctx, sess, msgTimeOutsideWindow(start, end))
	}
	sess.Draft.Time = t
	sess.Step = StepAwaitingPartySize
	return Reply{Text: msgPartyPromptFor(t.String())}
}

func (e *Engine) handlePartySize(sess *Session, ev Event) Reply {
	size, err := booking.NewPartySize(eventInput(ev))
	if err != nil {
		return Reply{Text: msgPartyInvalid}
	}
	sess.Draft.PartySize = size
	sess.Step = StepAwaitingAllergy
	return Reply{Text: msgAllergyPrompt}
}

func (e *Engine) handleAllergy(sess *Session, ev Event) Reply {
	sess.Draft.Allergy = booking.NewFreeText(eventInput(ev))
	sess.Step = StepAwaitingComment
	return Reply{Text: msgCommentPrompt}
}

func (e *Engine) handleComment(ctx context.Context, sess *Session, ev Event) Reply {
	sess.Draft.Comment = booking.NewFreeText(eventInput(ev))

	res := booking.NewReservation(
		sess.Draft.Name,
		sess.Draft.Phone,
		sess.Draft.Date,
		sess.Draft.Time,
		sess.Draft.PartySize,
		sess.Draft.Allergy,
		sess.Draft.Comment,
		e.clock.Now(),
	)

	// Whatever the outcome, the dialogue is over: the draft is discarded
	// and the session returns to idle.
	defer sess.Reset()

	err := e.bookings.CommitReservation(ctx, res)
	switch {
	case err == nil:
		return Reply{Text: msgBookingConfirmed, Choices: startChoices()}
	case errors.Is(err, commands.ErrDuplicateBooking):
		return Reply{Text: msgDuplicateBooking, Choices: startChoices()}
	case errors.Is(err, commands.ErrSlotConflict):
		return Reply{Text: msgSlotConflict, Choices: startChoices()}
	default:
		return Reply{Text: msgStoreTrouble, Choices: startChoices()}
	}
}

// promptForTime renders the available-slot choice set for the draft's
// date. Availability here is advisory; the commit re-checks it.
func (e *Engine) promptForTime(ctx context.Context, sess *Session, text string) Reply {
	slots, err := e.availability.AvailableSlots(ctx, sess.Draft.Date.Time())
	if err != nil {
		slog.Error("availability query failed", "date", sess.Draft.Date.Token(), "error", err)
		sess.Reset()
		return Reply{Text: msgStoreTrouble, Choices: startChoices()}
	}
	sess.Step = StepAwaitingTime
	choices := make([]Choice, 0, len(slots))
	for _, s := range slots {
		choices = append(choices, Choice{Label: s, Token: s})
	}
	return Reply{Text: text, Choices: choices}
}

func (e *Engine) dateChoicesReply(text string) Reply {
	dates := e.availability.DateChoices()
	choices := make([]Choice, 0, len(dates))
	for _, d := range dates {
		choices = append(choices, Choice{
			Label: d.Format("02.01"),
			Token: d.Format(schedule.DateTokenLayout),
		})
	}
	return Reply{Text: text, Choices: choices}
}

// eventInput flattens an event to the string its step's validator sees.
// Selections validate their token, so a selection arriving at a free-text
// step is rejected by the same rule as any other malformed input.
func eventInput(ev Event) string {
	if ev.Kind == EventSelection {
		return ev.Token
	}
	return ev.Text
}

func startChoices() []Choice {
	return []Choice{{Label: "Book a table", Token: StartToken}}
}
