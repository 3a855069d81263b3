package conversation

import "fmt"

// StartToken is the command token behind the "book a table" button.
const StartToken = "book_table"

const (
	msgStartHint = "Hi! I'm the COFFEE table booking bot.\n" +
		"Tap the button below to book a table."
	msgWelcome       = "Let's get you a table! First, please enter your name."
	msgNotUnderstood = "Sorry, I don't understand that command :("


	msgNameHasDigits = "A name shouldn't contain digits. Please enter your name without digits:"
	msgEmptyName     = "The name can't be empty. Please enter your name:"
	msgPhonePrompt   = "Enter your phone number:"
	msgPhoneInvalid  = "That phone number doesn't look right. Enter 11 digits with no spaces or symbols:"

	msgDatePrompt   = "Pick a date for your booking:"
	msgDateInPast   = "The date can't be in the past. Please pick a valid date:"
	msgDateTooFar   = "The date can't be more than 30 days ahead. Please pick a valid date:"
	msgDateBadToken = "That date didn't come through. Please pick a date from the buttons."
	msgDateFirst    = "Pick a date first."

	msgPartyPrompt  = "How many guests will there be (1 to 5)?"
	msgPartyInvalid = "The party size must be a number from 1 to 5. Please enter a valid number:"

	msgAllergyPrompt = "Any allergies? (if none, write 'none'):"
	msgCommentPrompt = "Any comment? (if none, write 'none'):"

	msgBookingConfirmed = "Thank you! Your table is booked."
	msgDuplicateBooking = "You already have a booking at this time."
	msgSlotConflict     = "That slot just became unavailable. Shall we try again?"
	msgStoreTrouble     = "Something went wrong on our side. Please try again a bit later."
)

func msgTimePrompt(dateToken string) string {
	return fmt.Sprintf("You picked %s.\nNow pick a time:", dateToken)
}

func msgTimeOutsideWindow(start, end string) string {
	return fmt.Sprintf("Bookings on that day run from %s to %s. Please pick a valid time.", start, end)
}

func msgPartyPromptFor(timeToken string) string {
	return fmt.Sprintf("You picked %s.\n%s", timeToken, msgPartyPrompt)
}
