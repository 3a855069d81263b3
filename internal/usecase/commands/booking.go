package commands

import (
	"context"
	"log/slog"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/infra"
	"booking-bot/internal/pkg/errs"
)

var (
	// ErrDuplicateBooking: the contact already holds a reservation at that
	// slot, caught by the fast-path check before any insert is attempted.
	ErrDuplicateBooking = errs.New("duplicate booking")

	// ErrSlotConflict: the insert lost a race, either the slot filled up or
	// the same contact booked it from a concurrent session.
	ErrSlotConflict = errs.New("slot conflict")

	ErrStoreUnavailable = errs.New("store unavailable")
)

type BookingCommands interface {
	CommitReservation(ctx context.Context, res *booking.Reservation) error
}

type bookingUseCaseImpl struct {
	store SlotStore
}

func NewBookingUseCase(store SlotStore) BookingCommands {
	return &bookingUseCaseImpl{store: store}
}

// CommitReservation runs the two-step commit protocol: an advisory
// duplicate check for a friendlier message, then the authoritative
// atomic insert. The insert re-checks both invariants inside the store
// transaction, so a stale advisory read can only change which error the
// guest sees, never admit an over-capacity or duplicate booking.
func (u *bookingUseCaseImpl) CommitReservation(ctx context.Context, res *booking.Reservation) error {
	exists, err := u.store.ExistsFor(ctx, res.Phone().String(), res.Slot())
	if err != nil {
		slog.Error("duplicate pre-check failed", "slot", res.Slot().Key(), "error", err)
		return errs.Mark(err, ErrStoreUnavailable)
	}
	if exists {
		return ErrDuplicateBooking
	}

	if err := u.store.Insert(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindCapacityExceeded) {
			return errs.Mark(err, ErrSlotConflict)
		}
		slog.Error("reservation insert failed", "slot", res.Slot().Key(), "error", err)
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return nil
}
