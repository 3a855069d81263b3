package commands

import (
	"context"
	"time"

	"booking-bot/internal/domain/booking"
)

// SlotStore is the persistence contract the write side needs. Reads are
// advisory and may be stale; Insert alone is authoritative and must
// re-check the duplicate and capacity invariants atomically with the
// write.
type SlotStore interface {
	// CountAt returns the number of persisted reservations for the slot.
	CountAt(ctx context.Context, slot booking.Slot) (int, error)

	// ExistsFor reports whether phone already holds a reservation at slot.
	ExistsFor(ctx context.Context, phone string, slot booking.Slot) (bool, error)

	// Insert persists the reservation, failing with KindDuplicateKey or
	// KindCapacityExceeded when the invariants would break at insert time.
	Insert(ctx context.Context, res *booking.Reservation) error

	// PurgeExpired deletes reservations whose slot starts strictly before
	// now and returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
