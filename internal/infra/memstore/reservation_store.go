// Package memstore is an in-process SlotStore used by tests. A single
// mutex gives Insert the same check-and-write atomicity the postgres
// store gets from its advisory lock.
package memstore

import (
	"context"
	"sync"
	"time"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/infra"
)

type ReservationStore struct {
	mu     sync.Mutex
	bySlot map[string][]*booking.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{bySlot: make(map[string][]*booking.Reservation)}
}

func (s *ReservationStore) CountAt(_ context.Context, slot booking.Slot) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bySlot[slot.Key()]), nil
}

func (s *ReservationStore) ExistsFor(_ context.Context, phone string, slot booking.Slot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range s.bySlot[slot.Key()] {
		if res.Phone().String() == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReservationStore) Insert(_ context.Context, res *booking.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := res.Slot().Key()
	held := s.bySlot[key]
	for _, existing := range held {
		if existing.Phone().String() == res.Phone().String() {
			return infra.WrapRepoErr("booking already exists for contact", nil, infra.KindDuplicateKey)
		}
	}
	if len(held) >= booking.SlotCapacity {
		return infra.WrapRepoErr("slot is at capacity", nil, infra.KindCapacityExceeded)
	}
	s.bySlot[key] = append(held, res)
	return nil
}

func (s *ReservationStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for key, held := range s.bySlot {
		kept := held[:0]
		for _, res := range held {
			if res.StartsBefore(now) {
				purged++
				continue
			}
			kept = append(kept, res)
		}
		if len(kept) == 0 {
			delete(s.bySlot, key)
			continue
		}
		s.bySlot[key] = kept
	}
	return purged, nil
}
