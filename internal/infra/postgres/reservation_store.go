package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"booking-bot/internal/domain/booking"
	"booking-bot/internal/infra"
)

// queryTimeout bounds every store round trip so a wedged connection
// surfaces as a store error instead of hanging a conversation.
const queryTimeout = 5 * time.Second

// ReservationStore is the postgres-backed SlotStore. Insert serializes
// commits per slot with a transaction-scoped advisory lock, closing the
// check-then-insert race window: the capacity recount and the write are
// atomic with respect to any concurrent commit for the same slot.
type ReservationStore struct {
	pool *pgxpool.Pool
}

func NewReservationStore(pool *pgxpool.Pool) *ReservationStore {
	return &ReservationStore{pool: pool}
}

func (s *ReservationStore) CountAt(ctx context.Context, slot booking.Slot) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE date=$1 AND time=$2`,
		slot.Date, slot.Time,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count slot reservations", err)
	}
	return count, nil
}

func (s *ReservationStore) ExistsFor(ctx context.Context, phone string, slot booking.Slot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reservations WHERE phone=$1 AND date=$2 AND time=$3)`,
		phone, slot.Date, slot.Time,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing booking", err)
	}
	return exists, nil
}

func (s *ReservationStore) Insert(ctx context.Context, res *booking.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin insert transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback insert transaction", "error", rollbackErr)
		}
	}()

	slot := res.Slot()

	// Serialize all commits for this slot. The lock is released on
	// commit or rollback.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, slot.Key()); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE date=$1 AND time=$2`,
		slot.Date, slot.Time,
	).Scan(&count)
	if err != nil {
		return infra.WrapRepoErr("failed to recount slot inside transaction", err)
	}
	if count >= booking.SlotCapacity {
		return infra.WrapRepoErr("slot is at capacity", nil, infra.KindCapacityExceeded)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO reservations (id, name, phone, date, time, party_size, allergy, comment, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		res.ID(),
		res.Name().String(),
		res.Phone().String(),
		slot.Date,
		slot.Time,
		res.PartySize().Int(),
		res.Allergy().String(),
		res.Comment().String(),
		res.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit reservation", err)
	}
	return nil
}

func (s *ReservationStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM reservations WHERE (date + time::interval) < $1`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge expired reservations", err)
	}
	return tag.RowsAffected(), nil
}
