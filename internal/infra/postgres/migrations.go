package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS reservations (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	date DATE NOT NULL,
	time TEXT NOT NULL,
	party_size INT NOT NULL,
	allergy TEXT NOT NULL DEFAULT 'none',
	comment TEXT NOT NULL DEFAULT 'none',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS uq_reservations_phone_slot ON reservations(phone, date, time);
CREATE INDEX IF NOT EXISTS idx_reservations_slot ON reservations(date, time);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaSQL)
	return err
}
