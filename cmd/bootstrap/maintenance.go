package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/usecase/commands"
)

// RegisterStartupPurge deletes reservations whose slot already started.
// Registered ahead of the HTTP listener so the purge runs before any
// conversation traffic. Best-effort: a failure is logged, not fatal.
func RegisterStartupPurge(lc fx.Lifecycle, store commands.SlotStore, clk clock.Clock, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			purged, err := store.PurgeExpired(ctx, clk.Now())
			if err != nil {
				logger.Error("startup purge of expired reservations failed", "error", err)
				return nil
			}
			logger.Info("purged expired reservations", "count", purged)
			return nil
		},
	})
}
