package components

import (
	"go.uber.org/fx"

	"booking-bot/internal/infra/postgres"
	"booking-bot/internal/usecase/commands"
	"booking-bot/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			postgres.NewReservationStore,
			fx.As(new(commands.SlotStore)),
			fx.As(new(queries.SlotReader)),
		),
	),
)
