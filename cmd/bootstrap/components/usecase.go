package components

import (
	"go.uber.org/fx"

	"booking-bot/internal/conversation"
	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/usecase/commands"
	"booking-bot/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewAvailabilityQueries,
		commands.NewBookingUseCase,
		conversation.NewSessionStore,
		conversation.NewEngine,
	),
)
